package model

// PredictionResult is implemented by every rule function output.
type PredictionResult interface {
	// ConfidenceValue returns the confidence in [0,1] and whether the
	// result carries one. Results without a confidence report false.
	ConfidenceValue() (float64, bool)
}

// StatusResult labels the operational status of a vehicle.
type StatusResult struct {
	Prediction   string   `json:"prediction"`
	Confidence   float64  `json:"confidence"`
	FeaturesUsed []string `json:"features_used,omitempty"`
}

func (r StatusResult) ConfidenceValue() (float64, bool) { return r.Confidence, true }

// SpeedResult carries a predicted speed in km/h together with the static
// quality metrics reported for the speed model.
type SpeedResult struct {
	Prediction float64 `json:"prediction"`
	RMSE       float64 `json:"rmse"`
	R2Score    float64 `json:"r2_score"`
}

func (SpeedResult) ConfidenceValue() (float64, bool) { return 0, false }

// EmergencyResult flags a record as an emergency (Prediction == 1).
type EmergencyResult struct {
	Prediction           int     `json:"prediction"`
	Confidence           float64 `json:"confidence"`
	EmergencyProbability float64 `json:"emergency_probability"`
	Status               string  `json:"status"`
}

func (r EmergencyResult) ConfidenceValue() (float64, bool) { return r.Confidence, true }

// IsEmergency reports whether the record was classified as an emergency.
func (r EmergencyResult) IsEmergency() bool { return r.Prediction == 1 }

// WeatherImpactResult describes how current weather degrades speed.
type WeatherImpactResult struct {
	AdjustedSpeed      float64 `json:"adjusted_speed"`
	SpeedReduction     float64 `json:"speed_reduction"`
	HazardLevel        string  `json:"hazard_level"`
	HazardScore        float64 `json:"hazard_score"`
	WeatherImpactScore float64 `json:"weather_impact_score"`
}

func (WeatherImpactResult) ConfidenceValue() (float64, bool) { return 0, false }

// ClusterResult assigns a record to one of the predefined behavioural clusters.
type ClusterResult struct {
	ClusterID        int     `json:"cluster_id"`
	ClusterType      string  `json:"cluster_type"`
	BehaviorPattern  string  `json:"behavior_pattern"`
	DistanceToCenter float64 `json:"distance_to_center"`
	SilhouetteScore  float64 `json:"silhouette_score"`
}

func (ClusterResult) ConfidenceValue() (float64, bool) { return 0, false }
