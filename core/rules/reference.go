package rules

// ClusterCenter is a fixed centroid in the mixed lat/lon/speed feature space.
type ClusterCenter struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Speed float64 `json:"speed"`
}

// ClusterInfo is one row of the static cluster population table, exposed
// for display alongside cluster assignments.
type ClusterInfo struct {
	Name     string  `json:"name"`
	Vehicles int     `json:"vehicles"`
	AvgSpeed float64 `json:"avg_speed"`
	Color    string  `json:"color"`
}

// Reference holds the static quality metrics and cluster tables consumed by
// the engine. The values are descriptive metadata from the original model
// evaluation, never recomputed here; they may be overridden via configuration.
type Reference struct {
	StatusAccuracy float64 `json:"status_accuracy"`
	StatusF1       float64 `json:"status_f1"`
	SpeedRMSE      float64 `json:"speed_rmse"`
	SpeedR2        float64 `json:"speed_r2"`
	Silhouette     float64 `json:"silhouette_score"`

	Clusters []ClusterInfo   `json:"clusters"`
	Centers  []ClusterCenter `json:"centers"`
}

// SetDefaults fills any zero field with the published reference values.
func (r *Reference) SetDefaults() {
	if r.StatusAccuracy == 0 {
		r.StatusAccuracy = 86.86
	}
	if r.StatusF1 == 0 {
		r.StatusF1 = 0.8591
	}
	if r.SpeedRMSE == 0 {
		r.SpeedRMSE = 25.49
	}
	if r.SpeedR2 == 0 {
		r.SpeedR2 = 0.8221
	}
	if r.Silhouette == 0 {
		r.Silhouette = 0.4767
	}
	if len(r.Clusters) == 0 {
		r.Clusters = []ClusterInfo{
			{Name: "West SF Ground", Vehicles: 1685, AvgSpeed: 24.31, Color: "#3498db"},
			{Name: "Central SF Ground", Vehicles: 1681, AvgSpeed: 24.81, Color: "#2ecc71"},
			{Name: "Aircraft Zone", Vehicles: 222, AvgSpeed: 305.53, Color: "#e74c3c"},
		}
	}
	if len(r.Centers) == 0 {
		r.Centers = []ClusterCenter{
			{Lat: 37.7360, Lon: -122.4460, Speed: 24.31},
			{Lat: 37.7376, Lon: -122.4341, Speed: 24.81},
			{Lat: 37.7179, Lon: -122.3969, Speed: 305.53},
		}
	}
}
