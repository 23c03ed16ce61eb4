package model

// VehicleType identifies the kind of vehicle an observation belongs to.
type VehicleType string

const (
	VehicleAirplane VehicleType = "airplane"
	VehicleBoat     VehicleType = "boat"
	VehicleLand     VehicleType = "land_vehicle"
)

// FeatureRecord describes one telemetry observation at one instant.
// Rule functions read only the fields relevant to them; absent fields
// keep their zero value and fall through to default branches.
type FeatureRecord struct {
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Speed       float64     `json:"speed"`   // km/h, >= 0
	Heading     float64     `json:"heading"` // degrees, 0-359
	VehicleType VehicleType `json:"vehicle_type,omitempty"`

	WeatherType      string  `json:"weather_type,omitempty"`
	WeatherIntensity float64 `json:"weather_intensity"` // 0.0-1.0
	WeatherOpacity   float64 `json:"weather_opacity"`   // 0.0-1.0
	WindSpeed        float64 `json:"wind_speed"`        // km/h, >= 0

	// HourOfDay is nil when the observation carries no clock context;
	// rules that need one fall back to the current wall clock.
	HourOfDay *int `json:"hour_of_day,omitempty"` // 0-23

	CurrentSpeed float64 `json:"current_speed"`
	IsHighSpeed  bool    `json:"is_high_speed,omitempty"`
}

// Hour returns the record's hour of day, or fallback when unset.
func (f FeatureRecord) Hour(fallback int) int {
	if f.HourOfDay != nil {
		return *f.HourOfDay
	}
	return fallback
}
