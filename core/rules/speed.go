package rules

import "fleetpredict/core/model"

// Base cruise speeds in km/h by vehicle type.
const (
	baseSpeedAirplane = 280.0
	baseSpeedBoat     = 25.0
	baseSpeedLand     = 45.0
)

// PredictSpeed estimates an expected speed from weather, wind, time of day
// and location. The result is the base speed for the vehicle type scaled by
// four independent factors, rounded to one decimal. The attached RMSE and
// R2 values are static reference metadata, not recomputed per call.
func (e *Engine) PredictSpeed(f model.FeatureRecord) model.SpeedResult {
	base := baseSpeedLand
	switch f.VehicleType {
	case model.VehicleAirplane:
		base = baseSpeedAirplane
	case model.VehicleBoat:
		base = baseSpeedBoat
	}

	weatherFactor := 1 - f.WeatherIntensity*0.3
	windFactor := 1 - f.WindSpeed/100
	timeFactor := e.timeFactor(f.Hour(12))
	locationFactor := locationFactor(f.Latitude, f.Longitude)

	predicted := base * weatherFactor * windFactor * timeFactor * locationFactor

	return model.SpeedResult{
		Prediction: round1(predicted),
		RMSE:       e.ref.SpeedRMSE,
		R2Score:    e.ref.SpeedR2,
	}
}

// timeFactor models congestion by hour. The detailed set slows rush hours
// and speeds up the night; the simple set only distinguishes day from night.
func (e *Engine) timeFactor(hour int) float64 {
	if e.mode == ModeSimple {
		if hour >= 7 && hour <= 19 {
			return 1.1
		}
		return 0.9
	}
	if (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19) {
		return 0.8
	}
	if hour >= 22 || hour <= 5 {
		return 1.1
	}
	return 1.0
}

// locationFactor slows traffic inside the downtown San Francisco bounding
// box and speeds it up on the highway corridors outside the city core.
func locationFactor(lat, lon float64) float64 {
	if lat > 37.77 && lat < 37.80 && lon > -122.42 && lon < -122.39 {
		return 0.7
	}
	if lat < 37.72 || lat > 37.82 {
		return 1.2
	}
	return 1.0
}
