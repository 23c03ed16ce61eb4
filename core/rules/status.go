package rules

import "fleetpredict/core/model"

// Status labels produced by PredictStatus.
const (
	StatusParked     = "parked"
	StatusInFlight   = "in_flight"
	StatusOnGround   = "on_ground"
	StatusCruising   = "cruising_route"
	StatusAtStop     = "at_stop"
	StatusResponding = "responding"
	StatusEnRoute    = "en_route"
	StatusInService  = "in_service"
	StatusStopped    = "stopped"
	StatusUnknown    = "unknown"
)

// PredictStatus classifies the operational status of a vehicle. The rules
// form an ordered decision list; the first matching branch wins. Records
// matching no branch (including missing vehicle types) classify as unknown
// with zero confidence.
func (e *Engine) PredictStatus(f model.FeatureRecord) model.StatusResult {
	if e.mode == ModeSimple {
		return simpleStatus(f)
	}

	status := StatusUnknown
	confidence := 0.0

	switch {
	case f.Speed == 0:
		status, confidence = StatusParked, 0.95
	case f.VehicleType == model.VehicleAirplane && f.Speed > 200:
		status, confidence = StatusInFlight, 0.98
	case f.VehicleType == model.VehicleAirplane && f.Speed < 50:
		status, confidence = StatusOnGround, 0.92
	case f.VehicleType == model.VehicleBoat && f.Speed > 10 && f.Speed < 40:
		status, confidence = StatusCruising, 0.87
	case f.VehicleType == model.VehicleBoat && f.Speed < 5:
		status, confidence = StatusAtStop, 0.82
	case f.VehicleType == model.VehicleLand && f.Speed > 70:
		status, confidence = StatusResponding, 0.75
	case f.VehicleType == model.VehicleLand && f.Speed > 40:
		status, confidence = StatusEnRoute, 0.79
	case f.VehicleType == model.VehicleLand && f.Speed > 10:
		status, confidence = StatusInService, 0.83
	case f.VehicleType == model.VehicleLand && f.Speed > 0:
		status, confidence = StatusStopped, 0.77
	}

	// Low visibility degrades classification confidence.
	if f.WeatherType == "heavy_rain" || f.WeatherType == "fog" {
		confidence *= 0.95
	}

	return model.StatusResult{
		Prediction:   status,
		Confidence:   confidence,
		FeaturesUsed: []string{"speed", "vehicle_type", "weather_type"},
	}
}

// simpleStatus is the coarse variant: no land-vehicle gating, fixed 60/30
// thresholds and no weather adjustment.
func simpleStatus(f model.FeatureRecord) model.StatusResult {
	var status string
	var confidence float64

	switch {
	case f.Speed == 0:
		status, confidence = StatusParked, 0.95
	case f.VehicleType == model.VehicleAirplane && f.Speed > 200:
		status, confidence = StatusInFlight, 0.98
	case f.VehicleType == model.VehicleBoat && f.Speed > 10 && f.Speed < 40:
		status, confidence = StatusCruising, 0.87
	case f.Speed > 60:
		status, confidence = StatusResponding, 0.72
	case f.Speed < 30:
		status, confidence = StatusInService, 0.83
	default:
		status, confidence = StatusEnRoute, 0.79
	}

	return model.StatusResult{
		Prediction:   status,
		Confidence:   confidence,
		FeaturesUsed: []string{"speed", "vehicle_type"},
	}
}
