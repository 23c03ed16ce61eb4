package rules

import (
	"math"

	"fleetpredict/core/model"
)

// Emergency status labels.
const (
	EmergencyStatus = "EMERGENCY"
	NormalStatus    = "NORMAL"
)

// PredictEmergency scores a record for emergency behaviour. The detailed
// rule set accumulates a weighted score over speed tiers, the high-speed
// flag, off-axis headings and night hours, flagging an emergency above 0.5.
// The simple set thresholds raw speed at 70 km/h. Records without an
// hour_of_day feature use the engine clock for the night check.
func (e *Engine) PredictEmergency(f model.FeatureRecord) model.EmergencyResult {
	if e.mode == ModeSimple {
		if f.Speed > 70 {
			return model.EmergencyResult{Prediction: 1, Confidence: 0.92, EmergencyProbability: 1, Status: EmergencyStatus}
		}
		return model.EmergencyResult{Prediction: 0, Confidence: 0.88, Status: NormalStatus}
	}

	score := 0.0

	// Speed is the dominant factor.
	switch {
	case f.Speed > 80:
		score += 0.6
	case f.Speed > 60:
		score += 0.4
	case f.Speed > 50:
		score += 0.2
	}

	if f.IsHighSpeed {
		score += 0.2
	}

	// Off-axis headings hint at rapid direction changes.
	if math.Mod(f.Heading, 90) != 0 {
		score += 0.1
	}

	hour := f.Hour(e.now().Hour())
	if hour >= 22 || hour <= 6 {
		score += 0.1
	}

	isEmergency := score > 0.5
	result := model.EmergencyResult{
		Confidence:           math.Min(0.99, math.Abs(score-0.5)*2),
		EmergencyProbability: score,
		Status:               NormalStatus,
	}
	if isEmergency {
		result.Prediction = 1
		result.Status = EmergencyStatus
	}
	return result
}
