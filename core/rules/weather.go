package rules

import (
	"math"

	"fleetpredict/core/model"
)

// Hazard levels ordered by severity.
const (
	HazardLow      = "LOW"
	HazardModerate = "MODERATE"
	HazardHigh     = "HIGH"
	HazardSevere   = "SEVERE"
)

// minAdjustedSpeed floors the weather-adjusted speed in km/h.
const minAdjustedSpeed = 5.0

// PredictWeatherImpact estimates how much current weather slows a vehicle.
// The detailed rule set normalizes wind by 25 km/h and scales the reduction
// to at most 15 km/h; the simple set multiplies raw wind and scales by 10.
// Both floor the adjusted speed at 5 km/h.
func (e *Engine) PredictWeatherImpact(f model.FeatureRecord) model.WeatherImpactResult {
	if e.mode == ModeSimple {
		impact := f.WeatherIntensity * f.WeatherOpacity * f.WindSpeed
		reduction := round1(impact * 10)
		return model.WeatherImpactResult{
			AdjustedSpeed:      round1(math.Max(minAdjustedSpeed, f.CurrentSpeed-reduction)),
			SpeedReduction:     reduction,
			HazardLevel:        hazardLevel(impact * 50),
			HazardScore:        round1(impact * 50),
			WeatherImpactScore: round2(impact),
		}
	}

	impact := f.WeatherIntensity * f.WeatherOpacity * (f.WindSpeed / 25)
	reduction := impact * 15
	adjusted := math.Max(minAdjustedSpeed, f.CurrentSpeed-reduction)
	hazardScore := impact * 100

	return model.WeatherImpactResult{
		AdjustedSpeed:      round1(adjusted),
		SpeedReduction:     round1(reduction),
		HazardLevel:        hazardLevel(hazardScore),
		HazardScore:        math.Round(hazardScore),
		WeatherImpactScore: round2(impact),
	}
}

func hazardLevel(score float64) string {
	switch {
	case score > 60:
		return HazardSevere
	case score > 40:
		return HazardHigh
	case score > 20:
		return HazardModerate
	}
	return HazardLow
}
