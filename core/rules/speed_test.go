package rules

import (
	"testing"

	"fleetpredict/core/model"
)

func hourPtr(h int) *int { return &h }

func TestPredictSpeedDowntown(t *testing.T) {
	e := detailedEngine()
	// Midday downtown: only the location factor applies. 45 * 0.7 = 31.5.
	got := e.PredictSpeed(model.FeatureRecord{
		VehicleType: model.VehicleLand,
		Latitude:    37.78,
		Longitude:   -122.40,
		HourOfDay:   hourPtr(12),
	})
	if got.Prediction != 31.5 {
		t.Fatalf("prediction = %v, want 31.5", got.Prediction)
	}
	if got.RMSE != 25.49 || got.R2Score != 0.8221 {
		t.Fatalf("static metrics = %v/%v", got.RMSE, got.R2Score)
	}
}

func TestPredictSpeedNeutralMidday(t *testing.T) {
	e := detailedEngine()
	// Outside the downtown box but inside the city band: all factors 1.0.
	got := e.PredictSpeed(model.FeatureRecord{
		VehicleType: model.VehicleLand,
		Latitude:    37.75,
		Longitude:   -122.40,
		HourOfDay:   hourPtr(12),
	})
	if got.Prediction != 45.0 {
		t.Fatalf("prediction = %v, want 45.0", got.Prediction)
	}
}

func TestPredictSpeedBaseByType(t *testing.T) {
	e := detailedEngine()
	rec := model.FeatureRecord{Latitude: 37.75, Longitude: -122.40, HourOfDay: hourPtr(12)}

	rec.VehicleType = model.VehicleAirplane
	if got := e.PredictSpeed(rec); got.Prediction != 280.0 {
		t.Fatalf("airplane = %v, want 280.0", got.Prediction)
	}
	rec.VehicleType = model.VehicleBoat
	if got := e.PredictSpeed(rec); got.Prediction != 25.0 {
		t.Fatalf("boat = %v, want 25.0", got.Prediction)
	}
	rec.VehicleType = ""
	if got := e.PredictSpeed(rec); got.Prediction != 45.0 {
		t.Fatalf("untyped = %v, want 45.0", got.Prediction)
	}
}

func TestPredictSpeedTimeFactors(t *testing.T) {
	e := detailedEngine()
	rec := model.FeatureRecord{VehicleType: model.VehicleLand, Latitude: 37.75, Longitude: -122.40}

	for _, tc := range []struct {
		hour int
		want float64
	}{
		{8, 36.0},  // rush hour, 45 * 0.8
		{18, 36.0}, // evening rush
		{23, 49.5}, // night, 45 * 1.1
		{3, 49.5},
		{12, 45.0},
	} {
		rec.HourOfDay = hourPtr(tc.hour)
		if got := e.PredictSpeed(rec); got.Prediction != tc.want {
			t.Fatalf("hour %d: prediction = %v, want %v", tc.hour, got.Prediction, tc.want)
		}
	}
}

func TestPredictSpeedWeatherAndWind(t *testing.T) {
	e := detailedEngine()
	// 45 * (1 - 0.5*0.3) * (1 - 20/100) = 45 * 0.85 * 0.8 = 30.6.
	got := e.PredictSpeed(model.FeatureRecord{
		VehicleType:      model.VehicleLand,
		Latitude:         37.75,
		Longitude:        -122.40,
		HourOfDay:        hourPtr(12),
		WeatherIntensity: 0.5,
		WindSpeed:        20,
	})
	if got.Prediction != 30.6 {
		t.Fatalf("prediction = %v, want 30.6", got.Prediction)
	}
}

func TestPredictSpeedHighwayBand(t *testing.T) {
	e := detailedEngine()
	rec := model.FeatureRecord{VehicleType: model.VehicleLand, Longitude: -122.40, HourOfDay: hourPtr(12)}

	rec.Latitude = 37.70 // south of the band
	if got := e.PredictSpeed(rec); got.Prediction != 54.0 {
		t.Fatalf("south = %v, want 54.0", got.Prediction)
	}
	rec.Latitude = 37.85 // north of the band
	if got := e.PredictSpeed(rec); got.Prediction != 54.0 {
		t.Fatalf("north = %v, want 54.0", got.Prediction)
	}
}

func TestPredictSpeedSimpleTimeFactor(t *testing.T) {
	e := simpleEngine()
	rec := model.FeatureRecord{VehicleType: model.VehicleLand, Latitude: 37.75, Longitude: -122.40}

	rec.HourOfDay = hourPtr(12) // daytime, 45 * 1.1
	if got := e.PredictSpeed(rec); got.Prediction != 49.5 {
		t.Fatalf("day = %v, want 49.5", got.Prediction)
	}
	rec.HourOfDay = hourPtr(22) // night, 45 * 0.9
	if got := e.PredictSpeed(rec); got.Prediction != 40.5 {
		t.Fatalf("night = %v, want 40.5", got.Prediction)
	}
}
