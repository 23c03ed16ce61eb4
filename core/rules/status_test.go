package rules

import (
	"testing"

	"fleetpredict/core/model"
)

func detailedEngine() *Engine { return New(Config{Mode: ModeDetailed}) }
func simpleEngine() *Engine   { return New(Config{Mode: ModeSimple}) }

func TestPredictStatusDetailed(t *testing.T) {
	e := detailedEngine()
	cases := []struct {
		name       string
		rec        model.FeatureRecord
		status     string
		confidence float64
	}{
		{"parked wins regardless of type", model.FeatureRecord{Speed: 0, VehicleType: model.VehicleAirplane}, StatusParked, 0.95},
		{"airplane in flight", model.FeatureRecord{Speed: 250, VehicleType: model.VehicleAirplane}, StatusInFlight, 0.98},
		{"airplane on ground", model.FeatureRecord{Speed: 30, VehicleType: model.VehicleAirplane}, StatusOnGround, 0.92},
		{"boat cruising", model.FeatureRecord{Speed: 20, VehicleType: model.VehicleBoat}, StatusCruising, 0.87},
		{"boat at stop", model.FeatureRecord{Speed: 3, VehicleType: model.VehicleBoat}, StatusAtStop, 0.82},
		{"boat between branches", model.FeatureRecord{Speed: 7, VehicleType: model.VehicleBoat}, StatusUnknown, 0},
		{"land responding", model.FeatureRecord{Speed: 85, VehicleType: model.VehicleLand}, StatusResponding, 0.75},
		{"land en route", model.FeatureRecord{Speed: 55, VehicleType: model.VehicleLand}, StatusEnRoute, 0.79},
		{"land in service", model.FeatureRecord{Speed: 25, VehicleType: model.VehicleLand}, StatusInService, 0.83},
		{"land stopped", model.FeatureRecord{Speed: 5, VehicleType: model.VehicleLand}, StatusStopped, 0.77},
		{"missing vehicle type", model.FeatureRecord{Speed: 50}, StatusUnknown, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.PredictStatus(tc.rec)
			if got.Prediction != tc.status || got.Confidence != tc.confidence {
				t.Fatalf("got %q/%v, want %q/%v", got.Prediction, got.Confidence, tc.status, tc.confidence)
			}
		})
	}
}

func TestPredictStatusWeatherAdjustment(t *testing.T) {
	e := detailedEngine()
	for _, weather := range []string{"heavy_rain", "fog"} {
		got := e.PredictStatus(model.FeatureRecord{Speed: 250, VehicleType: model.VehicleAirplane, WeatherType: weather})
		want := 0.98 * 0.95
		if got.Confidence != want {
			t.Fatalf("%s: confidence = %v, want %v", weather, got.Confidence, want)
		}
	}
	// Other weather types leave the confidence alone.
	got := e.PredictStatus(model.FeatureRecord{Speed: 250, VehicleType: model.VehicleAirplane, WeatherType: "rain"})
	if got.Confidence != 0.98 {
		t.Fatalf("rain: confidence = %v, want 0.98", got.Confidence)
	}
}

func TestPredictStatusSimple(t *testing.T) {
	e := simpleEngine()
	cases := []struct {
		name       string
		rec        model.FeatureRecord
		status     string
		confidence float64
	}{
		{"parked", model.FeatureRecord{Speed: 0}, StatusParked, 0.95},
		{"airplane in flight", model.FeatureRecord{Speed: 250, VehicleType: model.VehicleAirplane}, StatusInFlight, 0.98},
		{"boat cruising", model.FeatureRecord{Speed: 20, VehicleType: model.VehicleBoat}, StatusCruising, 0.87},
		{"fast is responding even untyped", model.FeatureRecord{Speed: 65}, StatusResponding, 0.72},
		{"slow is in service", model.FeatureRecord{Speed: 20}, StatusInService, 0.83},
		{"middle is en route", model.FeatureRecord{Speed: 45}, StatusEnRoute, 0.79},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := e.PredictStatus(tc.rec)
			if got.Prediction != tc.status || got.Confidence != tc.confidence {
				t.Fatalf("got %q/%v, want %q/%v", got.Prediction, got.Confidence, tc.status, tc.confidence)
			}
		})
	}
	// Simple mode ignores the weather adjustment.
	got := e.PredictStatus(model.FeatureRecord{Speed: 20, WeatherType: "fog"})
	if got.Confidence != 0.83 {
		t.Fatalf("fog: confidence = %v, want 0.83", got.Confidence)
	}
}

func TestPredictStatusDeterministic(t *testing.T) {
	e := detailedEngine()
	rec := model.FeatureRecord{Speed: 55, VehicleType: model.VehicleLand, WeatherType: "fog"}
	first := e.PredictStatus(rec)
	for i := 0; i < 5; i++ {
		if got := e.PredictStatus(rec); got.Prediction != first.Prediction || got.Confidence != first.Confidence {
			t.Fatalf("call %d diverged: %#v vs %#v", i, got, first)
		}
	}
}
