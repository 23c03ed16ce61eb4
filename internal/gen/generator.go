// Package gen produces synthetic telemetry records for exercising the
// rules engine. Records follow the San Francisco geography the cluster
// rules assume, with speed ranges plausible for each vehicle type.
package gen

import (
	"github.com/brianvoe/gofakeit/v7"

	"fleetpredict/core/model"
)

var weatherTypes = []string{"clear", "rain", "heavy_rain", "fog", "wind"}

// Generator produces FeatureRecords from a seeded faker, so the same seed
// yields the same sequence.
type Generator struct {
	faker *gofakeit.Faker
}

// New creates a Generator with the given seed.
func New(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Record produces one synthetic telemetry observation.
func (g *Generator) Record() model.FeatureRecord {
	vt := g.vehicleType()
	speed := g.speedFor(vt)
	hour := g.faker.Number(0, 23)

	return model.FeatureRecord{
		Latitude:         g.faker.Float64Range(37.70, 37.85),
		Longitude:        g.faker.Float64Range(-122.52, -122.36),
		Speed:            speed,
		Heading:          float64(g.faker.Number(0, 359)),
		VehicleType:      vt,
		WeatherType:      g.faker.RandomString(weatherTypes),
		WeatherIntensity: g.faker.Float64Range(0, 1),
		WeatherOpacity:   g.faker.Float64Range(0, 1),
		WindSpeed:        g.faker.Float64Range(0, 60),
		HourOfDay:        &hour,
		CurrentSpeed:     speed,
		IsHighSpeed:      speed > 100,
	}
}

// Records produces n synthetic observations.
func (g *Generator) Records(n int) []model.FeatureRecord {
	out := make([]model.FeatureRecord, n)
	for i := range out {
		out[i] = g.Record()
	}
	return out
}

func (g *Generator) vehicleType() model.VehicleType {
	// Ground vehicles dominate, mirroring the cluster population table.
	switch g.faker.Number(0, 9) {
	case 0:
		return model.VehicleAirplane
	case 1:
		return model.VehicleBoat
	}
	return model.VehicleLand
}

func (g *Generator) speedFor(vt model.VehicleType) float64 {
	switch vt {
	case model.VehicleAirplane:
		return g.faker.Float64Range(0, 600)
	case model.VehicleBoat:
		return g.faker.Float64Range(0, 45)
	}
	return g.faker.Float64Range(0, 120)
}
