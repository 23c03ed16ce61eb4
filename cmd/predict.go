package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fleetpredict/core/model"
)

var predictFlags struct {
	modelKind        string
	latitude         float64
	longitude        float64
	speed            float64
	heading          float64
	vehicleType      string
	weatherType      string
	weatherIntensity float64
	weatherOpacity   float64
	windSpeed        float64
	hourOfDay        int
	currentSpeed     float64
	highSpeed        bool
	showMetrics      bool
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run one rule function over a record built from flags",
	RunE:  runPredict,
}

func init() {
	f := predictCmd.Flags()
	f.StringVarP(&predictFlags.modelKind, "model", "m", "status", "model kind: status, speed, emergency, weather or clustering")
	f.Float64Var(&predictFlags.latitude, "lat", 0, "latitude")
	f.Float64Var(&predictFlags.longitude, "lon", 0, "longitude")
	f.Float64Var(&predictFlags.speed, "speed", 0, "speed in km/h")
	f.Float64Var(&predictFlags.heading, "heading", 0, "heading in degrees")
	f.StringVar(&predictFlags.vehicleType, "vehicle-type", "", "vehicle type: airplane, boat or land_vehicle")
	f.StringVar(&predictFlags.weatherType, "weather-type", "", "weather category")
	f.Float64Var(&predictFlags.weatherIntensity, "weather-intensity", 0, "weather intensity 0-1")
	f.Float64Var(&predictFlags.weatherOpacity, "weather-opacity", 0, "weather opacity 0-1")
	f.Float64Var(&predictFlags.windSpeed, "wind-speed", 0, "wind speed in km/h")
	f.IntVar(&predictFlags.hourOfDay, "hour", -1, "hour of day 0-23, -1 for current clock")
	f.Float64Var(&predictFlags.currentSpeed, "current-speed", 0, "current speed in km/h")
	f.BoolVar(&predictFlags.highSpeed, "high-speed", false, "high speed flag")
	f.BoolVar(&predictFlags.showMetrics, "metrics", false, "print monitor metrics after the prediction")
	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	kind, err := model.ParseModelKind(predictFlags.modelKind)
	if err != nil {
		return err
	}
	svc, err := newService()
	if err != nil {
		return err
	}
	svc.StartMetrics(cmd.Context())

	rec := model.FeatureRecord{
		Latitude:         predictFlags.latitude,
		Longitude:        predictFlags.longitude,
		Speed:            predictFlags.speed,
		Heading:          predictFlags.heading,
		VehicleType:      model.VehicleType(predictFlags.vehicleType),
		WeatherType:      predictFlags.weatherType,
		WeatherIntensity: predictFlags.weatherIntensity,
		WeatherOpacity:   predictFlags.weatherOpacity,
		WindSpeed:        predictFlags.windSpeed,
		CurrentSpeed:     predictFlags.currentSpeed,
		IsHighSpeed:      predictFlags.highSpeed,
	}
	if predictFlags.hourOfDay >= 0 {
		hour := predictFlags.hourOfDay
		rec.HourOfDay = &hour
	}

	out, err := svc.Predict(kind, rec)
	if err != nil {
		return err
	}
	if err := printJSON(os.Stdout, out); err != nil {
		return err
	}
	if predictFlags.showMetrics {
		return printJSON(os.Stderr, svc.Monitor.ExportMetrics())
	}
	return nil
}

func printJSON(w *os.File, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
