package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fleetpredict/app"
	"fleetpredict/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "fleetpredict",
	Short: "Vehicle telemetry prediction toolkit",
	Long: `fleetpredict evaluates deterministic prediction rules over vehicle
telemetry records: operational status, expected speed, emergency detection,
weather impact and cluster assignment. Each prediction is logged to an
in-memory monitor whose metrics can be exported to Prometheus or InfluxDB.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (built-in defaults when omitted)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func newService() (*app.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return app.New(cfg)
}

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
