package metrics

import "fleetpredict/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusListen, when set, starts an HTTP server exposing /metrics
	// on the given address.
	PrometheusListen string `json:"prometheus_listen"`
}
