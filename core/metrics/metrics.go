// Package metrics defines interfaces for exporting prediction events to
// observability backends. Sinks like PromSink and InfluxSink record one
// event per prediction and can be combined with a multi sink. The factory
// helpers build the configured sinks from the config file.
package metrics

import (
	"time"

	"fleetpredict/core/model"
)

// PredictionEvent is emitted once per logged prediction.
type PredictionEvent struct {
	Model         model.ModelKind
	Confidence    float64
	HasConfidence bool
	Emergency     bool
	Time          time.Time
}

// Sink records prediction events for observability purposes.
type Sink interface {
	RecordPrediction(ev PredictionEvent) error
}

// NopSink implements Sink with a no-op method.
type NopSink struct{}

func (NopSink) RecordPrediction(PredictionEvent) error { return nil }
