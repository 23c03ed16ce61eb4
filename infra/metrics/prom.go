package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "fleetpredict/core/metrics"
)

// PromSink records prediction events in Prometheus metrics.
type PromSink struct {
	predictions *prometheus.CounterVec
	emergencies prometheus.Counter
	confidence  prometheus.Histogram
}

// NewPromSink registers prediction metrics on the default Prometheus
// registerer. The /metrics server is started separately.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer. Metrics
// already registered by a previous sink are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	predictions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fleetpredict_predictions_total",
		Help: "Total number of predictions by model kind",
	}, []string{"model", "emergency"})
	emergencies := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "fleetpredict_emergency_detections_total",
		Help: "Total number of emergency detections",
	})
	confidence := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "fleetpredict_prediction_confidence",
		Help:    "Distribution of prediction confidence values",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})

	if err := reg.Register(predictions); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			predictions = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(emergencies); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			emergencies = are.ExistingCollector.(prometheus.Counter)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(confidence); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			confidence = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{predictions: predictions, emergencies: emergencies, confidence: confidence}, nil
}

// RecordPrediction increments the counters for one prediction event.
func (s *PromSink) RecordPrediction(ev coremetrics.PredictionEvent) error {
	s.predictions.WithLabelValues(ev.Model.String(), strconv.FormatBool(ev.Emergency)).Inc()
	if ev.Emergency {
		s.emergencies.Inc()
	}
	if ev.HasConfidence {
		s.confidence.Observe(ev.Confidence)
	}
	return nil
}
