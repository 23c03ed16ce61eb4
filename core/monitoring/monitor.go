// Package monitoring keeps an append-only in-memory log of past predictions
// and summary metrics derived from it. Metrics are recomputed from the full
// log on every append, so they are always a pure function of the current
// log contents. Entries are never removed or edited for the lifetime of
// the process.
package monitoring

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	coremetrics "fleetpredict/core/metrics"
	"fleetpredict/core/model"
)

// sampleSize bounds the number of recent entries returned by Export.
const sampleSize = 10

// LogEntry is one logged prediction.
type LogEntry struct {
	ID        string                 `json:"id"`
	Model     model.ModelKind        `json:"model"`
	Input     model.FeatureRecord    `json:"input"`
	Output    model.PredictionResult `json:"output"`
	Timestamp time.Time              `json:"timestamp"`
}

// Metrics summarizes the prediction log.
type Metrics struct {
	TotalPredictions    int     `json:"total_predictions"`
	EmergencyDetections int     `json:"emergency_detections"`
	AvgConfidence       float64 `json:"avg_confidence"`
}

// Export is the read-only snapshot returned by ExportMetrics.
type Export struct {
	Metrics
	LastUpdated       time.Time  `json:"last_updated"`
	PredictionsSample []LogEntry `json:"predictions_sample"`
}

// Monitor owns one prediction log. Each instance is independent; callers
// wanting per-session histories create one Monitor per session.
type Monitor struct {
	mu      sync.RWMutex
	entries []LogEntry
	metrics Metrics
	sink    coremetrics.Sink
	now     func() time.Time
}

// NewMonitor creates a Monitor forwarding each logged prediction to sink.
// A nil sink disables forwarding.
func NewMonitor(sink coremetrics.Sink) *Monitor {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	return &Monitor{sink: sink, now: time.Now}
}

// WithClock overrides the timestamp source.
func (m *Monitor) WithClock(now func() time.Time) *Monitor {
	m.now = now
	return m
}

// LogPrediction appends an entry to the log and recomputes the metrics.
// A zero ts is replaced with the current time, so append order matches
// chronological order when timestamps are assigned here.
func (m *Monitor) LogPrediction(kind model.ModelKind, in model.FeatureRecord, out model.PredictionResult, ts time.Time) LogEntry {
	m.mu.Lock()
	if ts.IsZero() {
		ts = m.now()
	}
	entry := LogEntry{
		ID:        uuid.NewString(),
		Model:     kind,
		Input:     in,
		Output:    out,
		Timestamp: ts,
	}
	m.entries = append(m.entries, entry)
	m.metrics = m.recompute()
	m.mu.Unlock()

	conf, hasConf := out.ConfidenceValue()
	_ = m.sink.RecordPrediction(coremetrics.PredictionEvent{
		Model:         kind,
		Confidence:    conf,
		HasConfidence: hasConf,
		Emergency:     isEmergency(entry),
		Time:          ts,
	})
	return entry
}

// Metrics returns the current summary metrics.
func (m *Monitor) Metrics() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metrics
}

// Len returns the number of logged predictions.
func (m *Monitor) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// ExportMetrics returns the metrics, the export time and the last ten log
// entries in insertion order. It does not mutate the log.
func (m *Monitor) ExportMetrics() Export {
	m.mu.RLock()
	defer m.mu.RUnlock()
	start := len(m.entries) - sampleSize
	if start < 0 {
		start = 0
	}
	sample := make([]LogEntry, len(m.entries)-start)
	copy(sample, m.entries[start:])
	return Export{
		Metrics:           m.metrics,
		LastUpdated:       m.now(),
		PredictionsSample: sample,
	}
}

// recompute derives the metrics from the full log. Callers hold the lock.
func (m *Monitor) recompute() Metrics {
	out := Metrics{TotalPredictions: len(m.entries)}
	var confidences []float64
	for _, e := range m.entries {
		if isEmergency(e) {
			out.EmergencyDetections++
		}
		if c, ok := e.Output.ConfidenceValue(); ok {
			confidences = append(confidences, c)
		}
	}
	if len(confidences) > 0 {
		out.AvgConfidence = stat.Mean(confidences, nil)
	}
	return out
}

func isEmergency(e LogEntry) bool {
	if e.Model != model.ModelEmergency {
		return false
	}
	res, ok := e.Output.(model.EmergencyResult)
	return ok && res.IsEmergency()
}
