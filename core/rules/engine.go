package rules

import (
	"math"
	"time"

	"fleetpredict/core/model"
)

// Engine evaluates the five prediction functions. It is stateless apart
// from its configuration and safe for concurrent use.
type Engine struct {
	mode Mode
	ref  Reference
	now  func() time.Time
}

// New creates an Engine from the given configuration. Defaults are applied
// so a zero Config yields the detailed rule set with the published
// reference data.
func New(cfg Config) *Engine {
	cfg.SetDefaults()
	return &Engine{mode: cfg.Mode, ref: cfg.Reference, now: time.Now}
}

// WithClock returns a copy of the engine using the given clock. Only the
// emergency rule consults the clock, and only for records without an
// hour_of_day feature.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	cp := *e
	cp.now = now
	return &cp
}

// Mode reports which rule set the engine applies.
func (e *Engine) Mode() Mode { return e.mode }

// Reference exposes the static reference data for display purposes.
func (e *Engine) Reference() Reference { return e.ref }

// Predict dispatches a record to the rule function selected by kind.
func (e *Engine) Predict(kind model.ModelKind, f model.FeatureRecord) (model.PredictionResult, error) {
	switch kind {
	case model.ModelStatus:
		return e.PredictStatus(f), nil
	case model.ModelSpeed:
		return e.PredictSpeed(f), nil
	case model.ModelEmergency:
		return e.PredictEmergency(f), nil
	case model.ModelWeather:
		return e.PredictWeatherImpact(f), nil
	case model.ModelClustering:
		return e.PredictCluster(f), nil
	}
	return nil, model.ErrUnknownModelKind
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
