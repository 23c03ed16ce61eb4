package rules

import (
	"fmt"

	"fleetpredict/core/model"
)

// Pair couples one input record with its prediction.
type Pair struct {
	Input  model.FeatureRecord    `json:"input"`
	Output model.PredictionResult `json:"output"`
}

// BatchPredict applies the rule function selected by kind to every record
// in order, returning a parallel slice of input/output pairs. An unknown
// kind fails before any record is evaluated.
func (e *Engine) BatchPredict(records []model.FeatureRecord, kind model.ModelKind) ([]Pair, error) {
	if _, err := model.ParseModelKind(kind.String()); err != nil {
		return nil, fmt.Errorf("batch predict: %w", err)
	}
	pairs := make([]Pair, 0, len(records))
	for _, rec := range records {
		out, err := e.Predict(kind, rec)
		if err != nil {
			return nil, fmt.Errorf("batch predict: %w", err)
		}
		pairs = append(pairs, Pair{Input: rec, Output: out})
	}
	return pairs, nil
}
