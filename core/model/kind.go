package model

import "fmt"

// ModelKind selects one of the five rule functions.
type ModelKind string

const (
	ModelStatus     ModelKind = "status"
	ModelSpeed      ModelKind = "speed"
	ModelEmergency  ModelKind = "emergency"
	ModelWeather    ModelKind = "weather"
	ModelClustering ModelKind = "clustering"
)

// ErrUnknownModelKind is returned when a dispatch selector does not match
// any rule function.
var ErrUnknownModelKind = fmt.Errorf("unknown model kind")

// Kinds lists all supported model kinds in a stable order.
func Kinds() []ModelKind {
	return []ModelKind{ModelStatus, ModelSpeed, ModelEmergency, ModelWeather, ModelClustering}
}

// ParseModelKind validates a raw selector string.
func ParseModelKind(s string) (ModelKind, error) {
	k := ModelKind(s)
	switch k {
	case ModelStatus, ModelSpeed, ModelEmergency, ModelWeather, ModelClustering:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownModelKind, s)
}

func (k ModelKind) String() string { return string(k) }
