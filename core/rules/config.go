package rules

import "fmt"

// Mode selects which of the two historical rule sets the engine applies.
type Mode string

const (
	// ModeSimple applies the coarse thresholds of the basic rule set.
	ModeSimple Mode = "simple"
	// ModeDetailed applies the full decision lists and weighted scores.
	ModeDetailed Mode = "detailed"
)

// Config defines settings for the rules engine.
type Config struct {
	Mode      Mode      `json:"mode"`
	Reference Reference `json:"reference"`
}

// SetDefaults applies the canonical mode and reference data.
func (c *Config) SetDefaults() {
	if c.Mode == "" {
		c.Mode = ModeDetailed
	}
	c.Reference.SetDefaults()
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	if c.Mode != ModeSimple && c.Mode != ModeDetailed {
		return fmt.Errorf("unknown rules mode %q", c.Mode)
	}
	if len(c.Reference.Clusters) != len(c.Reference.Centers) {
		return fmt.Errorf("reference data mismatch: %d clusters, %d centers",
			len(c.Reference.Clusters), len(c.Reference.Centers))
	}
	return nil
}
