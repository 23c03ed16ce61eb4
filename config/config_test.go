package config

import (
	"os"
	"path/filepath"
	"testing"

	"fleetpredict/core/rules"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `rules:
  mode: "simple"
metrics:
  prometheus_listen: ":9100"
  sinks:
    - type: "nop"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Rules.Mode != rules.ModeSimple {
		t.Fatalf("mode = %q, want simple", cfg.Rules.Mode)
	}
	if cfg.Metrics.PrometheusListen != ":9100" {
		t.Fatalf("prometheus_listen = %q", cfg.Metrics.PrometheusListen)
	}
	if len(cfg.Metrics.Sinks) != 1 || cfg.Metrics.Sinks[0].Type != "nop" {
		t.Fatalf("sinks = %#v", cfg.Metrics.Sinks)
	}
	// Reference defaults fill in when the file omits them.
	if cfg.Rules.Reference.SpeedRMSE != 25.49 {
		t.Fatalf("speed rmse = %v", cfg.Rules.Reference.SpeedRMSE)
	}
	if len(cfg.Rules.Reference.Clusters) != 3 {
		t.Fatalf("clusters = %#v", cfg.Rules.Reference.Clusters)
	}
}

func TestLoadDefaultsMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Rules.Mode != rules.ModeDetailed {
		t.Fatalf("default mode = %q, want detailed", cfg.Rules.Mode)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLoadBadMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "rules:\n  mode: \"fuzzy\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "rules:\n  mode: \"detailed\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FP_RULES__MODE", "simple")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load error: %v", err)
	}
	if cfg.Rules.Mode != rules.ModeSimple {
		t.Fatalf("env override ignored, mode = %q", cfg.Rules.Mode)
	}
}
