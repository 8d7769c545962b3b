package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	var cfg EngineConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultEngineConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultEngineConfig())
	}
}

func TestLoadCustomPathLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	data := []byte("window:\n  width: 120\nphysics:\n  max_resolve_passes: 4\nlog_level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Window.Width != 120 {
		t.Errorf("Window.Width = %d, expected 120", cfg.Window.Width)
	}
	if cfg.Window.Height != 24 {
		t.Errorf("Window.Height = %d, expected default 24", cfg.Window.Height)
	}
	if cfg.Physics.MaxResolvePasses != 4 {
		t.Errorf("MaxResolvePasses = %d, expected 4", cfg.Physics.MaxResolvePasses)
	}
	if cfg.Level() != log.DebugLevel {
		t.Errorf("Level() = %v, expected debug", cfg.Level())
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing explicit path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed yaml should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*EngineConfig)
		check  func(EngineConfig) bool
	}{
		{"zero window", func(c *EngineConfig) { c.Window.Width, c.Window.Height = 0, -3 },
			func(c EngineConfig) bool { return c.Window.Width == 1 && c.Window.Height == 1 }},
		{"fps too high", func(c *EngineConfig) { c.FPS = 1000 },
			func(c EngineConfig) bool { return c.FPS == MaxFPS }},
		{"fps zero", func(c *EngineConfig) { c.FPS = 0 },
			func(c EngineConfig) bool { return c.FPS == MinFPS }},
		{"no passes", func(c *EngineConfig) { c.Physics.MaxResolvePasses = 0 },
			func(c EngineConfig) bool { return c.Physics.MaxResolvePasses == 1 }},
		{"bad level", func(c *EngineConfig) { c.LogLevel = "loud" },
			func(c EngineConfig) bool { return c.LogLevel == "info" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultEngineConfig()
			tc.mutate(&cfg)
			ok, fixes := cfg.Validate()
			if ok || len(fixes) == 0 {
				t.Errorf("Validate() = %v, %v, expected a repair", ok, fixes)
			}
			if !tc.check(cfg) {
				t.Errorf("config not repaired: %+v", cfg)
			}
		})
	}

	cfg := DefaultEngineConfig()
	if ok, fixes := cfg.Validate(); !ok {
		t.Errorf("defaults should validate, fixes = %v", fixes)
	}
}

func TestDeltaTime(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.FPS = 50
	if got := cfg.DeltaTime(); got != 0.02 {
		t.Errorf("DeltaTime() = %v, expected 0.02", got)
	}
}
