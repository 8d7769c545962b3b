package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the built-in engine configuration.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Window: WindowConfig{
			Width:  80,
			Height: 24,
			Title:  "Critterbits",
		},
		Debug: DebugConfig{
			DrawInfoPane: true,
		},
		Input: InputConfig{
			Keyboard: true,
		},
		Physics: PhysicsConfig{
			MaxResolvePasses: 16,
		},
		AssetPath: "assets",
		LogLevel:  "info",
		FPS:       30,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
