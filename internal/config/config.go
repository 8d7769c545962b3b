// Package config provides YAML-based engine configuration loading.
package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// EngineConfig contains all configuration for the engine runtime.
type EngineConfig struct {
	Window    WindowConfig  `yaml:"window"`
	Debug     DebugConfig   `yaml:"debug"`
	Input     InputConfig   `yaml:"input"`
	Physics   PhysicsConfig `yaml:"physics"`
	AssetPath string        `yaml:"asset_path"`
	LogLevel  string        `yaml:"log_level"`
	FPS       int           `yaml:"fps"`
}

// WindowConfig defines the viewport size, in world units.
type WindowConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Title      string `yaml:"title"`
	FullScreen bool   `yaml:"full_screen"`
}

// DebugConfig toggles the debug overlays of the viewer.
type DebugConfig struct {
	DrawInfoPane    bool `yaml:"draw_info_pane"`
	DrawMapRegions  bool `yaml:"draw_map_regions"`
	DrawSpriteRects bool `yaml:"draw_sprite_rects"`
}

// InputConfig selects which input devices are read.
type InputConfig struct {
	Keyboard   bool `yaml:"keyboard"`
	Mouse      bool `yaml:"mouse"`
	Controller bool `yaml:"controller"`
}

// PhysicsConfig tunes collision resolution.
type PhysicsConfig struct {
	MaxResolvePasses int `yaml:"max_resolve_passes"`
}

const (
	MinFPS = 1
	MaxFPS = 240
)

// Validate repairs out-of-range values in place. It returns false when
// anything had to be changed, together with a description of each fix.
func (c *EngineConfig) Validate() (bool, []string) {
	var fixes []string
	fix := func(format string, args ...any) {
		fixes = append(fixes, fmt.Sprintf(format, args...))
	}

	if c.Window.Width < 1 {
		fix("window.width %d raised to 1", c.Window.Width)
		c.Window.Width = 1
	}
	if c.Window.Height < 1 {
		fix("window.height %d raised to 1", c.Window.Height)
		c.Window.Height = 1
	}
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		fps := c.FPS
		if fps < MinFPS {
			c.FPS = MinFPS
		} else {
			c.FPS = MaxFPS
		}
		fix("fps %d clamped to %d", fps, c.FPS)
	}
	if c.Physics.MaxResolvePasses < 1 {
		fix("physics.max_resolve_passes %d raised to 1", c.Physics.MaxResolvePasses)
		c.Physics.MaxResolvePasses = 1
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		fix("log_level %q replaced by info", c.LogLevel)
		c.LogLevel = "info"
	}
	return len(fixes) == 0, fixes
}

// Level returns the parsed log level, info when unset or unknown.
func (c EngineConfig) Level() log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// DeltaTime returns the fixed frame step in seconds.
func (c EngineConfig) DeltaTime() float64 {
	if c.FPS <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.FPS)
}
