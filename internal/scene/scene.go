// Package scene loads YAML scene files: a tile grid that is baked into
// collision regions plus a list of sprites with their scripts.
package scene

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/critterbits/internal/collision"
	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/registry"
	"github.com/vovakirdan/critterbits/internal/viewport"
)

// ErrUnknownScript is returned when a sprite names a script nobody registered.
var ErrUnknownScript = errors.New("scene: unknown script")

// SolidTile marks a blocking cell in the tile grid. Any other rune is empty.
const SolidTile = '#'

// Scene is the parsed form of a scene file.
type Scene struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	TileWidth  int      `yaml:"tile_width"`
	TileHeight int      `yaml:"tile_height"`
	Tiles      []string `yaml:"tiles"`
	Follow     string   `yaml:"follow"`
	Bounded    bool     `yaml:"bounded"`
	Sprites    []Sprite `yaml:"sprites"`
}

// Sprite describes one entity placed by the scene.
type Sprite struct {
	Name      string          `yaml:"name"`
	Tag       string          `yaml:"tag"`
	X         int             `yaml:"x"`
	Y         int             `yaml:"y"`
	W         int             `yaml:"w"`
	H         int             `yaml:"h"`
	Collision string          `yaml:"collision"`
	Box       []int           `yaml:"box"` // x, y, w, h relative to the sprite
	Script    string          `yaml:"script"`
	Params    registry.Params `yaml:"params"`
	Glyph     string          `yaml:"glyph"`
	Color     string          `yaml:"color"`
	Z         string          `yaml:"z"`
	TimeScale *float64        `yaml:"time_scale"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: cannot read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: cannot parse: %w", err)
	}
	if s.TileWidth <= 0 {
		s.TileWidth = 1
	}
	if s.TileHeight <= 0 {
		s.TileHeight = 1
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks ids, sizes, enum spellings and script names.
func (s *Scene) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return errors.New("scene: id is required")
	}

	names := make(map[string]bool)
	for i, sp := range s.Sprites {
		label := sp.Name
		if label == "" {
			label = fmt.Sprintf("#%d", i)
		}
		if sp.W <= 0 || sp.H <= 0 {
			return fmt.Errorf("scene: sprite %s: size %dx%d must be positive", label, sp.W, sp.H)
		}
		if _, err := collision.ParseKind(sp.Collision); err != nil {
			return fmt.Errorf("scene: sprite %s: %w", label, err)
		}
		if len(sp.Box) != 0 && len(sp.Box) != 4 {
			return fmt.Errorf("scene: sprite %s: box needs 4 values, got %d", label, len(sp.Box))
		}
		if sp.Script != "" && !registry.Exists(sp.Script) {
			return fmt.Errorf("scene: sprite %s: %w %q", label, ErrUnknownScript, sp.Script)
		}
		if sp.Color != "" {
			if _, ok := core.ParseColor(sp.Color); !ok {
				return fmt.Errorf("scene: sprite %s: unknown color %q", label, sp.Color)
			}
		}
		if _, err := parseZ(sp.Z); err != nil {
			return fmt.Errorf("scene: sprite %s: %w", label, err)
		}
		if sp.Name != "" {
			names[sp.Name] = true
		}
	}

	if s.Follow != "" && !names[s.Follow] {
		return fmt.Errorf("scene: follow target %q is not a sprite", s.Follow)
	}
	return nil
}

// WorldSize returns the extent of the tile grid in world units.
func (s *Scene) WorldSize() (w, h int) {
	cols := 0
	for _, row := range s.Tiles {
		cols = core.Max(cols, len([]rune(row)))
	}
	return cols * s.TileWidth, len(s.Tiles) * s.TileHeight
}

// SolidTiles returns one tile-sized rectangle per solid cell, row by row.
func (s *Scene) SolidTiles() []core.Rect {
	var tiles []core.Rect
	for y, row := range s.Tiles {
		for x, r := range []rune(row) {
			if r == SolidTile {
				tiles = append(tiles, core.NewRect(x*s.TileWidth, y*s.TileHeight, s.TileWidth, s.TileHeight))
			}
		}
	}
	return tiles
}

// TileHash fingerprints the tile grid and tile size. Baked regions are only
// reused when the hash matches.
func (s *Scene) TileHash() string {
	h := sha256.New()
	fmt.Fprintf(h, "%dx%d\n", s.TileWidth, s.TileHeight)
	for _, row := range s.Tiles {
		h.Write([]byte(row))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

func parseZ(name string) (viewport.ZIndex, error) {
	switch strings.ToLower(name) {
	case "", "midground":
		return viewport.ZMidground, nil
	case "background":
		return viewport.ZBackground, nil
	case "foreground":
		return viewport.ZForeground, nil
	case "gui":
		return viewport.ZGui, nil
	default:
		return viewport.ZMidground, fmt.Errorf("unknown z %q", name)
	}
}
