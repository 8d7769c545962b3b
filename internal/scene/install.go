package scene

import (
	"fmt"

	"github.com/vovakirdan/critterbits/internal/collision"
	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/engine"
	"github.com/vovakirdan/critterbits/internal/registry"
	"github.com/vovakirdan/critterbits/internal/viewport"
)

// Install clears eng and populates it with one tilemap region entity per
// baked region followed by the scene's sprites, in file order.
func Install(eng *engine.Engine, s *Scene, bake BakeResult) error {
	eng.Clear()

	for _, r := range bake.Regions {
		ent := engine.NewEntity("", r, engine.CapTilemapRegion|engine.CapCollider)
		ent.Tag = "tilemap"
		ent.Kind = collision.KindCollide
		ent.Z = viewport.ZBackground
		ent.Glyph = SolidTile
		ent.Color = core.ColorGray
		eng.Add(ent)
	}

	for _, sp := range s.Sprites {
		ent, err := newSprite(sp)
		if err != nil {
			return err
		}
		eng.Add(ent)
		if s.Follow != "" && sp.Name == s.Follow {
			eng.Viewport.SetEntityToFollow(ent.ID)
		}
	}

	if s.Bounded {
		w, h := s.WorldSize()
		eng.Viewport.Bounds = core.NewRect(0, 0, w, h)
	} else {
		eng.Viewport.Bounds = core.Rect{}
	}

	eng.Logger().Info("scene loaded", "scene", s.ID,
		"regions", len(bake.Regions), "tiles", bake.Tiles, "sprites", len(s.Sprites), "cached", bake.Cached)
	return nil
}

func newSprite(sp Sprite) (*engine.Entity, error) {
	kind, err := collision.ParseKind(sp.Collision)
	if err != nil {
		return nil, fmt.Errorf("scene: sprite %s: %w", sp.Name, err)
	}
	z, err := parseZ(sp.Z)
	if err != nil {
		return nil, fmt.Errorf("scene: sprite %s: %w", sp.Name, err)
	}

	caps := engine.CapSprite
	if kind != collision.KindNone {
		caps |= engine.CapCollider
	}
	ent := engine.NewEntity(sp.Name, core.NewRect(sp.X, sp.Y, sp.W, sp.H), caps)
	ent.Tag = sp.Tag
	ent.Kind = kind
	ent.Z = z
	if len(sp.Box) == 4 {
		ent.Box = core.NewRect(sp.Box[0], sp.Box[1], sp.Box[2], sp.Box[3])
	}
	if sp.TimeScale != nil {
		ent.TimeScale = *sp.TimeScale
	}
	if g := []rune(sp.Glyph); len(g) > 0 {
		ent.Glyph = g[0]
	}
	if c, ok := core.ParseColor(sp.Color); ok {
		ent.Color = c
	}

	if sp.Script != "" {
		script, err := registry.Create(sp.Script, sp.Params)
		if err != nil {
			return nil, fmt.Errorf("scene: sprite %s: %w", sp.Name, err)
		}
		ent.Script = script
	}
	return ent, nil
}
