package tui

import (
	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/engine"
	"github.com/vovakirdan/critterbits/internal/viewport"
)

// Overlays selects the debug drawings added on top of the scene.
type Overlays struct {
	MapRegions  bool // outline every tilemap region
	SpriteRects bool // outline every sprite
}

// Compose clears dst and draws every visible entity of eng into it, one cell
// per world unit. Each entity fills its clipped destination rect with its glyph.
func Compose(dst *core.Screen, eng *engine.Engine, ov Overlays) {
	dst.Clear()
	eng.Render(func(ent *engine.Entity, clip viewport.ViewClip) {
		dst.DrawRect(clip.Dest, ent.Glyph, ent.Color)

		switch {
		case ov.MapRegions && ent.Has(engine.CapTilemapRegion):
			dst.DrawOverlay(clip.Dest, core.ColorCyan)
		case ov.SpriteRects && ent.Has(engine.CapSprite):
			dst.DrawOverlay(clip.Dest, core.ColorMagenta)
		}
	})
}
