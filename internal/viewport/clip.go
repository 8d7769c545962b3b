// Package viewport computes what part of an entity is visible through the
// camera and where it lands on screen.
package viewport

import "github.com/vovakirdan/critterbits/internal/core"

// ZIndex orders render layers.
type ZIndex int

const (
	ZBackground ZIndex = iota
	ZMidground
	ZForeground
	ZGui
)

func (z ZIndex) String() string {
	switch z {
	case ZBackground:
		return "background"
	case ZMidground:
		return "midground"
	case ZForeground:
		return "foreground"
	case ZGui:
		return "gui"
	default:
		return "unknown"
	}
}

// ViewClip describes one visible entity.
// Source is in the entity's local space (origin at its top-left corner).
// Dest is in viewport space (origin at the viewport's top-left corner).
type ViewClip struct {
	Source core.Rect
	Dest   core.Rect
	Z      ZIndex
}

// Visible reports whether any part of the entity made it through clipping.
func (c ViewClip) Visible() bool {
	return c.Dest.HasArea()
}

// GetViewClip clips entityDim against view, both in world space.
//
// The returned Dest always lies inside [0, view.W] x [0, view.H] and Source
// always lies inside the entity's own size. Entities completely outside the
// view produce a zero-sized clip.
func GetViewClip(view, entityDim core.Rect) ViewClip {
	srcX, destX, w := clipAxis(entityDim.X-view.X, entityDim.W, view.W)
	srcY, destY, h := clipAxis(entityDim.Y-view.Y, entityDim.H, view.H)
	return ViewClip{
		Source: core.NewRect(srcX, srcY, w, h),
		Dest:   core.NewRect(destX, destY, w, h),
		Z:      ZMidground,
	}
}

// clipAxis clips a span starting at rel (relative to the view origin) with
// the given length against a view of viewLen. It returns the source offset
// within the span, the destination offset within the view and the visible length.
func clipAxis(rel, length, viewLen int) (src, dest, visible int) {
	dest = rel
	visible = length
	if dest < 0 {
		// leading edge is before the view origin
		src = core.Min(-dest, core.Max(length, 0))
		visible = length - src
		dest = 0
	}
	if dest > viewLen {
		dest = viewLen
	}
	if overflow := dest + visible - viewLen; overflow > 0 {
		visible -= overflow
	}
	if visible < 0 {
		visible = 0
	}
	return src, dest, visible
}
