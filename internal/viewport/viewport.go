package viewport

import (
	"github.com/vovakirdan/critterbits/internal/core"
)

// Locator resolves an entity id to its current bounds. The second result is
// false once the entity is gone.
type Locator interface {
	EntityDim(id core.EntityID) (core.Rect, bool)
}

// Viewport is the camera: a world-space rectangle that can track an entity.
type Viewport struct {
	Dim core.Rect

	// Bounds limits scrolling when it has area. Zero means unbounded.
	Bounds core.Rect

	following core.EntityID
}

// New creates a viewport of the given size at the world origin.
func New(w, h int) *Viewport {
	return &Viewport{Dim: core.NewRect(0, 0, w, h)}
}

// Resize changes the viewport size, keeping its position.
func (v *Viewport) Resize(w, h int) {
	v.Dim.W, v.Dim.H = w, h
	v.clampToBounds()
}

// SetEntityToFollow makes the viewport keep id centered. Pass
// core.InvalidEntityID to stop following.
func (v *Viewport) SetEntityToFollow(id core.EntityID) {
	v.following = id
}

// Following returns the id being followed, or core.InvalidEntityID.
func (v *Viewport) Following() core.EntityID {
	return v.following
}

// Update recenters on the followed entity. Following stops once the entity
// can no longer be located.
func (v *Viewport) Update(loc Locator) {
	if v.following == core.InvalidEntityID || loc == nil {
		return
	}
	dim, ok := loc.EntityDim(v.following)
	if !ok {
		v.following = core.InvalidEntityID
		return
	}
	cx, cy := dim.Center()
	v.Dim.X = cx - v.Dim.W/2
	v.Dim.Y = cy - v.Dim.H/2
	v.clampToBounds()
}

// CenterOn moves the viewport so p is in the middle.
func (v *Viewport) CenterOn(p core.Point) {
	v.Dim.X = p.X - v.Dim.W/2
	v.Dim.Y = p.Y - v.Dim.H/2
	v.clampToBounds()
}

func (v *Viewport) clampToBounds() {
	if !v.Bounds.HasArea() {
		return
	}
	v.Dim.X = clampSpan(v.Dim.X, v.Dim.W, v.Bounds.X, v.Bounds.W)
	v.Dim.Y = clampSpan(v.Dim.Y, v.Dim.H, v.Bounds.Y, v.Bounds.H)
}

// clampSpan keeps [pos, pos+length) inside [lo, lo+limit). A span larger
// than the limit is centered on it instead.
func clampSpan(pos, length, lo, limit int) int {
	if length >= limit {
		return lo - (length-limit)/2
	}
	return core.Clamp(pos, lo, lo+limit-length)
}

// CanSee reports whether dim touches the viewport at all.
func (v *Viewport) CanSee(dim core.Rect) bool {
	return v.Dim.Intersects(dim)
}

// ViewableRect clips a world-space rectangle for rendering on layer z.
func (v *Viewport) ViewableRect(dim core.Rect, z ZIndex) ViewClip {
	clip := GetViewClip(v.Dim, dim)
	clip.Z = z
	return clip
}

// StaticViewableRect clips a rectangle already expressed in screen space,
// such as a GUI panel, ignoring where the viewport has scrolled to.
func (v *Viewport) StaticViewableRect(dim core.Rect, z ZIndex) ViewClip {
	clip := GetViewClip(core.NewRect(0, 0, v.Dim.W, v.Dim.H), dim)
	clip.Z = z
	return clip
}
