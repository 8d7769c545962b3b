package collision

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/critterbits/internal/core"
)

// DefaultMaxPasses bounds the fixpoint loop in Resolve.
const DefaultMaxPasses = 16

// Resolver corrects requested movement against the active colliders.
type Resolver struct {
	registry  Registry
	tracker   *Tracker
	maxPasses int
	logger    *log.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithMaxPasses sets the pass cap. Values below 1 are ignored.
func WithMaxPasses(n int) ResolverOption {
	return func(r *Resolver) {
		if n >= 1 {
			r.maxPasses = n
		}
	}
}

// WithLogger sets the logger used to report runaway resolution.
func WithLogger(logger *log.Logger) ResolverOption {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResolver creates a resolver reading colliders from registry and
// reporting contacts through tracker.
func NewResolver(registry Registry, tracker *Tracker, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry:  registry,
		tracker:   tracker,
		maxPasses: DefaultMaxPasses,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns where c may move when it asks to go from (oldX, oldY) to
// (newX, newY).
//
// Colliders that are not KindCollide get (newX, newY) back untouched. For
// blocking colliders the candidate box is tested against every other active,
// non-None collider; each overlap notifies both sides and, when the other
// side also blocks, pushes the candidate back along each axis it moved on.
// Passes repeat until one leaves the candidate where it started, or until
// the pass cap is hit, in which case the last candidate is returned.
func (r *Resolver) Resolve(c *Collider, oldX, oldY, newX, newY int) core.Point {
	pos := core.Pt(newX, newY)
	if c == nil || c.Kind != KindCollide {
		return pos
	}
	old := core.Pt(oldX, oldY)

	for pass := 1; ; pass++ {
		start := pos
		r.registry.IterateActiveColliders(func(other *Collider) bool {
			if other.ID == c.ID || other.Kind == KindNone {
				return false
			}
			otherRect := other.CollisionRect()
			if !core.Overlap(c.rectAt(pos), otherRect) {
				r.tracker.Forget(c, other)
				return false
			}
			if other.Kind == KindCollide {
				pos = pushBack(pos, old, c.Box, otherRect)
			}
			r.tracker.Notify(c, other)
			r.tracker.Notify(other, c)
			return false
		})

		if pos == start {
			return pos
		}
		if pass >= r.maxPasses {
			r.logger.Warn("collision resolution did not settle",
				"entity", c.ID, "passes", pass, "from", old, "to", pos)
			return pos
		}
	}
}

// Detect reports overlaps for a non-blocking mover placed at (x, y) without
// correcting its position. KindNone colliders are ignored.
func (r *Resolver) Detect(c *Collider, x, y int) {
	if c == nil || c.Kind == KindNone {
		return
	}
	rect := c.rectAt(core.Pt(x, y))
	r.registry.IterateActiveColliders(func(other *Collider) bool {
		if other.ID == c.ID || other.Kind == KindNone {
			return false
		}
		if !core.Overlap(rect, other.CollisionRect()) {
			r.tracker.Forget(c, other)
			return false
		}
		r.tracker.Notify(c, other)
		r.tracker.Notify(other, c)
		return false
	})
}

// pushBack clamps pos so the box no longer enters other, never moving past
// old. Axes without movement are left alone.
func pushBack(pos, old core.Point, box, other core.Rect) core.Point {
	switch {
	case pos.X > old.X:
		pos.X = core.Max(old.X, other.X-box.W-box.X)
	case pos.X < old.X:
		pos.X = core.Min(old.X, other.Right()-box.X)
	}
	switch {
	case pos.Y > old.Y:
		pos.Y = core.Max(old.Y, other.Y-box.H-box.Y)
	case pos.Y < old.Y:
		pos.Y = core.Min(old.Y, other.Bottom()-box.Y)
	}
	return pos
}
