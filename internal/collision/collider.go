// Package collision implements box collision resolution and the enter/stay
// bookkeeping that turns overlaps into deferred collision callbacks.
package collision

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/events"
)

// Kind is how a collider takes part in collisions.
type Kind int

const (
	// KindNone colliders are ignored entirely.
	KindNone Kind = iota
	// KindCollide colliders block movement and are notified on every renewed contact.
	KindCollide
	// KindTrigger colliders never block; they are notified once per entry.
	KindTrigger
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCollide:
		return "collide"
	case KindTrigger:
		return "trigger"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind parses the scene-file spelling of a Kind. An empty string is KindNone.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return KindNone, nil
	case "collide":
		return KindCollide, nil
	case "trigger":
		return KindTrigger, nil
	default:
		return KindNone, fmt.Errorf("collision: unknown kind %q", s)
	}
}

// Collider is the collision-facing part of an entity.
type Collider struct {
	ID core.EntityID

	// Dim is the entity's placement in world space.
	Dim core.Rect

	// Box is the collision box; X/Y are offsets from Dim's origin.
	Box core.Rect

	Kind Kind

	// ids of colliders currently recorded as colliding with this one
	colliding []core.EntityID
}

// NewCollider creates a collider whose collision box covers all of dim.
func NewCollider(id core.EntityID, dim core.Rect, kind Kind) *Collider {
	return &Collider{
		ID:   id,
		Dim:  dim,
		Box:  core.NewRect(0, 0, dim.W, dim.H),
		Kind: kind,
	}
}

// CollisionRect returns the collision box in world space.
func (c *Collider) CollisionRect() core.Rect {
	return c.rectAt(c.Dim.XY())
}

// rectAt returns the collision box the collider would have at position p.
func (c *Collider) rectAt(p core.Point) core.Rect {
	return core.NewRect(p.X+c.Box.X, p.Y+c.Box.Y, c.Box.W, c.Box.H)
}

// IsCollidingWith reports whether id is recorded as colliding with c.
func (c *Collider) IsCollidingWith(id core.EntityID) bool {
	for _, eid := range c.colliding {
		if eid == id {
			return true
		}
	}
	return false
}

// CollidingWith returns a copy of the recorded ids, oldest first.
func (c *Collider) CollidingWith() []core.EntityID {
	return append([]core.EntityID(nil), c.colliding...)
}

func (c *Collider) recordCollision(id core.EntityID) {
	c.colliding = append(c.colliding, id)
}

// RemoveCollisionWith clears the record for id, if any.
func (c *Collider) RemoveCollisionWith(id core.EntityID) {
	for i, eid := range c.colliding {
		if eid == id {
			c.colliding = append(c.colliding[:i], c.colliding[i+1:]...)
			return
		}
	}
}

// Registry is the entity store the collision code reads from.
//
// IterateActiveColliders calls fn for every active collider in
// registry-defined order and stops early when fn returns true. Callers must
// not add or remove entities from inside fn.
type Registry interface {
	IterateActiveColliders(fn func(c *Collider) bool)

	// Collider returns the collider for id while the entity still exists,
	// active or not.
	Collider(id core.EntityID) (*Collider, bool)

	// IsActive reports whether id exists and is active.
	IsActive(id core.EntityID) bool
}

// Handler receives collision callbacks when the collision lane is drained.
type Handler interface {
	OnCollision(self, other *Collider)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(self, other *Collider)

// OnCollision calls f(self, other).
func (f HandlerFunc) OnCollision(self, other *Collider) {
	f(self, other)
}

// Deferrer accepts actions for the collision lane of the frame queue.
type Deferrer interface {
	QueueCollision(a events.Action)
}
