package engine

import (
	"fmt"

	"github.com/vovakirdan/critterbits/internal/collision"
	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/viewport"
)

// State is the lifecycle state of an entity.
type State int

const (
	StateNew State = iota
	StateActive
	StateInactive
	StateUnloaded
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "new"
	case StateActive:
		return "active"
	case StateInactive:
		return "inactive"
	case StateUnloaded:
		return "unloaded"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Capability is a bit set of what an entity takes part in. It is fixed when
// the entity is created.
type Capability uint8

const (
	CapSprite Capability = 1 << iota
	CapTilemapRegion
	CapCollider
)

// Script is the behaviour attached to an entity.
//
// Start runs on the first frame the entity is active, Update on every frame
// after that with the entity's scaled delta time. OnCollision runs when the
// collision lane drains; returning an error disables further collision
// callbacks for this entity.
type Script interface {
	Start(eng *Engine, self *Entity) error
	Update(eng *Engine, self *Entity, dt float64) error
	OnCollision(eng *Engine, self, other *Entity) error
}

// Entity is anything placed in the world.
type Entity struct {
	collision.Collider

	Name string
	Tag  string

	// TimeScale multiplies the frame delta handed to the script.
	TimeScale float64

	State State
	Z     viewport.ZIndex

	Glyph rune
	Color core.Color

	Script Script

	caps            Capability
	destroyed       bool
	collisionsMuted bool
	remX, remY      float64
	moveBlockedX    bool
	moveBlockedY    bool
}

// NewEntity creates a detached entity. It gets its id when added to an engine.
func NewEntity(name string, dim core.Rect, caps Capability) *Entity {
	return &Entity{
		Collider:  *collision.NewCollider(core.InvalidEntityID, dim, collision.KindNone),
		Name:      name,
		TimeScale: 1,
		State:     StateNew,
		Z:         viewport.ZMidground,
		Glyph:     '#',
		Color:     core.ColorDefault,
		caps:      caps,
	}
}

// Has reports whether the entity was created with capability c.
func (e *Entity) Has(c Capability) bool {
	return e.caps&c == c
}

// IsActive reports whether the entity takes part in the frame.
func (e *Entity) IsActive() bool {
	return e.State == StateActive && !e.destroyed
}

// MarkDestroy flags the entity for removal at the end of the frame.
func (e *Entity) MarkDestroy() {
	e.destroyed = true
}

// Destroyed reports whether MarkDestroy has been called.
func (e *Entity) Destroyed() bool {
	return e.destroyed
}

// Blocked reports which axes were cut short by the last move.
func (e *Entity) Blocked() (x, y bool) {
	return e.moveBlockedX, e.moveBlockedY
}

func (e *Entity) String() string {
	if e.Name != "" {
		return fmt.Sprintf("%s#%d", e.Name, e.ID)
	}
	return fmt.Sprintf("entity#%d", e.ID)
}
