// Package engine owns the entity arena and runs the frame loop.
//
// An Engine is an explicit context object: there is no global state, and
// everything a script may need (the deferred queue, input, the viewport,
// entity lookup) is reached through the *Engine handed to it.
package engine

import (
	"errors"
	"io"
	"math"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/critterbits/internal/collision"
	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/events"
	"github.com/vovakirdan/critterbits/internal/viewport"
)

// ErrNoScene is returned by Run when nothing has been loaded.
var ErrNoScene = errors.New("engine: no scene loaded")

// Viewport size used when Options leaves it unset.
const (
	DefaultViewW = 1024
	DefaultViewH = 768
)

// Options configures a new Engine.
type Options struct {
	ViewW, ViewH     int
	MaxResolvePasses int
	Logger           *log.Logger
}

// Engine holds every entity and drives them one frame at a time.
// It is not safe for concurrent use.
type Engine struct {
	Queue    *events.Queue
	Viewport *viewport.Viewport
	Input    core.InputFrame

	logger   *log.Logger
	resolver *collision.Resolver
	tracker  *collision.Tracker

	entities []*Entity
	byID     map[core.EntityID]*Entity
	nextID   core.EntityID

	iterating bool
	counters  Counters
}

// New creates an empty engine.
func New(opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.ViewW <= 0 {
		opts.ViewW = DefaultViewW
	}
	if opts.ViewH <= 0 {
		opts.ViewH = DefaultViewH
	}

	e := &Engine{
		Queue:    events.NewQueue(),
		Viewport: viewport.New(opts.ViewW, opts.ViewH),
		Input:    core.NewInputFrame(),
		logger:   logger,
		byID:     make(map[core.EntityID]*Entity),
		nextID:   core.FirstEntityID,
	}
	e.tracker = collision.NewTracker(e, e.Queue, e)
	e.resolver = collision.NewResolver(e, e.tracker,
		collision.WithMaxPasses(opts.MaxResolvePasses),
		collision.WithLogger(logger),
	)
	return e
}

// Logger returns the engine logger.
func (e *Engine) Logger() *log.Logger {
	return e.logger
}

// Add assigns ent the next id and places it in the world in StateNew.
// While the engine is iterating entities the insertion itself is deferred to
// the pre-update lane; the id is valid immediately either way.
func (e *Engine) Add(ent *Entity) core.EntityID {
	ent.ID = e.nextID
	e.nextID++
	ent.State = StateNew

	if e.iterating {
		e.Queue.QueuePreUpdate(func() { e.insert(ent) })
	} else {
		e.insert(ent)
	}
	return ent.ID
}

func (e *Engine) insert(ent *Entity) {
	e.entities = append(e.entities, ent)
	e.byID[ent.ID] = ent
}

// Clear unloads every entity and drops pending actions. Ids are not reused.
func (e *Engine) Clear() {
	for _, ent := range e.entities {
		ent.State = StateUnloaded
	}
	e.entities = nil
	e.byID = make(map[core.EntityID]*Entity)
	e.Queue.Reset()
	e.Viewport.SetEntityToFollow(core.InvalidEntityID)
}

// Len returns the number of entities in the world.
func (e *Engine) Len() int {
	return len(e.entities)
}

// Entities returns the entities in insertion order.
func (e *Engine) Entities() []*Entity {
	return append([]*Entity(nil), e.entities...)
}

// FindEntityByID returns the entity with id if it still exists.
func (e *Engine) FindEntityByID(id core.EntityID) (*Entity, bool) {
	ent, ok := e.byID[id]
	return ent, ok
}

// FindEntitiesByTag returns every entity carrying tag, in insertion order.
func (e *Engine) FindEntitiesByTag(tag string) []*Entity {
	var out []*Entity
	for _, ent := range e.entities {
		if ent.Tag == tag {
			out = append(out, ent)
		}
	}
	return out
}

// FindEntityByName returns the first entity named name.
func (e *Engine) FindEntityByName(name string) (*Entity, bool) {
	for _, ent := range e.entities {
		if ent.Name == name {
			return ent, true
		}
	}
	return nil, false
}

// MoveTo moves ent toward (x, y), correcting the destination for blocking
// colliders and reporting overlaps. Returns the position actually taken.
func (e *Engine) MoveTo(ent *Entity, x, y int) core.Point {
	target := core.Pt(x, y)
	pos := target
	if ent.Has(CapCollider) && ent.IsActive() {
		switch ent.Kind {
		case collision.KindCollide:
			pos = e.resolver.Resolve(&ent.Collider, ent.Dim.X, ent.Dim.Y, x, y)
		case collision.KindTrigger:
			e.resolver.Detect(&ent.Collider, x, y)
		}
	}
	ent.moveBlockedX = pos.X != target.X
	ent.moveBlockedY = pos.Y != target.Y
	ent.Dim = ent.Dim.At(pos)
	return pos
}

// MoveBy moves ent by a fractional offset. Sub-cell remainders carry over to
// later calls and are dropped on an axis that gets blocked.
func (e *Engine) MoveBy(ent *Entity, dx, dy float64) core.Point {
	ent.remX += dx
	ent.remY += dy
	ix := math.Trunc(ent.remX)
	iy := math.Trunc(ent.remY)
	if ix == 0 && iy == 0 {
		ent.moveBlockedX, ent.moveBlockedY = false, false
		return ent.Dim.XY()
	}
	ent.remX -= ix
	ent.remY -= iy

	pos := e.MoveTo(ent, ent.Dim.X+int(ix), ent.Dim.Y+int(iy))
	if ent.moveBlockedX {
		ent.remX = 0
	}
	if ent.moveBlockedY {
		ent.remY = 0
	}
	return pos
}

// Frame advances the world by dt seconds.
//
// Order: start new entities, drain the pre-update lane, update active
// entities, drain the collision lane, remove destroyed entities, move the
// viewport, update counters.
func (e *Engine) Frame(dt float64) {
	e.iterating = true
	for _, ent := range e.entities {
		if ent.State != StateNew {
			continue
		}
		ent.State = StateActive
		if ent.Script != nil {
			if err := ent.Script.Start(e, ent); err != nil {
				e.logger.Warn("script start failed", "entity", ent, "err", err)
			}
		}
	}
	e.iterating = false

	e.Queue.ExecutePreUpdate()

	e.iterating = true
	for _, ent := range e.entities {
		if !ent.IsActive() || ent.Script == nil {
			continue
		}
		if err := ent.Script.Update(e, ent, dt*ent.TimeScale); err != nil {
			e.logger.Warn("script update failed", "entity", ent, "err", err)
		}
	}
	e.iterating = false

	e.Queue.ExecuteCollision()
	e.sweep()
	e.Viewport.Update(e)

	e.counters.Frames++
	e.counters.Elapsed += dt
	e.counters.Entities = len(e.entities)
}

// Run plays frames fixed steps of dt seconds.
func (e *Engine) Run(frames int, dt float64) error {
	if len(e.entities) == 0 {
		return ErrNoScene
	}
	for i := 0; i < frames; i++ {
		e.Frame(dt)
	}
	return nil
}

// sweep removes entities marked for destruction.
func (e *Engine) sweep() {
	kept := e.entities[:0]
	var gone []core.EntityID
	for _, ent := range e.entities {
		if !ent.destroyed {
			kept = append(kept, ent)
			continue
		}
		ent.State = StateUnloaded
		delete(e.byID, ent.ID)
		gone = append(gone, ent.ID)
		e.logger.Debug("entity destroyed", "entity", ent)
	}
	for i := len(kept); i < len(e.entities); i++ {
		e.entities[i] = nil
	}
	e.entities = kept

	for _, id := range gone {
		for _, ent := range e.entities {
			ent.RemoveCollisionWith(id)
		}
	}
}

// Render calls fn for every visible sprite or tilemap region, back to front
// by z-index and in insertion order within a layer.
func (e *Engine) Render(fn func(ent *Entity, clip viewport.ViewClip)) {
	var visible []*Entity
	for _, ent := range e.entities {
		if !ent.IsActive() || !(ent.Has(CapSprite) || ent.Has(CapTilemapRegion)) {
			continue
		}
		// gui entities live in screen space and are culled by clipping alone
		if ent.Z != viewport.ZGui && !e.Viewport.CanSee(ent.Dim) {
			continue
		}
		visible = append(visible, ent)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Z < visible[j].Z
	})

	rendered := 0
	for _, ent := range visible {
		var clip viewport.ViewClip
		if ent.Z == viewport.ZGui {
			clip = e.Viewport.StaticViewableRect(ent.Dim, ent.Z)
		} else {
			clip = e.Viewport.ViewableRect(ent.Dim, ent.Z)
		}
		if !clip.Visible() {
			continue
		}
		fn(ent, clip)
		rendered++
	}
	e.counters.Rendered = rendered
}

// IterateActiveColliders calls fn for each active entity with a collider in
// insertion order, stopping when fn returns true.
func (e *Engine) IterateActiveColliders(fn func(c *collision.Collider) bool) {
	for _, ent := range e.entities {
		if !ent.IsActive() || !ent.Has(CapCollider) {
			continue
		}
		if fn(&ent.Collider) {
			return
		}
	}
}

// Collider returns the collider of id while the entity exists.
func (e *Engine) Collider(id core.EntityID) (*collision.Collider, bool) {
	ent, ok := e.byID[id]
	if !ok || !ent.Has(CapCollider) {
		return nil, false
	}
	return &ent.Collider, true
}

// IsActive reports whether id exists and is active.
func (e *Engine) IsActive(id core.EntityID) bool {
	ent, ok := e.byID[id]
	return ok && ent.IsActive()
}

// EntityDim returns the bounds of id.
func (e *Engine) EntityDim(id core.EntityID) (core.Rect, bool) {
	ent, ok := e.byID[id]
	if !ok {
		return core.Rect{}, false
	}
	return ent.Dim, true
}

// OnCollision forwards a drained collision to the script of self.
func (e *Engine) OnCollision(self, other *collision.Collider) {
	e.counters.Collisions++

	s, ok := e.byID[self.ID]
	if !ok || s.Script == nil || s.collisionsMuted {
		return
	}
	o, ok := e.byID[other.ID]
	if !ok {
		return
	}
	if err := s.Script.OnCollision(e, s, o); err != nil {
		s.collisionsMuted = true
		e.logger.Error("collision callback failed, disabling it", "entity", s, "other", o, "err", err)
	}
}
