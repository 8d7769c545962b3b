package engine

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/critterbits/internal/collision"
	"github.com/vovakirdan/critterbits/internal/core"
	"github.com/vovakirdan/critterbits/internal/viewport"
)

type recorder struct {
	starts  int
	dts     []float64
	hits    []core.EntityID
	hitErr  error
	update  func(eng *Engine, self *Entity, dt float64) error
	collide func(eng *Engine, self, other *Entity) error
}

func (r *recorder) Start(eng *Engine, self *Entity) error {
	r.starts++
	return nil
}

func (r *recorder) Update(eng *Engine, self *Entity, dt float64) error {
	r.dts = append(r.dts, dt)
	if r.update != nil {
		return r.update(eng, self, dt)
	}
	return nil
}

func (r *recorder) OnCollision(eng *Engine, self, other *Entity) error {
	r.hits = append(r.hits, other.ID)
	if r.collide != nil {
		return r.collide(eng, self, other)
	}
	return r.hitErr
}

func newBody(name string, dim core.Rect, kind collision.Kind) *Entity {
	ent := NewEntity(name, dim, CapSprite|CapCollider)
	ent.Kind = kind
	ent.Box = core.NewRect(0, 0, dim.W, dim.H)
	return ent
}

func TestAddAssignsIncreasingIDs(t *testing.T) {
	eng := New(Options{})
	var ids []core.EntityID
	for i := 0; i < 3; i++ {
		ids = append(ids, eng.Add(NewEntity("e", core.NewRect(0, 0, 1, 1), CapSprite)))
	}
	for i, id := range ids {
		expected := core.EntityID(i + 1)
		if id != expected {
			t.Errorf("Add() #%d = %d, expected %d", i, id, expected)
		}
		if _, ok := eng.FindEntityByID(id); !ok {
			t.Errorf("FindEntityByID(%d) not found", id)
		}
	}
	if _, ok := eng.FindEntityByID(core.InvalidEntityID); ok {
		t.Error("FindEntityByID(0) should never match")
	}

	eng.Clear()
	if id := eng.Add(NewEntity("e", core.NewRect(0, 0, 1, 1), CapSprite)); id != 4 {
		t.Errorf("id after Clear() = %d, expected 4", id)
	}
}

func TestFrameStartsThenUpdates(t *testing.T) {
	eng := New(Options{})
	rec := &recorder{}
	ent := NewEntity("slow", core.NewRect(0, 0, 1, 1), CapSprite)
	ent.TimeScale = 0.5
	ent.Script = rec
	eng.Add(ent)

	if ent.State != StateNew {
		t.Fatalf("State = %v, expected new", ent.State)
	}
	eng.Frame(0.1)
	eng.Frame(0.1)

	if ent.State != StateActive {
		t.Errorf("State = %v, expected active", ent.State)
	}
	if rec.starts != 1 {
		t.Errorf("starts = %d, expected 1", rec.starts)
	}
	if len(rec.dts) != 2 || math.Abs(rec.dts[0]-0.05) > 1e-9 {
		t.Errorf("update dts = %v, expected two of 0.05", rec.dts)
	}
}

func TestAddDuringUpdateIsDeferred(t *testing.T) {
	eng := New(Options{})
	var child *Entity
	var childID core.EntityID
	spawner := &recorder{}
	spawner.update = func(eng *Engine, self *Entity, dt float64) error {
		if child == nil {
			child = NewEntity("child", core.NewRect(0, 0, 1, 1), CapSprite)
			childID = eng.Add(child)
			if eng.Len() != 1 {
				t.Errorf("Len() during update = %d, expected 1", eng.Len())
			}
		}
		return nil
	}
	parent := NewEntity("parent", core.NewRect(0, 0, 1, 1), CapSprite)
	parent.Script = spawner
	eng.Add(parent)

	eng.Frame(0.016)
	if childID != 2 {
		t.Errorf("child id = %d, expected 2", childID)
	}
	if eng.Len() != 1 || eng.Queue.PendingPreUpdate() != 1 {
		t.Fatalf("after frame 1: Len() = %d, pending = %d, expected 1 and 1",
			eng.Len(), eng.Queue.PendingPreUpdate())
	}

	eng.Frame(0.016)
	if eng.Len() != 2 || child.State != StateNew {
		t.Fatalf("after frame 2: Len() = %d, child state %v", eng.Len(), child.State)
	}

	eng.Frame(0.016)
	if child.State != StateActive {
		t.Errorf("after frame 3: child state %v, expected active", child.State)
	}
}

func TestMoveToStopsAtWallAndNotifiesScripts(t *testing.T) {
	eng := New(Options{})
	playerRec, wallRec := &recorder{}, &recorder{}

	player := newBody("player", core.NewRect(0, 0, 10, 10), collision.KindCollide)
	player.Script = playerRec
	playerRec.update = func(eng *Engine, self *Entity, dt float64) error {
		eng.MoveTo(self, 15, 0)
		return nil
	}
	wall := newBody("wall", core.NewRect(20, 0, 10, 10), collision.KindCollide)
	wall.Script = wallRec

	eng.Add(player)
	eng.Add(wall)
	eng.Frame(0.016)

	if player.Dim.XY() != core.Pt(10, 0) {
		t.Errorf("player at %v, expected (10,0)", player.Dim.XY())
	}
	if bx, by := player.Blocked(); !bx || by {
		t.Errorf("Blocked() = %v, %v, expected true, false", bx, by)
	}
	if len(playerRec.hits) != 1 || playerRec.hits[0] != wall.ID {
		t.Errorf("player hits = %v, expected [%d]", playerRec.hits, wall.ID)
	}
	if len(wallRec.hits) != 1 || wallRec.hits[0] != player.ID {
		t.Errorf("wall hits = %v, expected [%d]", wallRec.hits, player.ID)
	}
	if eng.Counters().Collisions != 2 {
		t.Errorf("Collisions = %d, expected 2", eng.Counters().Collisions)
	}
}

func TestCollisionErrorDisablesCallback(t *testing.T) {
	eng := New(Options{})
	rec := &recorder{hitErr: errors.New("boom")}
	rec.update = func(eng *Engine, self *Entity, dt float64) error {
		eng.MoveTo(self, 5, 0)
		return nil
	}
	player := newBody("player", core.NewRect(0, 0, 10, 10), collision.KindCollide)
	player.Script = rec
	eng.Add(player)
	eng.Add(newBody("wall", core.NewRect(10, 0, 10, 10), collision.KindCollide))

	for i := 0; i < 3; i++ {
		eng.Frame(0.016)
	}
	if len(rec.hits) != 1 {
		t.Errorf("OnCollision calls = %d, expected 1", len(rec.hits))
	}
	if eng.Counters().Collisions != 6 {
		t.Errorf("Collisions = %d, expected 6", eng.Counters().Collisions)
	}
}

func TestDestroyedEntitiesAreSwept(t *testing.T) {
	eng := New(Options{})
	player := newBody("player", core.NewRect(0, 0, 10, 10), collision.KindCollide)
	player.Script = &recorder{update: func(eng *Engine, self *Entity, dt float64) error {
		eng.MoveTo(self, self.Dim.X+5, 0)
		return nil
	}}
	coin := newBody("coin", core.NewRect(12, 0, 4, 4), collision.KindTrigger)
	coin.Tag = "coin"
	coin.Script = &recorder{collide: func(eng *Engine, self, other *Entity) error {
		self.MarkDestroy()
		return nil
	}}
	eng.Add(player)
	coinID := eng.Add(coin)

	eng.Frame(0.016)

	if _, ok := eng.FindEntityByID(coinID); ok {
		t.Error("coin should be gone after the frame")
	}
	if coin.State != StateUnloaded {
		t.Errorf("coin state = %v, expected unloaded", coin.State)
	}
	if len(eng.FindEntitiesByTag("coin")) != 0 {
		t.Error("FindEntitiesByTag(coin) should be empty")
	}
	if player.IsCollidingWith(coinID) {
		t.Error("player still records the destroyed coin")
	}
	if player.Dim.X != 5 {
		t.Errorf("trigger should not block, player.X = %d", player.Dim.X)
	}
}

func TestIterateActiveColliders(t *testing.T) {
	eng := New(Options{})
	a := newBody("a", core.NewRect(0, 0, 1, 1), collision.KindCollide)
	b := newBody("b", core.NewRect(0, 0, 1, 1), collision.KindCollide)
	c := newBody("c", core.NewRect(0, 0, 1, 1), collision.KindCollide)
	deco := NewEntity("deco", core.NewRect(0, 0, 1, 1), CapSprite)
	eng.Add(a)
	eng.Add(deco)
	eng.Add(b)
	eng.Add(c)
	eng.Frame(0.016)
	b.State = StateInactive

	var seen []string
	eng.IterateActiveColliders(func(col *collision.Collider) bool {
		ent, _ := eng.FindEntityByID(col.ID)
		seen = append(seen, ent.Name)
		return false
	})
	if len(seen) != 2 || seen[0] != "a" || seen[1] != "c" {
		t.Errorf("visited %v, expected [a c]", seen)
	}

	n := 0
	eng.IterateActiveColliders(func(col *collision.Collider) bool {
		n++
		return true
	})
	if n != 1 {
		t.Errorf("early exit visited %d, expected 1", n)
	}

	if eng.IsActive(b.ID) {
		t.Error("IsActive(b) should be false while inactive")
	}
	if _, ok := eng.Collider(deco.ID); ok {
		t.Error("Collider() for an entity without a collider should fail")
	}
}

func TestRenderCullsAndOrdersByZ(t *testing.T) {
	eng := New(Options{ViewW: 100, ViewH: 100})

	add := func(name string, dim core.Rect, z viewport.ZIndex) {
		ent := NewEntity(name, dim, CapSprite)
		ent.Z = z
		eng.Add(ent)
	}
	add("hero", core.NewRect(10, 10, 5, 5), viewport.ZForeground)
	add("far", core.NewRect(500, 500, 5, 5), viewport.ZMidground)
	add("ground", core.NewRect(0, 0, 100, 100), viewport.ZBackground)
	add("hud", core.NewRect(0, 90, 100, 10), viewport.ZGui)
	eng.Add(NewEntity("logic", core.NewRect(0, 0, 5, 5), 0))
	eng.Frame(0.016)

	eng.Viewport.Dim.X = 5
	var names []string
	var hud viewport.ViewClip
	eng.Render(func(ent *Entity, clip viewport.ViewClip) {
		names = append(names, ent.Name)
		if ent.Name == "hud" {
			hud = clip
		}
	})

	expected := []string{"ground", "hero", "hud"}
	if len(names) != len(expected) {
		t.Fatalf("rendered %v, expected %v", names, expected)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("rendered[%d] = %s, expected %s", i, names[i], expected[i])
		}
	}
	if hud.Dest != core.NewRect(0, 90, 100, 10) {
		t.Errorf("hud dest = %v, expected screen-fixed [0,90,100,10]", hud.Dest)
	}
	if eng.Counters().Rendered != 3 {
		t.Errorf("Rendered = %d, expected 3", eng.Counters().Rendered)
	}
}

func TestViewportFollowsEntity(t *testing.T) {
	eng := New(Options{ViewW: 100, ViewH: 100})
	ent := NewEntity("hero", core.NewRect(500, 500, 10, 10), CapSprite)
	id := eng.Add(ent)
	eng.Viewport.SetEntityToFollow(id)

	eng.Frame(0.016)
	if eng.Viewport.Dim.XY() != core.Pt(455, 455) {
		t.Errorf("viewport at %v, expected (455,455)", eng.Viewport.Dim.XY())
	}

	ent.MarkDestroy()
	eng.Frame(0.016)
	eng.Frame(0.016)
	if eng.Viewport.Following() != core.InvalidEntityID {
		t.Error("viewport should stop following a destroyed entity")
	}
}

func TestMoveByAccumulates(t *testing.T) {
	eng := New(Options{})
	ent := NewEntity("drift", core.NewRect(0, 0, 1, 1), CapSprite)
	eng.Add(ent)
	eng.Frame(0.016)

	for i := 0; i < 2; i++ {
		eng.MoveBy(ent, 0.4, 0)
	}
	if ent.Dim.X != 0 {
		t.Errorf("X after 0.8 = %d, expected 0", ent.Dim.X)
	}
	eng.MoveBy(ent, 0.4, -1.5)
	if ent.Dim.XY() != core.Pt(1, -1) {
		t.Errorf("position = %v, expected (1,-1)", ent.Dim.XY())
	}
}

func TestRunAndCounters(t *testing.T) {
	eng := New(Options{})
	if err := eng.Run(10, 0.1); !errors.Is(err, ErrNoScene) {
		t.Errorf("Run() on empty engine = %v, expected ErrNoScene", err)
	}

	eng.Add(NewEntity("e", core.NewRect(0, 0, 1, 1), CapSprite))
	if err := eng.Run(10, 0.1); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	c := eng.Counters()
	if c.Frames != 10 || c.Entities != 1 {
		t.Errorf("Counters() = %+v, expected 10 frames and 1 entity", c)
	}
	if math.Abs(c.AvgFPS()-10) > 1e-9 {
		t.Errorf("AvgFPS() = %v, expected 10", c.AvgFPS())
	}
}
