package collision

import (
	"github.com/vovakirdan/critterbits/internal/core"
)

// Tracker dedups collision notifications and defers the callbacks.
type Tracker struct {
	registry Registry
	queue    Deferrer
	handler  Handler
}

// NewTracker creates a tracker. handler may be nil, in which case only the
// bookkeeping runs.
func NewTracker(registry Registry, queue Deferrer, handler Handler) *Tracker {
	return &Tracker{registry: registry, queue: queue, handler: handler}
}

// Notify records that self collides with other and queues the callback for
// self. It does nothing when other is not active or the pair is already
// recorded. The symmetric notification is a separate call.
func (t *Tracker) Notify(self, other *Collider) {
	if self == nil || other == nil {
		return
	}
	if !t.registry.IsActive(other.ID) || self.IsCollidingWith(other.ID) {
		return
	}
	self.recordCollision(other.ID)

	// capture ids only; the entities may be gone by the time this runs
	selfID, otherID := self.ID, other.ID
	t.queue.QueueCollision(func() {
		t.dispatch(selfID, otherID)
	})
}

func (t *Tracker) dispatch(selfID, otherID core.EntityID) {
	self, ok := t.registry.Collider(selfID)
	if !ok {
		return
	}
	other, ok := t.registry.Collider(otherID)
	if !ok {
		return
	}

	if t.handler != nil {
		t.handler.OnCollision(self, other)
	}

	// Blocking contacts re-notify on the next renewed overlap. Trigger
	// contacts stay recorded until the boxes separate.
	if self.Kind == KindCollide && other.Kind != KindTrigger {
		self.RemoveCollisionWith(other.ID)
	}
}

// Forget clears the records between a and b in both directions. Called when
// their boxes no longer overlap.
func (t *Tracker) Forget(a, b *Collider) {
	a.RemoveCollisionWith(b.ID)
	b.RemoveCollisionWith(a.ID)
}
