// Package events provides the frame-scoped deferred action queue.
//
// Anything that may add, remove or reconfigure entities while the engine is
// iterating its active set is wrapped in an Action and queued here. The
// engine drains the queues at two fixed points of every frame, after the
// iteration that produced the actions has finished.
package events

// Action is a unit of deferred work. It captures whatever state it needs.
type Action func()

// Queue holds the pre-update and collision lanes.
//
// Each Execute call takes the current contents of its lane, empties the lane
// and then runs the taken actions in FIFO order. Actions queued while a lane
// is draining, on either lane, are therefore never run by the drain in
// progress: they wait for the next Execute of their own lane.
//
// A Queue is not safe for concurrent use; the engine runs single-threaded.
type Queue struct {
	preUpdate []Action
	collision []Action
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// QueuePreUpdate defers an action to the start of the next frame.
func (q *Queue) QueuePreUpdate(a Action) {
	if a == nil {
		return
	}
	q.preUpdate = append(q.preUpdate, a)
}

// QueueCollision defers an action until the collision pass of the frame has finished.
func (q *Queue) QueueCollision(a Action) {
	if a == nil {
		return
	}
	q.collision = append(q.collision, a)
}

// ExecutePreUpdate runs and clears the pre-update lane.
// Returns the number of actions run.
func (q *Queue) ExecutePreUpdate() int {
	return drain(&q.preUpdate)
}

// ExecuteCollision runs and clears the collision lane.
// Returns the number of actions run.
func (q *Queue) ExecuteCollision() int {
	return drain(&q.collision)
}

// PendingPreUpdate returns the number of queued pre-update actions.
func (q *Queue) PendingPreUpdate() int {
	return len(q.preUpdate)
}

// PendingCollision returns the number of queued collision actions.
func (q *Queue) PendingCollision() int {
	return len(q.collision)
}

// Reset drops every queued action without running it. Used when a scene
// is unloaded, so no action outlives the entities it refers to.
func (q *Queue) Reset() {
	q.preUpdate = nil
	q.collision = nil
}

func drain(lane *[]Action) int {
	actions := *lane
	if len(actions) == 0 {
		return 0
	}
	*lane = nil
	for _, a := range actions {
		a()
	}
	return len(actions)
}
