package game

// World bundles the session with the queue of not-yet-processed input.
// Front-ends enqueue actions as their event sources deliver them; the
// input system drains the queue in arrival order at the start of each
// step, so ticks and inputs never interleave mid-mutation.
type World struct {
	Session *Session

	pending []Action
}

// NewWorld creates a world with a fresh session.
func NewWorld(cfg Config) *World {
	return &World{Session: NewSession(cfg)}
}

// Enqueue appends an input action for the next step.
func (w *World) Enqueue(a Action) {
	w.pending = append(w.pending, a)
}

// PendingInput returns the number of queued, unprocessed actions.
func (w *World) PendingInput() int {
	return len(w.pending)
}

func (w *World) drainInput() []Action {
	drained := w.pending
	w.pending = w.pending[:0]
	return drained
}
