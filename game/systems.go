package game

// InputSystem drains the world's pending actions and applies them to the
// session in arrival order.
type InputSystem struct{}

func (InputSystem) Execute(frame *Frame) {
	sess := frame.World.Session
	for _, a := range frame.World.drainInput() {
		sess.Apply(a)
	}
}

// GravitySystem advances the fall and lock timers for the active piece.
type GravitySystem struct{}

func (GravitySystem) Execute(frame *Frame) {
	frame.World.Session.AdvanceGravity(frame.DeltaTime)
}

// LockSystem commits the active piece into the board once it has been
// grounded for the full lock delay.
type LockSystem struct{}

func (LockSystem) Execute(frame *Frame) {
	if sess := frame.World.Session; sess.LockReady() {
		sess.LockActive()
	}
}

// LineClearSystem removes and scores any full rows.
type LineClearSystem struct{}

func (LineClearSystem) Execute(frame *Frame) {
	frame.World.Session.ClearCompletedRows()
}

// SpawnSystem deals the next piece after the spawn delay. A spawn into
// occupied cells ends the game.
type SpawnSystem struct{}

func (SpawnSystem) Execute(frame *Frame) {
	frame.World.Session.AdvanceSpawn(frame.DeltaTime)
}

// DefaultSystems returns the standard simulation pipeline in execution
// order. Front-ends register these and append their own render or overlay
// systems behind them.
func DefaultSystems() []System {
	return []System{
		InputSystem{},
		GravitySystem{},
		LockSystem{},
		LineClearSystem{},
		SpawnSystem{},
	}
}
