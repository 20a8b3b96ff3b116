package game

// Frame is the context passed to every system during one step: the elapsed
// time since the previous step, the world being stepped, and a buffer of
// deferred work that runs after all systems have executed.
type Frame struct {
	DeltaTime float64
	World     *World

	defers []func()
}

func newFrame(dt float64, world *World) *Frame {
	return &Frame{DeltaTime: dt, World: world}
}

// Defer queues a function to run after every system has executed this
// step. Overlay rendering and other work that must not interleave with
// simulation goes through here.
func (f *Frame) Defer(fn func()) {
	f.defers = append(f.defers, fn)
}

func (f *Frame) flush() {
	for _, fn := range f.defers {
		fn()
	}
	f.defers = f.defers[:0]
}
