package game

// System is one phase of the per-step simulation. Systems run in
// registration order and must finish before the next one starts; there is
// no concurrency within a step.
type System interface {
	Execute(frame *Frame)
}
