package game

// Action is a symbolic player input, already resolved from whatever key or
// button the front-end received. Unmapped keys never reach the session.
type Action uint8

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionRotateCW
	ActionRotateCCW
	ActionSoftDrop
	ActionHardDrop
	ActionStart
	ActionExit
)

var actionNames = [...]string{
	ActionMoveLeft:  "move-left",
	ActionMoveRight: "move-right",
	ActionRotateCW:  "rotate-cw",
	ActionRotateCCW: "rotate-ccw",
	ActionSoftDrop:  "soft-drop",
	ActionHardDrop:  "hard-drop",
	ActionStart:     "start",
	ActionExit:      "exit",
}

func (a Action) String() string {
	if int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}
