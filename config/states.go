package config

// StateID identifies a familiar state for animation and logic.
type StateID int

const (
	StateNone StateID = -1
)

const (
	Idle StateID = iota
	Running
)

// StateToName maps states to the sprite-sheet keys used by the assets package.
var StateToName = map[StateID]string{
	Idle:    "idle",
	Running: "running",
}
