// Package events defines the world-level events the playground systems
// publish. The motion kernel knows nothing about these; the motion system
// edge-detects Moving() transitions and publishes here.
package events

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Movement describes a familiar starting or stopping.
type Movement struct {
	Entry *donburi.Entry
	Speed float64
}

var (
	MovementStarted = events.NewEventType[Movement]()
	MovementStopped = events.NewEventType[Movement]()
)
