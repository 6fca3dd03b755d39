package components

import (
	"github.com/automoto/familiar/level"
	"github.com/yohamta/donburi"
)

// PlaygroundData carries the loaded layout plus the session flags the
// playground systems share.
type PlaygroundData struct {
	Layout *level.Layout

	// FollowPointer switches the lead familiar between the live pointer
	// and the dropped anchor.
	FollowPointer bool
	ShowDebug     bool
}

var Playground = donburi.NewComponentType[PlaygroundData]()
