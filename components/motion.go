package components

import (
	"github.com/automoto/familiar/motion"
	"github.com/yohamta/donburi"
)

type MotionData struct {
	Body *motion.Body

	// Previous tick's Moving() result, kept here so the motion system can
	// edge-trigger start/stop events. The kernel itself stays stateless
	// about history.
	WasMoving bool
}

var Motion = donburi.NewComponentType[MotionData]()
