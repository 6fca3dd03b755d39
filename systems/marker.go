package systems

import (
	"github.com/automoto/familiar/components"
	"github.com/automoto/familiar/events"
	"github.com/automoto/familiar/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMarkers advances the anchor marker's pulse tween.
func UpdateMarkers(e *ecs.ECS) {
	dt := float32(tickSeconds())

	components.Marker.Each(e.World, func(entry *donburi.Entry) {
		marker := components.Marker.Get(entry)
		if !marker.Pulsing {
			return
		}

		seq := components.Tween.Get(entry)
		v, _, done := seq.Update(dt)
		marker.Scale = float64(v)
		if done {
			marker.Pulsing = false
			marker.Scale = 1
		}
	})
}

// PulseMarker restarts the marker's pulse animation.
func PulseMarker(entry *donburi.Entry) {
	marker := components.Marker.Get(entry)
	marker.Pulsing = true
	components.Tween.Set(entry, factory.NewMarkerPulse())
}

// MoveMarker relocates the anchor marker and pulses it.
func MoveMarker(e *ecs.ECS, x, y float64) {
	entry, ok := components.Marker.First(e.World)
	if !ok {
		return
	}
	marker := components.Marker.Get(entry)
	marker.X = x
	marker.Y = y
	marker.Visible = true
	PulseMarker(entry)
}

// OnMovementStopped pulses the marker when the lead familiar settles on it —
// a small acknowledgement that the chase is over.
func OnMovementStopped(w donburi.World, ev events.Movement) {
	if !ev.Entry.Valid() || !ev.Entry.HasComponent(components.Familiar) {
		return
	}
	if components.Familiar.Get(ev.Entry).ChainIndex != 0 {
		return
	}
	if markerEntry, ok := components.Marker.First(w); ok {
		PulseMarker(markerEntry)
	}
}
