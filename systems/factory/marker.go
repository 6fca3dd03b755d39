package factory

import (
	"github.com/automoto/familiar/archetypes"
	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMarker spawns the anchor marker at (x, y) with its pulse tween primed.
func CreateMarker(e *ecs.ECS, x, y float64) *donburi.Entry {
	marker := archetypes.Marker.Spawn(e)

	components.Marker.SetValue(marker, components.MarkerData{
		X:       x,
		Y:       y,
		Scale:   1,
		Visible: true,
	})
	components.Tween.Set(marker, NewMarkerPulse())

	return marker
}

// NewMarkerPulse builds the grow-then-settle scale sequence played when the
// anchor moves or a familiar arrives.
func NewMarkerPulse() *gween.Sequence {
	half := cfg.Marker.PulseDuration / 2
	return gween.NewSequence(
		gween.New(1, float32(cfg.Marker.PulseScale), half, ease.OutQuad),
		gween.New(float32(cfg.Marker.PulseScale), 1, half, ease.InQuad),
	)
}
