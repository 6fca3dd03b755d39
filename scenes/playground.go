package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/familiar/assets"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/events"
	"github.com/automoto/familiar/level"
	"github.com/automoto/familiar/systems"
	"github.com/automoto/familiar/systems/factory"
	"github.com/automoto/familiar/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaygroundScene runs the familiar sandbox: critters chasing the pointer or
// a dropped anchor around the obstacle course.
type PlaygroundScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	tuningUI     *ui.TuningUI
	presetIndex  int
	once         sync.Once
}

// NewPlaygroundScene creates the playground scene seeded with a tuning preset
func NewPlaygroundScene(sc SceneChanger, presetIndex int) *PlaygroundScene {
	return &PlaygroundScene{sceneChanger: sc, presetIndex: presetIndex}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	// The ebitenui panel consumes the mouse while open; click-to-anchor is
	// gated on it inside UpdatePlayground.
	if systems.IsTuningOpen(ps.ecs) {
		ps.tuningUI.Update()
	}
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.RGBA{30, 31, 44, 255})

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if systems.IsTuningOpen(ps.ecs) {
		ps.tuningUI.UI.Draw(screen)
	}
}

func (ps *PlaygroundScene) configure() {
	// Preload sprite sheets to avoid lag on first use (important for WASM)
	assets.PreloadAllAnimations()

	layout, err := level.Load(assets.LevelFS(), assets.PlaygroundLevel)
	if err != nil {
		panic("failed to load level: " + err.Error())
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdatePlayground)
	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateStates)
	ecs.AddSystem(systems.UpdateAnimations)
	ecs.AddSystem(systems.UpdateMarkers)
	ecs.AddSystem(systems.UpdateEvents)

	ecs.AddRenderer(cfg.Default, systems.DrawObstacles)
	ecs.AddRenderer(cfg.Default, systems.DrawMarkers)
	ecs.AddRenderer(cfg.Default, systems.DrawFamiliars)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	events.MovementStopped.Subscribe(ecs.World, systems.OnMovementStopped)

	ps.ecs = ecs

	// Collision space sized to the level, then the solid geometry.
	factory.CreateSpace(ps.ecs, layout.Width, layout.Height, 16, 16)
	for _, r := range layout.Obstacles {
		factory.CreateObstacle(ps.ecs, r)
	}

	factory.CreatePlayground(ps.ecs, layout)
	factory.CreateTuning(ps.ecs, ps.presetIndex)
	factory.CreateMarker(ps.ecs, layout.HomeX, layout.HomeY)

	for i := 0; i < systems.SavedFamiliarCount(); i++ {
		systems.SpawnChained(ps.ecs)
	}
	systems.RetargetLead(ps.ecs)

	ps.tuningUI = ui.NewTuningUI(ps.ecs)
}
