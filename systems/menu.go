package systems

import (
	"fmt"
	"os"

	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the main-menu system. createPlayground builds the
// playground scene when Start is selected.
func NewUpdateMenu(sceneChanger SceneChanger, createPlayground func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := getOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				cfg.Familiar.Motion = cfg.Presets[menu.PresetIndex].Motion
				sceneChanger.ChangeScene(createPlayground())
			case components.MainMenuPreset:
				menu.PresetIndex = (menu.PresetIndex + 1) % len(cfg.Presets)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// MenuPresetIndex returns the preset chosen on the menu screen.
func MenuPresetIndex(e *ecs.ECS) int {
	return getOrCreateMenu(e).PresetIndex
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := getOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor, false)

	titleFont := fonts.SansTitle.Get()
	title := "FAMILIAR"
	titleWidth := len(title) * 20 // approximate width for the title face
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Sans.Get()
	for i, option := range menu.Options {
		label := menuLabel(option, menu.PresetIndex)
		clr := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			clr = cfg.Menu.TextColorSelected
			label = "> " + label
		}
		y := int(cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight)
		text.Draw(screen, label, menuFont, int(width/2)-60, y, clr)
	}
}

func menuLabel(option components.MenuOption, presetIndex int) string {
	switch option {
	case components.MainMenuStart:
		return "Start"
	case components.MainMenuPreset:
		return fmt.Sprintf("Preset: %s", cfg.Presets[presetIndex].Name)
	case components.MainMenuExit:
		return "Quit"
	}
	return ""
}

func getOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if entry, ok := components.Menu.First(e.World); ok {
		return components.Menu.Get(entry)
	}
	entry := e.World.Entry(e.Create(cfg.Default, components.Menu))
	components.Menu.SetValue(entry, components.MenuData{
		Options: []components.MenuOption{
			components.MainMenuStart,
			components.MainMenuPreset,
			components.MainMenuExit,
		},
	})
	return components.Menu.Get(entry)
}
