package components

import "github.com/yohamta/donburi"

type MenuOption int

const (
	MainMenuStart MenuOption = iota
	MainMenuPreset
	MainMenuExit
)

type MenuData struct {
	SelectedIndex int
	Options       []MenuOption
	PresetIndex   int
}

var Menu = donburi.NewComponentType[MenuData]()
