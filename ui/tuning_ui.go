package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/familiar/components"
	cfg "github.com/automoto/familiar/config"
	"github.com/automoto/familiar/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// TuningUI holds the ebitenui overlay for live chase-kinematics tuning
type TuningUI struct {
	UI  *ebitenui.UI
	ECS *ecs.ECS

	// Widget references for updates
	valueLabels []*widget.Label
	presetLabel *widget.Label
	applyButton *widget.Button
	statusLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewTuningUI creates the tuning panel bound to a playground ECS
func NewTuningUI(e *ecs.ECS) *TuningUI {
	tui := &TuningUI{
		ECS:         e,
		valueLabels: make([]*widget.Label, len(cfg.TuningSteps)),
	}

	tui.loadFonts()
	tui.buildUI()

	return tui
}

func (tui *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (tui *TuningUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Panel anchored to the right edge so the familiars stay visible while
	// values are nudged.
	panelPadding := widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 235})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&panelPadding),
			widget.RowLayoutOpts.Spacing(5),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("TUNING", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	panel.AddChild(tui.buildPresetRow())

	for i := range cfg.TuningSteps {
		panel.AddChild(tui.buildStepRow(i))
	}

	panel.AddChild(tui.buildButtonsRow())

	tui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(tui.statusLabel)

	rootContainer.AddChild(panel)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TuningUI) buildPresetRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text("Preset:", &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	row.AddChild(nameLabel)

	tui.presetLabel = widget.NewLabel(
		widget.LabelOpts.Text(cfg.Presets[0].Name, &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(tui.presetLabel)

	cycleButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(55, 18)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("Change", &tui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			tun := tui.tuning()
			systems.SelectPreset(tui.ECS, tun.PresetIndex+1)
			tui.UpdateUI()
		}),
	)
	row.AddChild(cycleButton)

	return row
}

func (tui *TuningUI) buildStepRow(stepIndex int) *widget.Container {
	step := cfg.TuningSteps[stepIndex]

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	nameLabel := widget.NewLabel(
		widget.LabelOpts.Text(step.Label, &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 190, 255},
		}),
	)
	row.AddChild(nameLabel)

	minusButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(22, 18)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("-", &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.AdjustTuning(tui.ECS, stepIndex, -1)
			tui.UpdateUI()
		}),
	)
	row.AddChild(minusButton)

	tui.valueLabels[stepIndex] = widget.NewLabel(
		widget.LabelOpts.Text("", &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(tui.valueLabels[stepIndex])

	plusButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(22, 18)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("+", &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.AdjustTuning(tui.ECS, stepIndex, 1)
			tui.UpdateUI()
		}),
	)
	row.AddChild(plusButton)

	return row
}

func (tui *TuningUI) buildButtonsRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	tui.applyButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 24)),
		widget.ButtonOpts.Image(tui.applyButtonImage()),
		widget.ButtonOpts.Text("Apply", &tui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.ApplyTuning(tui.ECS)
			systems.SaveCurrentSettings(tui.ECS)
			tui.UpdateUI()
		}),
	)
	row.AddChild(tui.applyButton)

	saveButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 24)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("Save", &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			systems.SaveCurrentSettings(tui.ECS)
			tui.UpdateUI()
		}),
	)
	row.AddChild(saveButton)

	return row
}

func (tui *TuningUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (tui *TuningUI) applyButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// UpdateUI updates all UI elements to reflect the current edit buffer
func (tui *TuningUI) UpdateUI() {
	tun := tui.tuning()
	if tun == nil {
		return
	}

	if tui.presetLabel != nil {
		tui.presetLabel.Label = cfg.Presets[tun.PresetIndex].Name
	}

	for i, step := range cfg.TuningSteps {
		if tui.valueLabels[i] == nil {
			continue
		}
		tui.valueLabels[i].Label = fmt.Sprintf("%.0f", *step.Get(&tun.Edited))
	}

	if tui.applyButton != nil {
		tui.applyButton.GetWidget().Disabled = !tun.Dirty
	}
	if tui.statusLabel != nil {
		if tun.Dirty {
			tui.statusLabel.Label = "edited values not applied"
		} else {
			tui.statusLabel.Label = ""
		}
	}
}

func (tui *TuningUI) tuning() *components.TuningData {
	entry, ok := components.Tuning.First(tui.ECS.World)
	if !ok {
		return nil
	}
	return components.Tuning.Get(entry)
}

// Update calls the UI's Update method
func (tui *TuningUI) Update() {
	tui.UI.Update()
	if !tui.initialized {
		tui.initialized = true
		tui.UpdateUI()
	}
}
