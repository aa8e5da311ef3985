package ui

import (
	"bytes"

	cfg "github.com/automoto/seasonscape/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// buttonLabels are the theme button captions in control order
var buttonLabels = map[cfg.Theme]string{
	cfg.Winter: "Winter",
	cfg.Spring: "Spring!!",
}

// ControlsUI holds the theme selector buttons at the top of the window
type ControlsUI struct {
	UI *ebitenui.UI

	// OnSelect is called with the theme of a clicked button
	OnSelect func(cfg.Theme)

	buttons map[cfg.Theme]*widget.Button
	face    text.Face
}

// NewControlsUI builds the theme buttons. The button for active starts
// highlighted.
func NewControlsUI(active cfg.Theme, onSelect func(cfg.Theme)) *ControlsUI {
	cui := &ControlsUI{
		OnSelect: onSelect,
		buttons:  make(map[cfg.Theme]*widget.Button, len(cfg.Themes)),
	}

	cui.loadFonts()
	cui.buildUI()
	cui.Refresh(active)

	return cui
}

func (cui *ControlsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Store as text.Face interface for ebitenui compatibility
	cui.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.UI.ButtonFontSize,
	}
}

func (cui *ControlsUI) buildUI() {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Top-centre strip, offset by the margin
	margin := widget.Insets{Top: cfg.UI.TopMargin}
	strip := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&margin),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	padding := widget.Insets{Top: 4, Bottom: 4, Left: 4, Right: 4}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(cfg.UI.ButtonSpacing),
			widget.RowLayoutOpts.Padding(&padding),
		)),
	)

	for _, theme := range cfg.Themes {
		btn := cui.createButton(theme)
		cui.buttons[theme] = btn
		panel.AddChild(btn)
	}

	strip.AddChild(panel)
	root.AddChild(strip)
	cui.UI = &ebitenui.UI{Container: root}
}

// createButton makes one theme button. The active theme's button is
// disabled, so the disabled look doubles as its highlight.
func (cui *ControlsUI) createButton(theme cfg.Theme) *widget.Button {
	active := cfg.UI.ButtonActive[theme]
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(cfg.UI.ButtonWidth, cfg.UI.ButtonHeight)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(cfg.UI.ButtonIdle),
			Hover:    image.NewNineSliceColor(cfg.UI.ButtonHover),
			Pressed:  image.NewNineSliceColor(active),
			Disabled: image.NewNineSliceColor(active),
		}),
		widget.ButtonOpts.Text(buttonLabels[theme], &cui.face, &widget.ButtonTextColor{
			Idle:     cfg.UI.ButtonTextIdle,
			Hover:    cfg.UI.ButtonTextActive,
			Pressed:  cfg.UI.ButtonTextActive,
			Disabled: cfg.UI.ButtonTextActive,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cui.OnSelect != nil {
				cui.OnSelect(theme)
			}
		}),
	)
}

// Refresh highlights the button of the active theme.
func (cui *ControlsUI) Refresh(active cfg.Theme) {
	for theme, btn := range cui.buttons {
		btn.GetWidget().Disabled = theme == active
	}
}

// Update processes widget input
func (cui *ControlsUI) Update() {
	cui.UI.Update()
}
