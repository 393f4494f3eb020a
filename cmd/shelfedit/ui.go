package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// toolbarButtons keeps the widgets whose state tracks the session.
type toolbarButtons struct {
	undo  *widget.Button
	redo  *widget.Button
	clear *widget.Button
	mode  *widget.Button
	reset *widget.Button
}

func (tb *toolbarButtons) setHistory(canUndo, canRedo bool) {
	if tb == nil {
		return
	}
	tb.undo.GetWidget().Disabled = !canUndo
	tb.redo.GetWidget().Disabled = !canRedo
}

func (tb *toolbarButtons) setMode(edit bool) {
	if tb == nil || tb.mode == nil {
		return
	}
	label := "Mode: View"
	if edit {
		label = "Mode: Edit"
	}
	if text := tb.mode.Text(); text != nil {
		text.Label = label
	}
}

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newShelfTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:     solidNineSlice(color.RGBA{205, 210, 220, 255}),
				Hover:    solidNineSlice(color.RGBA{225, 230, 240, 255}),
				Pressed:  solidNineSlice(color.RGBA{180, 186, 198, 255}),
				Disabled: solidNineSlice(color.RGBA{150, 152, 158, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 96},
			},
		},
	}
}

func buildToolbarUI(g *Game) (*ebitenui.UI, *toolbarButtons) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newShelfTheme(&fontFace)

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(520, toolbarHeight),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	newButton := func(label string, onClick func()) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(ui.PrimaryTheme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, &fontFace, ui.PrimaryTheme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(72, 40),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
		toolbar.AddChild(btn)
		return btn
	}

	buttons := &toolbarButtons{}
	buttons.undo = newButton("Undo", func() { g.session.Undo() })
	buttons.redo = newButton("Redo", func() { g.session.Redo() })
	buttons.clear = newButton("Clear", func() { g.session.Clear() })
	buttons.mode = newButton("Mode: Edit", func() { g.toggleMode() })
	buttons.reset = newButton("Recenter", func() { g.session.ResetCamera() })
	buttons.setHistory(false, false)
	buttons.setMode(g.cfg.EditMode)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(toolbar)
	ui.Container = root

	return ui, buttons
}
