package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// gridAt maps a screen position to the grid coordinate under the cursor.
func (g *Game) gridAt(sx, sy int) (int, int) {
	w := g.session.Camera().ScreenToWorld(
		cp.Vector{X: float64(sx), Y: float64(sy)},
		float64(g.screenW), float64(g.screenH),
	)
	return int(math.Floor(w.X / float64(cellPx))), int(math.Floor(w.Y / float64(cellPx)))
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	overCanvas := my >= toolbarHeight

	// wheel zoom, instantaneous and centered on the cursor
	if overCanvas {
		_, wy := ebiten.Wheel()
		if wy != 0 {
			g.session.WheelZoom(float64(mx), float64(my), wy)
		}
	}

	// left button: tap/click on occupied cells, marquee drag from empty area
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && overCanvas && !g.pinching {
		gx, gy := g.gridAt(mx, my)
		shift := ebiten.IsKeyPressed(ebiten.KeyShift)
		switch {
		case g.session.IsOccupied(gx, gy) && shift:
			g.session.ShiftTapAt(float64(mx), float64(my))
		case g.session.IsOccupied(gx, gy):
			g.session.TapAt(float64(mx), float64(my))
		default:
			g.session.BeginMarqueeAt(float64(mx), float64(my))
			g.marqueeDragging = true
		}
	}
	if g.marqueeDragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.session.DragMarqueeTo(float64(mx), float64(my))
	}
	if g.marqueeDragging && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.session.EndMarquee()
		g.marqueeDragging = false
	}

	// middle button drag pans the canvas
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		g.panning = true
		g.lastPanX, g.lastPanY = mx, my
		g.session.PanBegin()
	}
	if g.panning && ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		dx := mx - g.lastPanX
		dy := my - g.lastPanY
		if dx != 0 || dy != 0 {
			g.session.PanMove(float64(dx), float64(dy))
		}
		g.lastPanX, g.lastPanY = mx, my
	}
	if g.panning && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle) {
		g.panning = false
		g.session.PanEnd()
	}
}

func (g *Game) handleKeyboard() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.session.ArrowKey(-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.session.ArrowKey(1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.session.ArrowKey(0, -1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.session.ArrowKey(0, 1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.session.EscapeKey()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.session.DeleteKey()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyZ) && ctrl && !shift {
		g.session.Undo()
	}
	if (inpututil.IsKeyJustPressed(ebiten.KeyY) && ctrl) ||
		(inpututil.IsKeyJustPressed(ebiten.KeyZ) && ctrl && shift) {
		g.session.Redo()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.session.ResetCamera()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) && ctrl {
		g.copySelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) && ctrl {
		g.pasteCells()
	}
}

func (g *Game) toggleMode() {
	edit := !g.session.EditMode()
	g.session.SetEditMode(edit)
	if g.buttons != nil {
		g.buttons.setMode(edit)
	}
}

// handleTouch tracks two-finger pinch zoom. Pinch excludes single-pointer
// panning for its duration.
func (g *Game) handleTouch() {
	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) >= 2 {
		x0, y0 := ebiten.TouchPosition(ids[0])
		x1, y1 := ebiten.TouchPosition(ids[1])
		dist := math.Hypot(float64(x1-x0), float64(y1-y0))
		midX := float64(x0+x1) / 2
		midY := float64(y0+y1) / 2

		if !g.pinching {
			g.pinching = true
			g.prevPinchDist = dist
			g.session.PinchBegin()
			return
		}
		if g.prevPinchDist > 0 && dist > 0 {
			g.session.PinchZoom(midX, midY, dist/g.prevPinchDist)
		}
		g.prevPinchDist = dist
		return
	}
	if g.pinching {
		g.pinching = false
		g.prevPinchDist = 0
		g.session.PinchEnd()
	}
}

func (g *Game) handleConfirmKeys() {
	if g.confirm == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		g.confirm.perform()
		g.confirm = nil
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.confirm = nil
		g.pushToast("delete cancelled")
	}
}
