package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

// cellOverlayOp builds the camera transform for an overlay tile at a grid
// coordinate.
func (g *Game) cellOverlayOp(gx, gy int, w, h float64) *ebiten.DrawImageOptions {
	cam := g.session.Camera()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(
		float64(gx*cellPx)-cam.Center.X,
		float64(gy*cellPx)-cam.Center.Y,
	)
	op.GeoM.Scale(cam.Scale, cam.Scale)
	op.GeoM.Translate(w/2, h/2)
	return op
}

func (g *Game) drawHighlights(screen *ebiten.Image, w, h float64) {
	// hover, only when the cursor is over the canvas
	mx, my := ebiten.CursorPosition()
	if my >= toolbarHeight && !g.panning {
		gx, gy := g.gridAt(mx, my)
		if g.session.IsOccupied(gx, gy) {
			screen.DrawImage(g.hoverImg, g.cellOverlayOp(gx, gy, w, h))
		}
	}

	for k := range g.session.MultiSelected() {
		gx, gy, ok := k.Coords()
		if !ok {
			continue
		}
		screen.DrawImage(g.multiImg, g.cellOverlayOp(gx, gy, w, h))
	}

	if id, ok := g.session.Selected(); ok {
		for _, c := range g.session.Cells() {
			if c.ID == id {
				screen.DrawImage(g.selectedImg, g.cellOverlayOp(c.GX, c.GY, w, h))
				break
			}
		}
	}
}

func (g *Game) drawMarquee(screen *ebiten.Image, w, h float64) {
	r, ok := g.session.Marquee()
	if !ok {
		return
	}
	cam := g.session.Camera()
	tl := cam.WorldToScreen(cp.Vector{X: r.MinX, Y: r.MinY}, w, h)
	br := cam.WorldToScreen(cp.Vector{X: r.MaxX, Y: r.MaxY}, w, h)

	g.drawLine(screen, tl.X, tl.Y, br.X-tl.X, 1)
	g.drawLine(screen, tl.X, br.Y, br.X-tl.X, 1)
	g.drawLine(screen, tl.X, tl.Y, 1, br.Y-tl.Y)
	g.drawLine(screen, br.X, tl.Y, 1, br.Y-tl.Y)
}

func (g *Game) drawLine(screen *ebiten.Image, x, y, sw, sh float64) {
	if sw <= 0 {
		sw = 1
	}
	if sh <= 0 {
		sh = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sw, sh)
	op.GeoM.Translate(x, y)
	screen.DrawImage(g.marqueePx, op)
}
