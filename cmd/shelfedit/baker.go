package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/shelfgrid/config"
	"github.com/milk9111/shelfgrid/grid"
	"github.com/milk9111/shelfgrid/session"
)

const cellPx = int(session.CellSize)

// Baker is the rendering collaborator: it bakes the current occupancy into
// an offscreen world image and reports an edge diagnostic count back to the
// session. The grid core never sees any of this.
type Baker struct {
	cellImg *ebiten.Image

	world      *ebiten.Image
	originGX   int
	originGY   int
	lastCells  []grid.Cell
	edgeErrors int
}

func newBaker(theme config.Theme) *Baker {
	b := &Baker{}
	b.SetTheme(theme)
	return b
}

// SetTheme rebuilds the cell tile in the new colors and rebakes the world.
func (b *Baker) SetTheme(theme config.Theme) {
	b.cellImg = borderedCellImage(cellPx, parseHexColor(theme.Cell))
	if b.lastCells != nil {
		b.Rebuild(b.lastCells)
	}
}

// Rebuild bakes the occupancy into the world image and recounts edge
// diagnostics. Implements session.Renderer.
func (b *Baker) Rebuild(cells []grid.Cell) int {
	b.lastCells = cells
	b.edgeErrors = countEdgeErrors(cells)

	if len(cells) == 0 {
		b.world = nil
		return b.edgeErrors
	}

	minGX, minGY := cells[0].GX, cells[0].GY
	maxGX, maxGY := minGX, minGY
	for _, c := range cells {
		if c.GX < minGX {
			minGX = c.GX
		}
		if c.GX > maxGX {
			maxGX = c.GX
		}
		if c.GY < minGY {
			minGY = c.GY
		}
		if c.GY > maxGY {
			maxGY = c.GY
		}
	}
	b.originGX = minGX
	b.originGY = minGY

	w := (maxGX - minGX + 1) * cellPx
	h := (maxGY - minGY + 1) * cellPx
	if b.world == nil || b.world.Bounds().Dx() != w || b.world.Bounds().Dy() != h {
		b.world = ebiten.NewImage(w, h)
	}
	b.world.Clear()
	for _, c := range cells {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64((c.GX-minGX)*cellPx), float64((c.GY-minGY)*cellPx))
		b.world.DrawImage(b.cellImg, op)
	}
	return b.edgeErrors
}

// EdgeErrors returns the diagnostic count from the last bake.
func (b *Baker) EdgeErrors() int { return b.edgeErrors }

// Draw blits the baked world through the camera transform.
func (b *Baker) Draw(screen *ebiten.Image, s *session.Session, screenW, screenH float64) {
	if b.world == nil {
		return
	}
	cam := s.Camera()
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(
		float64(b.originGX*cellPx)-cam.Center.X,
		float64(b.originGY*cellPx)-cam.Center.Y,
	)
	op.GeoM.Scale(cam.Scale, cam.Scale)
	op.GeoM.Translate(screenW/2, screenH/2)
	screen.DrawImage(b.world, op)
}

// edge mask bits, paired so that opposite(i) == i^1
var edgeOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// countEdgeErrors cross-checks the baked adjacency data: duplicate
// coordinates in the input, and neighbor masks that are not symmetric
// between adjacent cells. Diagnostic only, never user-facing.
func countEdgeErrors(cells []grid.Cell) int {
	errs := 0
	occ := make(map[grid.Key]grid.Cell, len(cells))
	for _, c := range cells {
		k := grid.MakeKey(c.GX, c.GY)
		if _, dup := occ[k]; dup {
			errs++
			continue
		}
		occ[k] = c
	}

	masks := make(map[grid.Key]uint8, len(occ))
	for k, c := range occ {
		var m uint8
		for i, off := range edgeOffsets {
			if _, ok := occ[grid.MakeKey(c.GX+off[0], c.GY+off[1])]; ok {
				m |= 1 << i
			}
		}
		masks[k] = m
	}
	for k, c := range occ {
		for i, off := range edgeOffsets {
			if masks[k]&(1<<i) == 0 {
				continue
			}
			nk := grid.MakeKey(c.GX+off[0], c.GY+off[1])
			if masks[nk]&(1<<(i^1)) == 0 {
				errs++
			}
		}
	}
	return errs
}

// borderedCellImage builds a filled tile with a darker 1px border.
func borderedCellImage(size int, col color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	border := color.RGBA{
		R: col.R / 2,
		G: col.G / 2,
		B: col.B / 2,
		A: 0xff,
	}
	img.Fill(border)
	inner := ebiten.NewImage(size-2, size-2)
	inner.Fill(col)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(1, 1)
	img.DrawImage(inner, op)
	return img
}
