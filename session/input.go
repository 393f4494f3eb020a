package session

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shelfgrid/grid"
)

// screenToGrid maps a screen point to the grid coordinate under it.
func (s *Session) screenToGrid(sx, sy float64) (int, int) {
	w := s.cam.Cam.ScreenToWorld(cp.Vector{X: sx, Y: sy}, s.screenW, s.screenH)
	return int(math.Floor(w.X / CellSize)), int(math.Floor(w.Y / CellSize))
}

// TapAt handles an unmodified tap/click at a screen position. A tap that
// completes a double tap toggles the cell's occupancy (edit mode only);
// otherwise a tap on an occupied cell toggles single selection.
func (s *Session) TapAt(sx, sy float64) {
	gx, gy := s.screenToGrid(sx, sy)
	if s.taps.Tap(sx, sy) {
		if s.editMode {
			s.toggleCellAt(gx, gy)
		}
		return
	}
	if id, ok := s.grid.IDAt(gx, gy); ok {
		s.sel.Click(id)
		s.notifyMultiCount()
	}
}

// ShiftTapAt handles a shift-modified tap: toggles the cell's key in the
// multi-selection and anchors the single selection on it. Active in both
// modes.
func (s *Session) ShiftTapAt(sx, sy float64) {
	gx, gy := s.screenToGrid(sx, sy)
	id, ok := s.grid.IDAt(gx, gy)
	if !ok {
		return
	}
	s.sel.ShiftClick(id, grid.MakeKey(gx, gy))
	s.notifyMultiCount()
}

// toggleCellAt removes the cell at (gx, gy) if present, else adds one.
func (s *Session) toggleCellAt(gx, gy int) {
	if id, ok := s.grid.IDAt(gx, gy); ok {
		s.RemoveCell(id)
		return
	}
	s.AddCellAt(gx, gy)
}

// BeginMarqueeAt starts a marquee drag from a press on an unoccupied area.
func (s *Session) BeginMarqueeAt(sx, sy float64) {
	w := s.cam.Cam.ScreenToWorld(cp.Vector{X: sx, Y: sy}, s.screenW, s.screenH)
	s.sel.BeginMarquee(w.X, w.Y)
}

// DragMarqueeTo extends the active marquee to the pointer position.
func (s *Session) DragMarqueeTo(sx, sy float64) {
	w := s.cam.Cam.ScreenToWorld(cp.Vector{X: sx, Y: sy}, s.screenW, s.screenH)
	s.sel.DragMarquee(w.X, w.Y)
}

// EndMarquee releases the drag and unions the covered occupied cells into
// the multi-selection.
func (s *Session) EndMarquee() {
	s.sel.EndMarquee(s.grid, CellSize)
	s.notifyMultiCount()
}

// ArrowKey acts on the neighbor of the single-selected cell in the pressed
// direction: removes it when occupied, adds a cell there when free. No-op
// without a single selection or outside edit mode.
func (s *Session) ArrowKey(dx, dy int) {
	if !s.editMode {
		return
	}
	id, ok := s.sel.Selected()
	if !ok {
		return
	}
	c, ok := s.grid.Cell(id)
	if !ok {
		return
	}
	tx, ty := c.GX+dx, c.GY+dy
	if nid, occ := s.grid.IDAt(tx, ty); occ {
		s.RemoveCell(nid)
		return
	}
	s.AddCellAt(tx, ty)
}

// EscapeKey collapses the richest active selection state (marquee, then
// multi, then single). One collapse per press.
func (s *Session) EscapeKey() {
	s.sel.Escape()
	s.notifyMultiCount()
}

// DeleteKey removes the multi-selection if non-empty, else the single
// selection, through the batch confirmation policy.
func (s *Session) DeleteKey() {
	s.RemoveSelectedCells()
}
