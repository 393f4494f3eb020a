package session

import (
	"log"

	"github.com/milk9111/shelfgrid/grid"
	"github.com/milk9111/shelfgrid/history"
)

// AddCellAt inserts a cell at (gx, gy). Returns false outside edit mode or
// when the coordinate is occupied.
func (s *Session) AddCellAt(gx, gy int) bool {
	if !s.editMode {
		return false
	}
	before := s.grid.Keys()
	if _, ok := s.grid.AddCellAt(gx, gy); !ok {
		return false
	}
	if s.debug {
		s.checkNeighborDirection(gx, gy)
	}
	s.finishMutation(history.ActionAdd, before)
	return true
}

// RemoveCell deletes the cell with the given id, subject to the safe-delete
// connectivity policy. Returns false outside edit mode, for unknown ids, or
// when the removal is blocked.
func (s *Session) RemoveCell(id grid.ID) bool {
	if !s.editMode {
		return false
	}
	c, ok := s.grid.Cell(id)
	if !ok {
		return false
	}
	if s.safeDelete {
		remaining := s.grid.Keys()
		delete(remaining, grid.MakeKey(c.GX, c.GY))
		if !grid.Connected(remaining) {
			s.blockDelete("removing this shelf cell would split the shelf apart")
			return false
		}
	}
	before := s.grid.Keys()
	s.grid.RemoveCell(id)
	s.finishMutation(history.ActionRemove, before)
	return true
}

// RemoveSelectedCells deletes the multi-selection if non-empty, else the
// single selection. Deletions past the confirmation threshold are staged
// behind the confirmation callback instead of applying immediately.
func (s *Session) RemoveSelectedCells() {
	if !s.editMode {
		return
	}
	doomed := s.sel.Multi().Clone()
	if len(doomed) == 0 {
		id, ok := s.sel.Selected()
		if !ok {
			return
		}
		s.RemoveCell(id)
		return
	}

	if s.safeDelete {
		remaining := s.grid.Keys()
		for k := range doomed {
			delete(remaining, k)
		}
		if !grid.Connected(remaining) {
			s.blockDelete("removing the selected cells would split the shelf apart")
			return
		}
	}

	commit := func() { s.commitBatchRemoval(doomed) }
	if len(doomed) > confirmThreshold && s.cb.OnConfirmDelete != nil {
		s.cb.OnConfirmDelete(len(doomed), commit)
		return
	}
	commit()
}

// Clear removes every cell. Past the confirmation threshold it is staged
// behind the confirmation callback. Clearing leaves zero cells, which is
// trivially connected, so safe delete never blocks it.
func (s *Session) Clear() {
	if !s.editMode {
		return
	}
	n := s.grid.Count()
	if n == 0 {
		return
	}
	commit := func() {
		before := s.grid.Keys()
		s.grid.Clear()
		s.sel.ClearMulti()
		s.sel.ClearSingle()
		s.finishMutation(history.ActionClear, before)
	}
	if n > confirmThreshold && s.cb.OnConfirmDelete != nil {
		s.cb.OnConfirmDelete(n, commit)
		return
	}
	commit()
}

// Undo restores occupancy to the most recent action's before snapshot.
func (s *Session) Undo() bool {
	if !s.editMode {
		return false
	}
	a, ok := s.hist.Undo()
	if !ok {
		return false
	}
	s.restore(a.Before)
	return true
}

// Redo restores occupancy to the most recently undone action's after
// snapshot.
func (s *Session) Redo() bool {
	if !s.editMode {
		return false
	}
	a, ok := s.hist.Redo()
	if !ok {
		return false
	}
	s.restore(a.After)
	return true
}

func (s *Session) commitBatchRemoval(doomed grid.KeySet) {
	before := s.grid.Keys()
	for k := range doomed {
		gx, gy, ok := k.Coords()
		if !ok {
			continue
		}
		if id, ok := s.grid.IDAt(gx, gy); ok {
			s.grid.RemoveCell(id)
		}
	}
	s.sel.ClearMulti()
	s.finishMutation(history.ActionBatch, before)
}

// restore swaps the whole occupancy to a history snapshot. Cells come back
// with fresh identities, so selection is re-sanitized afterwards.
func (s *Session) restore(keys grid.KeySet) {
	s.grid.SetFromKeys(keys)
	s.sel.Sanitize(s.grid)
	s.rebuild()
	s.notifyCellCount()
	s.notifyMultiCount()
	s.notifyHistory()
}

// finishMutation runs the fixed post-mutation sequence: record history,
// sanitize selection, notify the rendering collaborator, fire callbacks.
// Callers never observe an intermediate state.
func (s *Session) finishMutation(t history.ActionType, before grid.KeySet) {
	s.hist.Record(t, before, s.grid.Keys())
	s.sel.Sanitize(s.grid)
	s.rebuild()
	s.notifyCellCount()
	s.notifyMultiCount()
	s.notifyHistory()
}

func (s *Session) blockDelete(reason string) {
	if s.cb.OnDeleteBlocked != nil {
		s.cb.OnDeleteBlocked(reason)
	}
}

// checkNeighborDirection is a development aid: after adding a cell with
// exactly one occupied neighbor, verify the neighbor offset inverts back
// onto the new cell. It never affects control flow.
func (s *Session) checkNeighborDirection(gx, gy int) {
	keys := s.grid.Keys()
	if grid.NeighborCount(keys, gx, gy) != 1 {
		return
	}
	for _, off := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := gx+off[0], gy+off[1]
		if !s.grid.IsOccupied(nx, ny) {
			continue
		}
		if nx-off[0] != gx || ny-off[1] != gy {
			log.Printf("grid: neighbor direction mismatch at (%d,%d) -> (%d,%d)", gx, gy, nx, ny)
		}
		return
	}
}
