package selection

import (
	"math"

	"github.com/milk9111/shelfgrid/grid"
)

// MultiDisplayCap bounds how many multi-selected cells the shell should
// highlight. It caps rendering only; the selection set itself is unbounded.
const MultiDisplayCap = 256

// Rect is an axis-aligned marquee rectangle in world coordinates,
// transient during an active drag.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Collapsed names what a single Escape press cleared.
type Collapsed int

const (
	CollapsedNothing Collapsed = iota
	CollapsedMarquee
	CollapsedMulti
	CollapsedSingle
)

// Controller tracks single selection, the multi-selection set and an
// in-progress marquee drag.
type Controller struct {
	selected grid.ID // 0 = none
	multi    grid.KeySet

	marqueeActive bool
	anchorX       float64
	anchorY       float64
	marquee       Rect
}

// NewController creates an empty selection controller.
func NewController() *Controller {
	return &Controller{multi: make(grid.KeySet)}
}

// Selected returns the single-selected cell id, if any.
func (c *Controller) Selected() (grid.ID, bool) {
	return c.selected, c.selected != 0
}

// Click toggles single selection: selecting a different cell replaces the
// current one, clicking the already-selected cell deselects it. Any click
// clears the multi-selection.
func (c *Controller) Click(id grid.ID) {
	c.multi = make(grid.KeySet)
	if c.selected == id {
		c.selected = 0
		return
	}
	c.selected = id
}

// ShiftClick toggles the cell's key in the multi-selection set and makes the
// cell the single-selection anchor for keyboard-driven neighbor actions.
func (c *Controller) ShiftClick(id grid.ID, key grid.Key) {
	if _, ok := c.multi[key]; ok {
		delete(c.multi, key)
	} else {
		c.multi[key] = struct{}{}
	}
	c.selected = id
}

// Multi returns the multi-selection set. Callers must not mutate it.
func (c *Controller) Multi() grid.KeySet { return c.multi }

// MultiCount returns the size of the multi-selection set.
func (c *Controller) MultiCount() int { return len(c.multi) }

// ClearMulti empties the multi-selection set.
func (c *Controller) ClearMulti() {
	c.multi = make(grid.KeySet)
}

// ClearSingle clears the single selection.
func (c *Controller) ClearSingle() {
	c.selected = 0
}

// BeginMarquee starts a marquee drag anchored at a world coordinate.
func (c *Controller) BeginMarquee(x, y float64) {
	c.marqueeActive = true
	c.anchorX = x
	c.anchorY = y
	c.marquee = Rect{MinX: x, MinY: y, MaxX: x, MaxY: y}
}

// DragMarquee extends the marquee to the current pointer position.
func (c *Controller) DragMarquee(x, y float64) {
	if !c.marqueeActive {
		return
	}
	c.marquee = Rect{
		MinX: math.Min(c.anchorX, x),
		MinY: math.Min(c.anchorY, y),
		MaxX: math.Max(c.anchorX, x),
		MaxY: math.Max(c.anchorY, y),
	}
}

// Marquee returns the active marquee rectangle, if a drag is in progress.
func (c *Controller) Marquee() (Rect, bool) {
	return c.marquee, c.marqueeActive
}

// CancelMarquee abandons an in-progress marquee drag without selecting.
func (c *Controller) CancelMarquee() {
	c.marqueeActive = false
}

// EndMarquee finishes the drag and unions every occupied cell inside the
// rectangle into the multi-selection. Cell coordinates are derived from the
// rectangle via floor/ceil against the cell size.
func (c *Controller) EndMarquee(m *grid.Model, cellSize float64) {
	if !c.marqueeActive {
		return
	}
	c.marqueeActive = false
	if cellSize <= 0 {
		return
	}
	gx0 := int(math.Floor(c.marquee.MinX / cellSize))
	gy0 := int(math.Floor(c.marquee.MinY / cellSize))
	gx1 := int(math.Ceil(c.marquee.MaxX/cellSize)) - 1
	gy1 := int(math.Ceil(c.marquee.MaxY/cellSize)) - 1
	for _, cell := range m.Cells() {
		if cell.GX < gx0 || cell.GX > gx1 || cell.GY < gy0 || cell.GY > gy1 {
			continue
		}
		c.multi[grid.MakeKey(cell.GX, cell.GY)] = struct{}{}
	}
}

// Escape collapses the richest active state: an in-progress marquee first,
// else the multi-selection, else the single selection. Only one state is
// cleared per press.
func (c *Controller) Escape() Collapsed {
	if c.marqueeActive {
		c.marqueeActive = false
		return CollapsedMarquee
	}
	if len(c.multi) > 0 {
		c.multi = make(grid.KeySet)
		return CollapsedMulti
	}
	if c.selected != 0 {
		c.selected = 0
		return CollapsedSingle
	}
	return CollapsedNothing
}

// Sanitize drops selection state that no longer refers to live cells: the
// single selection is cleared when its cell is gone, and multi-selection
// keys whose coordinate is no longer occupied are removed.
func (c *Controller) Sanitize(m *grid.Model) {
	if c.selected != 0 {
		if _, ok := m.Cell(c.selected); !ok {
			c.selected = 0
		}
	}
	for k := range c.multi {
		gx, gy, ok := k.Coords()
		if !ok || !m.IsOccupied(gx, gy) {
			delete(c.multi, k)
		}
	}
}
