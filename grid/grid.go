package grid

// ID identifies a live cell. IDs are assigned at creation and never reused.
type ID int64

// Cell is a unit of occupancy at one integer grid coordinate.
type Cell struct {
	ID ID
	GX int
	GY int
}

// Bounds is the axis-aligned integer bounding box of all occupied coordinates.
type Bounds struct {
	MinGX, MaxGX int
	MinGY, MaxGY int
}

// Model owns the set of occupied grid coordinates and their identities.
// The two internal maps are kept mutually consistent: every cell appears in
// both, keyed by id and by coordinate.
type Model struct {
	cells    map[ID]Cell
	occupied map[Key]ID
	nextID   ID
}

// NewModel creates an empty grid model.
func NewModel() *Model {
	return &Model{
		cells:    make(map[ID]Cell),
		occupied: make(map[Key]ID),
	}
}

// NewModelWithOrigin creates a grid model seeded with a single cell at (0,0).
func NewModelWithOrigin() *Model {
	m := NewModel()
	m.AddCellAt(0, 0)
	return m
}

// AddCellAt inserts a cell at (gx, gy). It returns false with no side effect
// when the coordinate is already occupied.
func (m *Model) AddCellAt(gx, gy int) (ID, bool) {
	k := MakeKey(gx, gy)
	if _, taken := m.occupied[k]; taken {
		return 0, false
	}
	m.nextID++
	id := m.nextID
	m.cells[id] = Cell{ID: id, GX: gx, GY: gy}
	m.occupied[k] = id
	return id, true
}

// IsOccupied reports whether a cell exists at (gx, gy).
func (m *Model) IsOccupied(gx, gy int) bool {
	_, ok := m.occupied[MakeKey(gx, gy)]
	return ok
}

// IDAt returns the id of the cell at (gx, gy), if any.
func (m *Model) IDAt(gx, gy int) (ID, bool) {
	id, ok := m.occupied[MakeKey(gx, gy)]
	return id, ok
}

// Cell returns the cell with the given id.
func (m *Model) Cell(id ID) (Cell, bool) {
	c, ok := m.cells[id]
	return c, ok
}

// Cells returns all live cells. Order is unspecified.
func (m *Model) Cells() []Cell {
	out := make([]Cell, 0, len(m.cells))
	for _, c := range m.cells {
		out = append(out, c)
	}
	return out
}

// Count returns the number of live cells.
func (m *Model) Count() int {
	return len(m.cells)
}

// RemoveCell deletes the cell with the given id from both maps. It returns
// false when the id is unknown.
func (m *Model) RemoveCell(id ID) bool {
	c, ok := m.cells[id]
	if !ok {
		return false
	}
	delete(m.cells, id)
	delete(m.occupied, MakeKey(c.GX, c.GY))
	return true
}

// Bounds recomputes the bounding box of all live cells from scratch.
// Removal can shrink bounds non-locally, so no incremental cache is kept.
// ok is false iff the grid is empty.
func (m *Model) Bounds() (Bounds, bool) {
	if len(m.cells) == 0 {
		return Bounds{}, false
	}
	first := true
	var b Bounds
	for _, c := range m.cells {
		if first {
			b = Bounds{MinGX: c.GX, MaxGX: c.GX, MinGY: c.GY, MaxGY: c.GY}
			first = false
			continue
		}
		if c.GX < b.MinGX {
			b.MinGX = c.GX
		}
		if c.GX > b.MaxGX {
			b.MaxGX = c.GX
		}
		if c.GY < b.MinGY {
			b.MinGY = c.GY
		}
		if c.GY > b.MaxGY {
			b.MaxGY = c.GY
		}
	}
	return b, true
}

// Clear empties the grid.
func (m *Model) Clear() {
	m.cells = make(map[ID]Cell)
	m.occupied = make(map[Key]ID)
}

// Keys returns a snapshot copy of the current occupancy set.
func (m *Model) Keys() KeySet {
	out := make(KeySet, len(m.occupied))
	for k := range m.occupied {
		out[k] = struct{}{}
	}
	return out
}

// SetFromKeys replaces the entire occupancy with the given set. Every cell
// is reassigned a fresh identity, including cells whose coordinate is
// unchanged across the swap. Keys that fail to decode are skipped.
func (m *Model) SetFromKeys(keys KeySet) {
	m.Clear()
	for k := range keys {
		gx, gy, ok := k.Coords()
		if !ok {
			continue
		}
		m.AddCellAt(gx, gy)
	}
}
