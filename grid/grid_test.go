package grid

import "testing"

func TestAddCellAtUniqueness(t *testing.T) {
	cases := []struct {
		name string
		adds [][2]int
		want int
	}{
		{"distinct", [][2]int{{0, 0}, {1, 0}, {0, 1}}, 3},
		{"duplicate_rejected", [][2]int{{0, 0}, {0, 0}, {0, 0}}, 1},
		{"negative_coords", [][2]int{{-3, -7}, {-3, -7}, {3, 7}}, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewModel()
			for _, p := range c.adds {
				m.AddCellAt(p[0], p[1])
			}
			if m.Count() != c.want {
				t.Fatalf("expected %d cells, got %d", c.want, m.Count())
			}
			seen := map[Key]bool{}
			for _, cell := range m.Cells() {
				k := MakeKey(cell.GX, cell.GY)
				if seen[k] {
					t.Fatalf("two live cells share coordinate %s", k)
				}
				seen[k] = true
			}
		})
	}
}

func TestAddCellAtFailureHasNoSideEffect(t *testing.T) {
	m := NewModel()
	id, ok := m.AddCellAt(2, 3)
	if !ok {
		t.Fatalf("first add should succeed")
	}
	if _, ok := m.AddCellAt(2, 3); ok {
		t.Fatalf("second add at same coordinate should fail")
	}
	if m.Count() != 1 {
		t.Fatalf("failed add must not change count, got %d", m.Count())
	}
	got, ok := m.IDAt(2, 3)
	if !ok || got != id {
		t.Fatalf("occupant changed after failed add: got %d want %d", got, id)
	}
}

func TestRemoveCell(t *testing.T) {
	m := NewModel()
	id, _ := m.AddCellAt(1, 1)

	if m.RemoveCell(ID(9999)) {
		t.Fatalf("removing unknown id should return false")
	}
	if !m.RemoveCell(id) {
		t.Fatalf("removing live id should return true")
	}
	if m.IsOccupied(1, 1) {
		t.Fatalf("coordinate still occupied after remove")
	}
	if _, ok := m.Cell(id); ok {
		t.Fatalf("cell still reachable by id after remove")
	}
	if m.RemoveCell(id) {
		t.Fatalf("double remove should return false")
	}
}

func TestBounds(t *testing.T) {
	cases := []struct {
		name   string
		adds   [][2]int
		remove *[2]int // coordinate to remove, nil = none
		want   Bounds
		empty  bool
	}{
		{"empty", nil, nil, Bounds{}, true},
		{"single", [][2]int{{4, -2}}, nil, Bounds{4, 4, -2, -2}, false},
		{"spread", [][2]int{{0, 0}, {5, 3}, {-2, 7}}, nil, Bounds{-2, 5, 0, 7}, false},
		{"shrinks_after_remove", [][2]int{{0, 0}, {10, 0}}, &[2]int{10, 0}, Bounds{0, 0, 0, 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := NewModel()
			for _, p := range c.adds {
				m.AddCellAt(p[0], p[1])
			}
			if c.remove != nil {
				id, ok := m.IDAt(c.remove[0], c.remove[1])
				if !ok {
					t.Fatalf("missing cell to remove")
				}
				m.RemoveCell(id)
			}
			b, ok := m.Bounds()
			if c.empty {
				if ok {
					t.Fatalf("expected no bounds for empty grid")
				}
				return
			}
			if !ok || b != c.want {
				t.Fatalf("bounds = %+v ok=%v, want %+v", b, ok, c.want)
			}
		})
	}
}

func TestSetFromKeysReassignsIdentity(t *testing.T) {
	m := NewModel()
	oldID, _ := m.AddCellAt(0, 0)
	m.AddCellAt(1, 0)

	keys := m.Keys()
	m.SetFromKeys(keys)

	if m.Count() != 2 {
		t.Fatalf("expected 2 cells after restore, got %d", m.Count())
	}
	if !m.Keys().Equal(keys) {
		t.Fatalf("occupancy changed across restore")
	}
	// identities are always fresh, even for unchanged coordinates
	newID, ok := m.IDAt(0, 0)
	if !ok {
		t.Fatalf("cell at origin missing after restore")
	}
	if newID == oldID {
		t.Fatalf("expected a fresh id after restore, got reused id %d", newID)
	}
}

func TestKeyRoundTrip(t *testing.T) {
	coords := [][2]int{{0, 0}, {-1, 5}, {123, -456}, {-7, -7}}
	for _, p := range coords {
		k := MakeKey(p[0], p[1])
		gx, gy, ok := k.Coords()
		if !ok || gx != p[0] || gy != p[1] {
			t.Fatalf("round trip failed for %v: got (%d,%d) ok=%v", p, gx, gy, ok)
		}
	}
	if _, _, ok := Key("garbage").Coords(); ok {
		t.Fatalf("expected decode failure for malformed key")
	}
}

func TestConnected(t *testing.T) {
	set := func(coords ...[2]int) KeySet {
		s := make(KeySet, len(coords))
		for _, p := range coords {
			s[MakeKey(p[0], p[1])] = struct{}{}
		}
		return s
	}

	cases := []struct {
		name string
		keys KeySet
		want bool
	}{
		{"empty", set(), true},
		{"single", set([2]int{3, 3}), true},
		{"row", set([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}), true},
		{"gap", set([2]int{0, 0}, [2]int{2, 0}), false},
		{"diagonal_not_adjacent", set([2]int{0, 0}, [2]int{1, 1}), false},
		{"l_shape", set([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}), true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Connected(c.keys); got != c.want {
				t.Fatalf("Connected = %v, want %v", got, c.want)
			}
		})
	}
}
