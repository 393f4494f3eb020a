package history

import (
	"strconv"
	"testing"

	"github.com/milk9111/shelfgrid/grid"
)

func set(coords ...[2]int) grid.KeySet {
	s := make(grid.KeySet, len(coords))
	for _, p := range coords {
		s[grid.MakeKey(p[0], p[1])] = struct{}{}
	}
	return s
}

func TestRecordSuppressesNoOps(t *testing.T) {
	l := NewLog()
	if l.Record(ActionAdd, set([2]int{0, 0}), set([2]int{0, 0})) {
		t.Fatalf("identical before/after must not record")
	}
	if l.CanUndo() {
		t.Fatalf("no-op record must not enable undo")
	}
	if !l.Record(ActionAdd, set([2]int{0, 0}), set([2]int{0, 0}, [2]int{1, 0})) {
		t.Fatalf("effective mutation should record")
	}
	if !l.CanUndo() {
		t.Fatalf("expected CanUndo after effective record")
	}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	before := set([2]int{0, 0})
	after := set([2]int{0, 0}, [2]int{1, 0})

	l := NewLog()
	l.Record(ActionAdd, before, after)

	a, ok := l.Undo()
	if !ok {
		t.Fatalf("expected undo to succeed")
	}
	if !a.Before.Equal(before) || !a.After.Equal(after) {
		t.Fatalf("undo returned wrong snapshots")
	}
	if l.CanUndo() || !l.CanRedo() {
		t.Fatalf("stacks wrong after undo: canUndo=%v canRedo=%v", l.CanUndo(), l.CanRedo())
	}

	a, ok = l.Redo()
	if !ok || !a.After.Equal(after) {
		t.Fatalf("expected redo to return the same action")
	}
	if !l.CanUndo() || l.CanRedo() {
		t.Fatalf("stacks wrong after redo: canUndo=%v canRedo=%v", l.CanUndo(), l.CanRedo())
	}
}

func TestRecordClearsRedo(t *testing.T) {
	l := NewLog()
	l.Record(ActionAdd, set(), set([2]int{0, 0}))
	l.Record(ActionAdd, set([2]int{0, 0}), set([2]int{0, 0}, [2]int{1, 0}))
	if _, ok := l.Undo(); !ok {
		t.Fatalf("undo failed")
	}
	if !l.CanRedo() {
		t.Fatalf("expected redo available after undo")
	}
	l.Record(ActionRemove, set([2]int{0, 0}), set())
	if l.CanRedo() {
		t.Fatalf("new record must clear the redo stack")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	l := NewLog()
	prev := set()
	for i := 0; i < maxEntries+10; i++ {
		next := prev.Clone()
		next[grid.Key(strconv.Itoa(i)+",0")] = struct{}{}
		l.Record(ActionAdd, prev, next)
		prev = next
	}

	// drain the undo stack; only the newest maxEntries survive
	n := 0
	var last Action
	for {
		a, ok := l.Undo()
		if !ok {
			break
		}
		last = a
		n++
	}
	if n != maxEntries {
		t.Fatalf("expected %d undoable actions, got %d", maxEntries, n)
	}
	// the oldest surviving action is entry 10 (entries 0..9 were evicted)
	if len(last.Before) != 10 {
		t.Fatalf("expected oldest surviving action to have 10 keys in Before, got %d", len(last.Before))
	}
}

func TestActionTypeString(t *testing.T) {
	cases := map[ActionType]string{
		ActionAdd:      "add",
		ActionRemove:   "remove",
		ActionBatch:    "batch",
		ActionClear:    "clear",
		ActionType(42): "unknown",
	}
	for typ, want := range cases {
		if typ.String() != want {
			t.Fatalf("String(%d) = %q, want %q", typ, typ.String(), want)
		}
	}
}
