package macro

import (
	"testing"

	"github.com/milk9111/shelfgrid/grid"
	"github.com/milk9111/shelfgrid/session"
)

type nopRenderer struct{}

func (nopRenderer) Rebuild(cells []grid.Cell) int { return 0 }

func newSession() *session.Session {
	return session.New(nopRenderer{}, session.Callbacks{}, session.Options{
		EditMode:   true,
		SafeDelete: true,
	})
}

func TestRunBuildsRow(t *testing.T) {
	s := newSession()
	r := NewRunner(s)

	src := `
for i := 1; i <= 4; i++ {
	shelf.add(i, 0)
}
`
	if err := r.Run([]byte(src)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if s.CellCount() != 5 {
		t.Fatalf("expected 5 cells, got %d", s.CellCount())
	}
	for i := 0; i <= 4; i++ {
		if !s.IsOccupied(i, 0) {
			t.Fatalf("expected (%d,0) occupied", i)
		}
	}
}

func TestRunRespectsSafeDelete(t *testing.T) {
	s := newSession()
	r := NewRunner(s)

	src := `
shelf.add(1, 0)
shelf.add(2, 0)
blocked := !shelf.remove(1, 0)
removed := shelf.remove(2, 0)
`
	if err := r.Run([]byte(src)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !s.IsOccupied(1, 0) {
		t.Fatalf("disconnecting remove must stay blocked through the macro API")
	}
	if s.IsOccupied(2, 0) {
		t.Fatalf("end-cell remove should succeed through the macro API")
	}
}

func TestRunUndoRedo(t *testing.T) {
	s := newSession()
	r := NewRunner(s)

	src := `
shelf.add(1, 0)
shelf.undo()
after_undo := shelf.count()
shelf.redo()
`
	if err := r.Run([]byte(src)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if s.CellCount() != 2 {
		t.Fatalf("expected redo to restore 2 cells, got %d", s.CellCount())
	}
}

func TestRunToggleAndOccupied(t *testing.T) {
	s := newSession()
	r := NewRunner(s)

	src := `
shelf.toggle(0, 1)
was := shelf.occupied(0, 1)
shelf.toggle(0, 1)
`
	if err := r.Run([]byte(src)); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if s.IsOccupied(0, 1) {
		t.Fatalf("second toggle should remove the cell")
	}
}

func TestRunCompileError(t *testing.T) {
	s := newSession()
	r := NewRunner(s)
	if err := r.Run([]byte(`shelf.add(`)); err == nil {
		t.Fatalf("expected a compile error")
	}
}
