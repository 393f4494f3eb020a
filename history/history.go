package history

import "github.com/milk9111/shelfgrid/grid"

// ActionType classifies what kind of edit produced a snapshot pair.
type ActionType int

const (
	ActionAdd ActionType = iota
	ActionRemove
	ActionBatch
	ActionClear
)

func (t ActionType) String() string {
	switch t {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionBatch:
		return "batch"
	case ActionClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Action is one undoable edit, stored as full before/after occupancy
// snapshots. Immutable once recorded.
type Action struct {
	Type   ActionType
	Before grid.KeySet
	After  grid.KeySet
}

// maxEntries bounds the undo stack. Oldest entries are evicted first.
const maxEntries = 100

// Log holds the undo and redo stacks.
type Log struct {
	undo []Action
	redo []Action
}

// NewLog creates an empty history log.
func NewLog() *Log {
	return &Log{}
}

// Record pushes a new action. A mutation whose before and after sets are
// equal is a no-op and is not recorded. Recording clears the redo stack.
func (l *Log) Record(t ActionType, before, after grid.KeySet) bool {
	if before.Equal(after) {
		return false
	}
	l.redo = l.redo[:0]
	l.undo = append(l.undo, Action{Type: t, Before: before.Clone(), After: after.Clone()})
	if len(l.undo) > maxEntries {
		l.undo = l.undo[1:]
	}
	return true
}

// Undo pops the most recent action onto the redo stack and returns it.
// The caller restores occupancy to the action's Before set.
func (l *Log) Undo() (Action, bool) {
	if len(l.undo) == 0 {
		return Action{}, false
	}
	a := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	l.redo = append(l.redo, a)
	return a, true
}

// Redo pops the most recently undone action back onto the undo stack and
// returns it. The caller restores occupancy to the action's After set.
func (l *Log) Redo() (Action, bool) {
	if len(l.redo) == 0 {
		return Action{}, false
	}
	a := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	l.undo = append(l.undo, a)
	return a, true
}

// CanUndo reports whether the undo stack is non-empty.
func (l *Log) CanUndo() bool { return len(l.undo) > 0 }

// CanRedo reports whether the redo stack is non-empty.
func (l *Log) CanRedo() bool { return len(l.redo) > 0 }
