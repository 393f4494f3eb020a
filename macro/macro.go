// Package macro runs tengo scripts against an edit session for batch grid
// edits: seeding layouts, scripted cleanup, reproducing editing sequences.
package macro

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/shelfgrid/session"
)

// Runner binds a session to the script environment.
type Runner struct {
	session *session.Session
}

// NewRunner creates a runner for the given session.
func NewRunner(s *session.Session) *Runner {
	return &Runner{session: s}
}

// Run compiles and executes a macro. The script sees a `shelf` object with
// add, remove, toggle, occupied, count, undo, redo and clear functions, each
// mapped onto the session's mutation and query APIs.
func (r *Runner) Run(src []byte) error {
	script := tengo.NewScript(src)
	if err := script.Add("shelf", r.engine()); err != nil {
		return fmt.Errorf("macro: bind shelf object: %w", err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("macro: compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("macro: run: %w", err)
	}
	return nil
}

func intArg(args []tengo.Object, i int) (int, bool) {
	if i >= len(args) {
		return 0, false
	}
	return tengo.ToInt(args[i])
}

func boolObj(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func (r *Runner) engine() *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["add"] = &tengo.UserFunction{Name: "add", Value: func(args ...tengo.Object) (tengo.Object, error) {
		gx, okX := intArg(args, 0)
		gy, okY := intArg(args, 1)
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		return boolObj(r.session.AddCellAt(gx, gy)), nil
	}}

	values["remove"] = &tengo.UserFunction{Name: "remove", Value: func(args ...tengo.Object) (tengo.Object, error) {
		gx, okX := intArg(args, 0)
		gy, okY := intArg(args, 1)
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		for _, c := range r.session.Cells() {
			if c.GX == gx && c.GY == gy {
				return boolObj(r.session.RemoveCell(c.ID)), nil
			}
		}
		return tengo.FalseValue, nil
	}}

	values["toggle"] = &tengo.UserFunction{Name: "toggle", Value: func(args ...tengo.Object) (tengo.Object, error) {
		gx, okX := intArg(args, 0)
		gy, okY := intArg(args, 1)
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		if r.session.IsOccupied(gx, gy) {
			for _, c := range r.session.Cells() {
				if c.GX == gx && c.GY == gy {
					return boolObj(r.session.RemoveCell(c.ID)), nil
				}
			}
			return tengo.FalseValue, nil
		}
		return boolObj(r.session.AddCellAt(gx, gy)), nil
	}}

	values["occupied"] = &tengo.UserFunction{Name: "occupied", Value: func(args ...tengo.Object) (tengo.Object, error) {
		gx, okX := intArg(args, 0)
		gy, okY := intArg(args, 1)
		if !okX || !okY {
			return tengo.FalseValue, nil
		}
		return boolObj(r.session.IsOccupied(gx, gy)), nil
	}}

	values["count"] = &tengo.UserFunction{Name: "count", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(r.session.CellCount())}, nil
	}}

	values["undo"] = &tengo.UserFunction{Name: "undo", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObj(r.session.Undo()), nil
	}}

	values["redo"] = &tengo.UserFunction{Name: "redo", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return boolObj(r.session.Redo()), nil
	}}

	values["clear"] = &tengo.UserFunction{Name: "clear", Value: func(args ...tengo.Object) (tengo.Object, error) {
		r.session.Clear()
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}
