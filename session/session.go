package session

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/shelfgrid/camera"
	"github.com/milk9111/shelfgrid/grid"
	"github.com/milk9111/shelfgrid/history"
	"github.com/milk9111/shelfgrid/selection"
)

// CellSize is the world-space pixel size of one grid cell.
const CellSize = 32.0

// confirmThreshold is the largest deletion applied without confirmation.
const confirmThreshold = 20

// Renderer is the rendering collaborator. Given the current occupancy it
// produces whatever visual representation it wants and reports an
// edge/diagnostic error count back to the session.
type Renderer interface {
	Rebuild(cells []grid.Cell) int
}

// Callbacks are invoked synchronously after the relevant state change. Any
// field may be nil.
type Callbacks struct {
	OnCamera        func(x, y, zoom float64)
	OnCellCount     func(n int)
	OnMultiCount    func(n int)
	OnHistory       func(canUndo, canRedo bool)
	OnDeleteBlocked func(reason string)
	// OnConfirmDelete stages a destructive batch deletion of n cells. The
	// receiver must eventually call perform to commit, or drop it to cancel.
	OnConfirmDelete func(n int, perform func())
}

// Options configure a session at start.
type Options struct {
	EditMode   bool
	SafeDelete bool
	// Debug enables development-only consistency logging.
	Debug bool
	// Clock overrides the double-tap clock source. Nil means time.Now.
	Clock func() time.Time
}

// Session composes the grid model, history log, selection controller and
// camera into the editing engine consumed by the UI shell.
type Session struct {
	grid *grid.Model
	hist *history.Log
	sel  *selection.Controller
	taps *selection.TapTracker
	cam  *camera.Controller

	renderer Renderer
	cb       Callbacks

	editMode   bool
	safeDelete bool
	debug      bool

	screenW float64
	screenH float64

	edgeErrors     int
	lastMultiCount int
}

// New creates a session seeded with a single cell at the origin and a
// camera centered on it.
func New(renderer Renderer, cb Callbacks, opts Options) *Session {
	s := &Session{
		grid:       grid.NewModelWithOrigin(),
		hist:       history.NewLog(),
		sel:        selection.NewController(),
		taps:       selection.NewTapTracker(opts.Clock),
		renderer:   renderer,
		cb:         cb,
		editMode:   opts.EditMode,
		safeDelete: opts.SafeDelete,
		debug:      opts.Debug,
		screenW:    800,
		screenH:    600,
	}
	s.cam = camera.NewController(camera.New(s.contentCenter(), 1))
	s.rebuild()
	return s
}

// SetViewport updates the logical screen size used for camera math.
func (s *Session) SetViewport(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	s.screenW = w
	s.screenH = h
}

// EditMode reports whether mutations are currently allowed.
func (s *Session) EditMode() bool { return s.editMode }

// SetEditMode switches between edit and view mode. Pure selection stays
// live in both; mutations are gated to edit mode.
func (s *Session) SetEditMode(edit bool) { s.editMode = edit }

// CellCount returns the number of occupied cells.
func (s *Session) CellCount() int { return s.grid.Count() }

// Cells returns all live cells.
func (s *Session) Cells() []grid.Cell { return s.grid.Cells() }

// IsOccupied reports occupancy at a grid coordinate.
func (s *Session) IsOccupied(gx, gy int) bool { return s.grid.IsOccupied(gx, gy) }

// CanUndo reports whether an undo is available.
func (s *Session) CanUndo() bool { return s.hist.CanUndo() }

// CanRedo reports whether a redo is available.
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

// EdgeErrors returns the diagnostic count reported by the rendering
// collaborator on its last rebuild.
func (s *Session) EdgeErrors() int { return s.edgeErrors }

// Selected returns the single-selected cell id, if any.
func (s *Session) Selected() (grid.ID, bool) { return s.sel.Selected() }

// MultiSelected returns the multi-selection key set. Callers must not
// mutate it.
func (s *Session) MultiSelected() grid.KeySet { return s.sel.Multi() }

// Marquee returns the active marquee rectangle in world coordinates.
func (s *Session) Marquee() (selection.Rect, bool) { return s.sel.Marquee() }

// Camera returns the current camera state.
func (s *Session) Camera() *camera.Camera { return s.cam.Cam }

// contentCenter is the world-space center of the occupied bounding box,
// recomputed from live bounds. Empty grids center on the origin cell slot.
func (s *Session) contentCenter() cp.Vector {
	b, ok := s.grid.Bounds()
	if !ok {
		return cp.Vector{X: CellSize / 2, Y: CellSize / 2}
	}
	return cp.Vector{
		X: (float64(b.MinGX) + float64(b.MaxGX) + 1) / 2 * CellSize,
		Y: (float64(b.MinGY) + float64(b.MaxGY) + 1) / 2 * CellSize,
	}
}

// rebuild hands the current occupancy to the rendering collaborator and
// stores its diagnostic count.
func (s *Session) rebuild() {
	if s.renderer == nil {
		return
	}
	s.edgeErrors = s.renderer.Rebuild(s.grid.Cells())
}

func (s *Session) notifyCellCount() {
	if s.cb.OnCellCount != nil {
		s.cb.OnCellCount(s.grid.Count())
	}
}

func (s *Session) notifyHistory() {
	if s.cb.OnHistory != nil {
		s.cb.OnHistory(s.hist.CanUndo(), s.hist.CanRedo())
	}
}

func (s *Session) notifyMultiCount() {
	n := s.sel.MultiCount()
	if n == s.lastMultiCount {
		return
	}
	s.lastMultiCount = n
	if s.cb.OnMultiCount != nil {
		s.cb.OnMultiCount(n)
	}
}

func (s *Session) notifyCamera() {
	if s.cb.OnCamera != nil {
		cam := s.cam.Cam
		s.cb.OnCamera(cam.Center.X, cam.Center.Y, cam.Scale)
	}
}
