package camera

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestZoomAboutScreenPointKeepsAnchor(t *testing.T) {
	cases := []struct {
		name   string
		start  Camera
		sx, sy float64
		factor float64
	}{
		{"zoom_in_center", Camera{Center: cp.Vector{X: 10, Y: -4}, Scale: 1}, 400, 300, 1.1},
		{"zoom_in_corner", Camera{Center: cp.Vector{}, Scale: 1}, 0, 0, 2.0},
		{"zoom_out", Camera{Center: cp.Vector{X: -50, Y: 20}, Scale: 4}, 123, 456, 1 / 1.1},
	}

	const w, h = 800.0, 600.0
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := c.start
			before := cam.ScreenToWorld(cp.Vector{X: c.sx, Y: c.sy}, w, h)
			cam.ZoomAboutScreenPoint(c.sx, c.sy, c.factor, w, h)
			after := cam.ScreenToWorld(cp.Vector{X: c.sx, Y: c.sy}, w, h)
			if before.Distance(after) > 1e-9 {
				t.Fatalf("anchor moved: before=%v after=%v", before, after)
			}
		})
	}
}

func TestZoomClamped(t *testing.T) {
	cam := Camera{Scale: 1}
	for i := 0; i < 100; i++ {
		cam.ZoomAboutScreenPoint(400, 300, 2.0, 800, 600)
	}
	if cam.Scale != ZoomMax {
		t.Fatalf("expected scale clamped at %v, got %v", ZoomMax, cam.Scale)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomAboutScreenPoint(400, 300, 0.5, 800, 600)
	}
	if cam.Scale != ZoomMin {
		t.Fatalf("expected scale clamped at %v, got %v", ZoomMin, cam.Scale)
	}
}

func TestWorldScreenRoundTrip(t *testing.T) {
	cam := Camera{Center: cp.Vector{X: 33, Y: -17}, Scale: 2.5}
	pts := []cp.Vector{{X: 0, Y: 0}, {X: 100, Y: 200}, {X: -55.5, Y: 7.25}}
	for _, p := range pts {
		s := cam.WorldToScreen(p, 800, 600)
		back := cam.ScreenToWorld(s, 800, 600)
		if p.Distance(back) > 1e-9 {
			t.Fatalf("round trip failed for %v: got %v", p, back)
		}
	}
}

func TestPanWithRubberFreeInsideRadius(t *testing.T) {
	cam := Camera{Center: cp.Vector{}, Scale: 1}
	target := cp.Vector{}
	// half-viewport is 400 world units, free radius 100; a 50px drag stays free
	cam.PanWithRubber(-50, 0, 800, 600, target)
	if math.Abs(cam.Center.X-50) > 1e-9 {
		t.Fatalf("expected free pan of 50 world units, got %v", cam.Center.X)
	}
}

func TestPanWithRubberCompressesPastRadius(t *testing.T) {
	cam := Camera{Center: cp.Vector{}, Scale: 1}
	target := cp.Vector{}
	// raw offset 200 past free radius 100: 100 + (200-100)*0.9 = 190
	cam.PanWithRubber(-200, 0, 800, 600, target)
	if math.Abs(cam.Center.X-190) > 1e-9 {
		t.Fatalf("expected compressed offset 190, got %v", cam.Center.X)
	}
	// symmetric for the negative direction on Y (free radius 75)
	cam = Camera{Center: cp.Vector{}, Scale: 1}
	cam.PanWithRubber(0, 150, 800, 600, target)
	want := -(75 + (150-75)*0.9)
	if math.Abs(cam.Center.Y-want) > 1e-9 {
		t.Fatalf("expected compressed offset %v, got %v", want, cam.Center.Y)
	}
}

func TestAdvanceSpringConverges(t *testing.T) {
	starts := []cp.Vector{{X: 500, Y: -300}, {X: 1, Y: 1}, {X: -2000, Y: 0}}
	target := cp.Vector{X: 10, Y: 10}

	for _, start := range starts {
		cam := Camera{Center: start, Scale: 1}
		vel := cp.Vector{}
		done := false
		for i := 0; i < 10000; i++ {
			if cam.AdvanceSpring(&vel, target, 1.0/60.0) {
				done = true
				break
			}
			if math.IsNaN(cam.Center.X) || cam.Center.Distance(target) > 1e7 {
				t.Fatalf("spring diverged from start %v: center=%v", start, cam.Center)
			}
		}
		if !done {
			t.Fatalf("spring never settled from start %v (ended at %v)", start, cam.Center)
		}
		if cam.Center.Distance(target) >= settleDistance {
			t.Fatalf("settled too far from target: %v", cam.Center)
		}
	}
}

func TestControllerGestureStateMachine(t *testing.T) {
	cam := New(cp.Vector{}, 1)
	ctl := NewController(cam)
	target := cp.Vector{}

	ctl.BeginDrag()
	if !ctl.Dragging() {
		t.Fatalf("expected dragging after BeginDrag")
	}
	ctl.Drag(-30, 0, 800, 600, target)
	if cam.Center.X == 0 {
		t.Fatalf("drag did not move camera")
	}
	// spring must not run mid-drag
	moved := cam.Center
	ctl.Step(target, 1.0/60.0)
	if cam.Center != moved {
		t.Fatalf("spring advanced while dragging")
	}

	ctl.EndDrag()
	if ctl.Dragging() || !ctl.SpringActive() {
		t.Fatalf("expected spring-back engaged on release")
	}
	for i := 0; i < 10000 && ctl.SpringActive(); i++ {
		ctl.Step(target, 1.0/60.0)
	}
	if ctl.SpringActive() {
		t.Fatalf("spring never settled")
	}
	if cam.Center != target {
		t.Fatalf("expected exact snap to target, got %v", cam.Center)
	}
}

func TestControllerPinchExcludesPan(t *testing.T) {
	cam := New(cp.Vector{}, 1)
	ctl := NewController(cam)

	ctl.SetPinchActive(true)
	ctl.BeginDrag()
	if ctl.Dragging() {
		t.Fatalf("pan must be gated while pinch is active")
	}
	ctl.Drag(-30, 0, 800, 600, cp.Vector{})
	if cam.Center.X != 0 {
		t.Fatalf("camera moved during gated pan")
	}
	ctl.SetPinchActive(false)
	if !ctl.SpringActive() {
		t.Fatalf("expected spring-back after pinch ends")
	}
}
