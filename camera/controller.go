package camera

import "github.com/jakecoffman/cp"

// Controller drives the per-gesture state machine around a Camera:
// idle -> dragging -> spring-back -> idle. A pinch gesture excludes
// single-pointer panning, and wheel zoom bypasses the state machine
// entirely (instantaneous, no animation).
type Controller struct {
	Cam *Camera

	dragging     bool
	pinchActive  bool
	springActive bool
	velocity     cp.Vector
}

// NewController wraps a camera with gesture state.
func NewController(cam *Camera) *Controller {
	return &Controller{Cam: cam}
}

// Dragging reports whether a single-pointer pan is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// PinchActive reports whether a pinch gesture is in progress.
func (c *Controller) PinchActive() bool { return c.pinchActive }

// SpringActive reports whether the camera is animating back to center.
func (c *Controller) SpringActive() bool { return c.springActive }

// BeginDrag enters the dragging state. Ignored while a pinch is active.
func (c *Controller) BeginDrag() {
	if c.pinchActive {
		return
	}
	c.dragging = true
	c.springActive = false
	c.velocity = cp.Vector{}
}

// Drag applies a pan delta while dragging.
func (c *Controller) Drag(dsx, dsy, screenW, screenH float64, target cp.Vector) {
	if !c.dragging || c.pinchActive {
		return
	}
	c.Cam.PanWithRubber(dsx, dsy, screenW, screenH, target)
}

// EndDrag leaves the dragging state and engages spring-back toward the
// content center. Spring-back fires only on release, never mid-drag.
func (c *Controller) EndDrag() {
	if !c.dragging {
		return
	}
	c.dragging = false
	c.springActive = true
	c.velocity = cp.Vector{}
}

// SetPinchActive toggles the pinch gate. Starting a pinch cancels any
// single-pointer drag; ending one engages spring-back.
func (c *Controller) SetPinchActive(active bool) {
	if active == c.pinchActive {
		return
	}
	c.pinchActive = active
	if active {
		c.dragging = false
		c.springActive = false
	} else {
		c.springActive = true
		c.velocity = cp.Vector{}
	}
}

// Step advances the spring-back animation by dt seconds toward target. The
// target is recomputed by the caller each tick since content bounds can
// change between releases. No-op while dragging or pinching.
func (c *Controller) Step(target cp.Vector, dt float64) {
	if !c.springActive || c.dragging || c.pinchActive {
		return
	}
	if dt <= 0 {
		return
	}
	if c.Cam.AdvanceSpring(&c.velocity, target, dt) {
		c.Cam.Center = target
		c.velocity = cp.Vector{}
		c.springActive = false
	}
}
