package camera

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Zoom limits for the canvas view.
const (
	ZoomMin = 0.25
	ZoomMax = 8.0
)

const (
	// freeRadiusFrac is the fraction of the half-viewport (in world units)
	// the camera may drift from the content center before rubber-banding.
	freeRadiusFrac = 0.25
	// rubberConstant compresses motion past the free radius. Applied per
	// pan event, so repeated drags compress cumulatively.
	rubberConstant = 0.9

	springStiffness = 60.0
	springDamping   = 15.5 // ~2*sqrt(stiffness), close to critical

	settleDistance = 0.5
	settleSpeed    = 0.5
)

// Camera is a continuous 2D view transform: a world-space focus point and a
// scale factor. Scale is always within [ZoomMin, ZoomMax].
type Camera struct {
	Center cp.Vector
	Scale  float64
}

// New creates a camera centered on the given world point at the given zoom.
func New(center cp.Vector, scale float64) *Camera {
	return &Camera{Center: center, Scale: clampZoom(scale)}
}

func clampZoom(s float64) float64 {
	if s < ZoomMin {
		return ZoomMin
	}
	if s > ZoomMax {
		return ZoomMax
	}
	return s
}

// Reset snaps the camera to a world point and zoom with no animation.
func (c *Camera) Reset(center cp.Vector, scale float64) {
	c.Center = center
	c.Scale = clampZoom(scale)
}

// WorldToScreen maps a world point to screen coordinates for the given
// viewport size (camera-centered projection).
func (c *Camera) WorldToScreen(w cp.Vector, screenW, screenH float64) cp.Vector {
	return cp.Vector{
		X: (w.X-c.Center.X)*c.Scale + screenW/2,
		Y: (w.Y-c.Center.Y)*c.Scale + screenH/2,
	}
}

// ScreenToWorld maps a screen point to world coordinates for the given
// viewport size.
func (c *Camera) ScreenToWorld(s cp.Vector, screenW, screenH float64) cp.Vector {
	return cp.Vector{
		X: c.Center.X + (s.X-screenW/2)/c.Scale,
		Y: c.Center.Y + (s.Y-screenH/2)/c.Scale,
	}
}

// PanWithRubber moves the camera by a screen-space drag delta. Within a free
// radius of the target center the camera moves 1:1 (in world units); past it
// the offset is compressed per axis so the view resists drifting away from
// the content without ever hard-clamping.
func (c *Camera) PanWithRubber(dScreenX, dScreenY, screenW, screenH float64, target cp.Vector) {
	raw := cp.Vector{
		X: c.Center.X - dScreenX/c.Scale,
		Y: c.Center.Y - dScreenY/c.Scale,
	}
	freeX := freeRadiusFrac * (screenW / 2) / c.Scale
	freeY := freeRadiusFrac * (screenH / 2) / c.Scale
	c.Center.X = target.X + rubberAxis(raw.X-target.X, freeX)
	c.Center.Y = target.Y + rubberAxis(raw.Y-target.Y, freeY)
}

func rubberAxis(offset, free float64) float64 {
	mag := math.Abs(offset)
	if mag <= free {
		return offset
	}
	compressed := free + (mag-free)*rubberConstant
	return math.Copysign(compressed, offset)
}

// ZoomAboutScreenPoint multiplies the scale by factor, clamped to the zoom
// limits, then recenters so the world point under (sx, sy) stays under it.
func (c *Camera) ZoomAboutScreenPoint(sx, sy, factor, screenW, screenH float64) {
	anchor := c.ScreenToWorld(cp.Vector{X: sx, Y: sy}, screenW, screenH)
	c.Scale = clampZoom(c.Scale * factor)
	c.Center.X = anchor.X - (sx-screenW/2)/c.Scale
	c.Center.Y = anchor.Y - (sy-screenH/2)/c.Scale
}

// AdvanceSpring integrates one damped-spring step toward target. It returns
// true once both the distance to target and the speed fall under the settle
// thresholds; the caller is then responsible for snapping exactly to target
// and zeroing the velocity.
func (c *Camera) AdvanceSpring(vel *cp.Vector, target cp.Vector, dt float64) bool {
	ax := -springStiffness*(c.Center.X-target.X) - springDamping*vel.X
	ay := -springStiffness*(c.Center.Y-target.Y) - springDamping*vel.Y
	vel.X += ax * dt
	vel.Y += ay * dt
	c.Center.X += vel.X * dt
	c.Center.Y += vel.Y * dt
	return c.Center.Distance(target) < settleDistance && vel.Length() < settleSpeed
}
