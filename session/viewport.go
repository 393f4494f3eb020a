package session

// WheelZoomFactor is the per-notch zoom step for wheel input.
const WheelZoomFactor = 1.1

// PanBegin enters the camera drag state.
func (s *Session) PanBegin() {
	s.cam.BeginDrag()
}

// PanMove applies a screen-space drag delta with rubber-banding against the
// content center.
func (s *Session) PanMove(dsx, dsy float64) {
	s.cam.Drag(dsx, dsy, s.screenW, s.screenH, s.contentCenter())
	s.notifyCamera()
}

// PanEnd releases the drag and engages spring-back toward content center.
func (s *Session) PanEnd() {
	s.cam.EndDrag()
}

// WheelZoom applies an instantaneous zoom step about the cursor. Positive
// dy zooms in.
func (s *Session) WheelZoom(sx, sy, dy float64) {
	if dy == 0 {
		return
	}
	factor := WheelZoomFactor
	if dy < 0 {
		factor = 1 / WheelZoomFactor
	}
	s.cam.Cam.ZoomAboutScreenPoint(sx, sy, factor, s.screenW, s.screenH)
	s.notifyCamera()
}

// PinchBegin marks a two-pointer gesture as active, gating single-pointer
// panning.
func (s *Session) PinchBegin() {
	s.cam.SetPinchActive(true)
}

// PinchZoom zooms about the pinch midpoint by the given spread ratio.
func (s *Session) PinchZoom(sx, sy, factor float64) {
	if !s.cam.PinchActive() || factor <= 0 {
		return
	}
	s.cam.Cam.ZoomAboutScreenPoint(sx, sy, factor, s.screenW, s.screenH)
	s.notifyCamera()
}

// PinchEnd releases the pinch gate and engages spring-back.
func (s *Session) PinchEnd() {
	s.cam.SetPinchActive(false)
}

// Step advances the camera spring by the frame's elapsed milliseconds. The
// spring target is the current content center, recomputed each tick since
// bounds can change between releases.
func (s *Session) Step(deltaMS float64) {
	if !s.cam.SpringActive() {
		return
	}
	s.cam.Step(s.contentCenter(), deltaMS/1000)
	s.notifyCamera()
}

// ResetCamera snaps the view back to the content center at 1:1 zoom.
func (s *Session) ResetCamera() {
	s.cam.Cam.Reset(s.contentCenter(), 1)
	s.notifyCamera()
}
