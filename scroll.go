package uikit

// ScrollState is the per-widget state a scrollable container persists across
// frames, typically in a StatePool[ScrollState]. The geometry functions in
// scrollbar.go are pure; this is the caller-side mutable half.
type ScrollState struct {
	Offset     float32 // Current scroll offset in content space
	ContentLen float32 // Measured content length along the scroll axis
	ViewLen    float32 // Viewport length along the scroll axis

	Dragging     bool    // True while the thumb is being dragged
	DragStartPos float32 // Pointer position when the drag started
	DragStartOff float32 // Offset when the drag started
}

// Clamp snaps the offset into the valid range for the current content and
// view lengths. Call after content is measured, since content shrinking can
// strand the offset past the end.
func (s *ScrollState) Clamp() {
	s.Offset = clampf(s.Offset, 0, MaxScroll(s.ContentLen, s.ViewLen))
}

// ScrollBy moves the offset by a content-space delta, clamped.
func (s *ScrollState) ScrollBy(delta float32) {
	s.Offset = clampf(s.Offset+delta, 0, MaxScroll(s.ContentLen, s.ViewLen))
}

// ApplyWheel converts a wheel delta into scrolling, with step pixels of
// travel per wheel notch. Wheel-up (positive delta) scrolls toward the start.
func (s *ScrollState) ApplyWheel(wheelDelta, step float32) {
	if wheelDelta == 0 {
		return
	}
	s.ScrollBy(-wheelDelta * step)
}

// EnsureVisible adjusts the offset so the target position (in content space)
// is inside the viewport with the given padding on either side. Used to
// follow keyboard-driven selection changes.
func (s *ScrollState) EnsureVisible(target, padding float32) {
	maxScroll := MaxScroll(s.ContentLen, s.ViewLen)

	visibleStart := s.Offset + padding
	visibleEnd := s.Offset + s.ViewLen - padding

	if target < visibleStart {
		s.Offset = clampf(target-padding, 0, maxScroll)
	} else if target > visibleEnd {
		s.Offset = clampf(target-s.ViewLen+padding, 0, maxScroll)
	}
}

// HandleThumbDrag runs one frame of thumb interaction against the input
// snapshot: press on the thumb starts a drag, pointer movement while held
// converts to content-space scrolling via DragDelta, release ends the drag.
// Returns true when the offset changed this frame.
func (s *ScrollState) HandleThumbDrag(axis Axis, track Rect, in *InputState, minThumbSize float32) bool {
	thumb := ThumbRect(axis, track, s.ViewLen, s.ContentLen, s.Offset, minThumbSize)

	pointer := in.MouseY
	if axis == AxisHorizontal {
		pointer = in.MouseX
	}

	if in.MouseClicked(MouseButtonLeft) && thumb.Contains(Vec2{X: in.MouseX, Y: in.MouseY}) {
		s.Dragging = true
		s.DragStartPos = pointer
		s.DragStartOff = s.Offset
	}

	if !s.Dragging {
		return false
	}
	if !in.MouseDown(MouseButtonLeft) {
		s.Dragging = false
		return false
	}

	delta := DragDelta(axis, pointer-s.DragStartPos, s.ContentLen, track)
	before := s.Offset
	s.Offset = clampf(s.DragStartOff+delta, 0, MaxScroll(s.ContentLen, s.ViewLen))
	return s.Offset != before
}
