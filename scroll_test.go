package uikit_test

import (
	"testing"

	"github.com/go-uikit/uikit"
)

func TestScrollStateClamp(t *testing.T) {
	s := uikit.ScrollState{Offset: 900, ContentLen: 500, ViewLen: 200}
	s.Clamp()
	if s.Offset != 300 {
		t.Errorf("Offset = %v after clamp, want 300", s.Offset)
	}

	s = uikit.ScrollState{Offset: -50, ContentLen: 500, ViewLen: 200}
	s.Clamp()
	if s.Offset != 0 {
		t.Errorf("negative Offset = %v after clamp, want 0", s.Offset)
	}
}

func TestScrollStateApplyWheel(t *testing.T) {
	s := uikit.ScrollState{ContentLen: 1000, ViewLen: 200}

	// Wheel-down (negative) scrolls toward the end.
	s.ApplyWheel(-2, 30)
	if s.Offset != 60 {
		t.Errorf("Offset = %v after wheel, want 60", s.Offset)
	}

	// Wheel-up clamps at the start.
	s.ApplyWheel(5, 30)
	if s.Offset != 0 {
		t.Errorf("Offset = %v after wheel-up, want 0", s.Offset)
	}
}

func TestScrollStateEnsureVisible(t *testing.T) {
	s := uikit.ScrollState{ContentLen: 1000, ViewLen: 200}

	// Target below the viewport scrolls down.
	s.EnsureVisible(500, 20)
	if s.Offset != 320 {
		t.Errorf("Offset = %v, want 320 (target at viewport bottom minus padding)", s.Offset)
	}

	// Target already visible leaves the offset alone.
	before := s.Offset
	s.EnsureVisible(400, 20)
	if s.Offset != before {
		t.Errorf("Offset moved to %v for an already-visible target", s.Offset)
	}

	// Target above the viewport scrolls up.
	s.EnsureVisible(100, 20)
	if s.Offset != 80 {
		t.Errorf("Offset = %v, want 80 (target at viewport top minus padding)", s.Offset)
	}
}

func TestScrollStateThumbDrag(t *testing.T) {
	s := uikit.ScrollState{ContentLen: 1000, ViewLen: 200}
	track := uikit.Rect{X: 290, Y: 0, W: 10, H: 200}
	in := uikit.NewInputState()

	// Press on the thumb (at the track start, since offset is 0).
	in.SetMousePos(295, 10)
	in.SetMouseButton(uikit.MouseButtonLeft, true)
	s.HandleThumbDrag(uikit.AxisVertical, track, in, 20)
	if !s.Dragging {
		t.Fatal("click on thumb did not start a drag")
	}

	// Drag 20px down: content moves 20 * 1000/200 = 100.
	in.Reset()
	in.SetMousePos(295, 30)
	changed := s.HandleThumbDrag(uikit.AxisVertical, track, in, 20)
	if !changed {
		t.Fatal("drag reported no offset change")
	}
	if s.Offset != 100 {
		t.Errorf("Offset = %v after 20px drag, want 100", s.Offset)
	}

	// Release ends the drag.
	in.Reset()
	in.SetMouseButton(uikit.MouseButtonLeft, false)
	s.HandleThumbDrag(uikit.AxisVertical, track, in, 20)
	if s.Dragging {
		t.Error("drag still active after release")
	}
}

func TestScrollStateDragClamped(t *testing.T) {
	s := uikit.ScrollState{ContentLen: 400, ViewLen: 200}
	track := uikit.Rect{X: 0, Y: 0, W: 10, H: 200}
	in := uikit.NewInputState()

	in.SetMousePos(5, 5)
	in.SetMouseButton(uikit.MouseButtonLeft, true)
	s.HandleThumbDrag(uikit.AxisVertical, track, in, 20)

	// A wild drag far past the end clamps to maxScroll.
	in.Reset()
	in.SetMousePos(5, 5000)
	s.HandleThumbDrag(uikit.AxisVertical, track, in, 20)
	if s.Offset != 200 {
		t.Errorf("Offset = %v after overshooting drag, want maxScroll 200", s.Offset)
	}
}
