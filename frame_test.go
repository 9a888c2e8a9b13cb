package uikit_test

import (
	"testing"

	"github.com/go-uikit/uikit"
)

func TestFrameIndexAdvances(t *testing.T) {
	frame := uikit.NewFrame()

	if got := frame.Index(); got != 0 {
		t.Errorf("initial Index() = %d, want 0", got)
	}
	if got := frame.Begin(); got != 1 {
		t.Errorf("first Begin() = %d, want 1", got)
	}
	frame.End()
	if got := frame.Begin(); got != 2 {
		t.Errorf("second Begin() = %d, want 2", got)
	}
}

func TestFrameResetsUnbalancedStack(t *testing.T) {
	frame := uikit.NewFrame()

	frame.Begin()
	frame.IDs.PushIDFromString("window")
	frame.IDs.PushIDFromString("panel")
	// Widget code forgot to pop - next frame must start clean anyway.
	frame.End()

	frame.Begin()
	if got := frame.IDs.Depth(); got != 0 {
		t.Errorf("Depth() = %d at frame start, want 0", got)
	}
}

func TestFrameIdentitiesStableAcrossFrames(t *testing.T) {
	frame := uikit.NewFrame()

	traverse := func() uikit.ID {
		frame.IDs.PushIDFromString("window")
		defer func() { _ = frame.IDs.Pop() }()
		return frame.IDs.IDFromString("ok_button")
	}

	frame.Begin()
	first := traverse()
	frame.End()

	frame.Begin()
	second := traverse()
	frame.End()

	if first != second {
		t.Errorf("same tree shape produced different IDs across frames: %v vs %v", first, second)
	}
}

func TestFrameCollectsRegisteredPools(t *testing.T) {
	frame := uikit.NewFrame()
	pool := uikit.RegisterPool(frame, uikit.NewStatePool[int]())

	// Frame 1: widget appears and stores state.
	frame.Begin()
	id := frame.IDs.IDFromString("editor")
	pool.Set(id, frame.Index(), 42)
	frame.End()

	// The widget stops being drawn. Two idle frames keep its state...
	for i := 0; i < 2; i++ {
		frame.Begin()
		frame.End()
	}
	if _, ok := pool.Lookup(id); !ok {
		t.Fatal("state evicted within the grace window")
	}

	// ...the third evicts it.
	frame.Begin()
	frame.End()
	if _, ok := pool.Lookup(id); ok {
		t.Error("state survived past the grace window")
	}
}

func TestFrameWidgetStateLifecycle(t *testing.T) {
	// An every-other-frame widget keeps its state: the traversal touches
	// the entry often enough that collection never fires on it.
	frame := uikit.NewFrame()
	pool := uikit.RegisterPool(frame, uikit.NewStatePool[uikit.ScrollState]())

	var id uikit.ID
	for i := 0; i < 20; i++ {
		frame.Begin()
		if i%2 == 0 {
			frame.IDs.PushIDFromString("sidebar")
			id = frame.IDs.IDFromString("file_list")
			state := pool.GetOrCreate(id, frame.Index(), func() uikit.ScrollState {
				return uikit.ScrollState{ContentLen: 1000, ViewLen: 200}
			})
			state.ScrollBy(10)
			_ = frame.IDs.Pop()
		}
		frame.End()
	}

	state, ok := pool.Lookup(id)
	if !ok {
		t.Fatal("every-other-frame widget lost its state")
	}
	if state.Offset != 100 {
		t.Errorf("Offset = %v after 10 visible frames, want 100", state.Offset)
	}
}
