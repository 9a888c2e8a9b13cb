package uikit

import (
	"log/slog"
	"os"
)

// uikitLogLevel controls the log level for identity-misuse and lifecycle
// debug logging.
var uikitLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		uikitLogLevel.Set(slog.LevelDebug)
	} else {
		uikitLogLevel.Set(slog.LevelInfo)
	}
}

var uikitLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: uikitLogLevel}))

// Frame is the per-application frame-execution context: it owns the identity
// scope stack, the monotonic frame counter, and the registry of state pools
// to garbage-collect at the end of each frame. Everything here is
// single-threaded and synchronous; a Frame is confined to the goroutine that
// builds the UI.
//
//	frame := uikit.NewFrame()
//	buttons := uikit.RegisterPool(frame, uikit.NewStatePool[ButtonState]())
//
//	for running {
//	    frame.Begin()
//	    // widget traversal: push/pop scopes, GetOrCreate state...
//	    frame.End()
//	}
type Frame struct {
	// IDs is the scope stack for this frame's widget traversal. It is an
	// explicit object here, not package state, so independent UIs in one
	// process cannot interfere.
	IDs IDStack

	index uint64
	pools []Collectable
}

// NewFrame creates a frame context starting at frame index zero.
func NewFrame() *Frame {
	return &Frame{}
}

// Index returns the current frame index. It is the value to pass to
// StatePool operations during the traversal.
func (f *Frame) Index() uint64 {
	return f.index
}

// Begin advances the frame counter and resets the identity stack. A scope
// stack left unbalanced by the previous frame is a bug in the widget tree;
// it is logged before the reset so the corruption is visible, then discarded
// so the new frame starts clean.
func (f *Frame) Begin() uint64 {
	if f.IDs.Depth() != 0 {
		uikitLogger.Warn("unbalanced id scope stack at frame start",
			"depth", f.IDs.Depth(),
			"frame", f.index)
	}
	f.IDs.Reset()
	f.index++
	return f.index
}

// End runs garbage collection on every registered pool, exactly once,
// strictly after the frame's widget traversal. States touched earlier in this
// frame are never evicted here.
func (f *Frame) End() {
	for _, p := range f.pools {
		p.CollectGarbage(f.index)
	}
}

// AddPool registers a pool for end-of-frame collection.
func (f *Frame) AddPool(p Collectable) {
	f.pools = append(f.pools, p)
}

// RegisterPool registers a typed pool with the frame and returns it, for
// one-line package or struct initialization.
func RegisterPool[T any](f *Frame, pool *StatePool[T]) *StatePool[T] {
	f.AddPool(pool)
	return pool
}
