/*
Package uikit implements the state and geometry core of an immediate-mode UI:
the application describes its interface from scratch every frame, while this
package gives each widget a stable identity and keeps the state that must
survive between frames - text cursors, open/closed nodes, scroll positions -
alive without the caller managing lifetimes.

# Identity

A widget's identity is a 32-bit hash of its position in the call structure: an
explicit scope stack supplies the seed, a local key (string, integer, bytes,
or an address surrogate) supplies the payload. Two frames that build the same
tree produce the same identities, which is what makes state lookups across
frames meaningful.

	frame.IDs.PushIDFromString("settings")
	id := frame.IDs.IDFromString("volume")
	frame.IDs.Pop()

# Persistent state

StatePool is a generic identity-keyed store with create-on-first-use
semantics and frame-stamped garbage collection. Entries untouched for more
than the grace window (two frames by default) are purged at frame end:

	var sliders = uikit.RegisterPool(frame, uikit.NewStatePool[SliderState]())

	state := sliders.GetOrCreate(id, frame.Index(), func() SliderState {
	    return SliderState{}
	})

The Frame context owns the scope stack and frame counter, and collects every
registered pool exactly once per frame in End().

# Geometry

Three independent algorithm sets support the widget layer:

  - RectPacker allocates disjoint glyph/icon regions in a fixed texture
    atlas (guillotine bin packing with padding and optional rotation),
  - BuildLines/ApplyInput handle text wrapping, cursor arithmetic, and one
    frame's worth of keyboard editing against a caller-supplied glyph
    metrics provider,
  - TrackRect/ThumbRect/DragDelta compute scrollbar geometry from content
    and viewport lengths.

Rendering, font rasterization, and window/event plumbing are deliberately
outside this package; they are consumed through the narrow GlyphMetrics and
InputState surfaces.
*/
package uikit
