package uikit

import "math"

// Scrollbar geometry. These are pure functions: content length, viewport
// length, and the persisted scroll offset come in, rectangles and deltas come
// out. Nothing here survives the frame - the scroll offset itself lives in
// the caller's state pool.

// TrackRect places the scrollbar track as a fixed-size strip along the
// body's trailing edge: the right edge for a vertical bar, the bottom edge
// for a horizontal one.
func TrackRect(axis Axis, body Rect, scrollbarSize float32) Rect {
	if axis == AxisHorizontal {
		return Rect{X: body.X, Y: body.Y + body.H - scrollbarSize, W: body.W, H: scrollbarSize}
	}
	return Rect{X: body.X + body.W - scrollbarSize, Y: body.Y, W: scrollbarSize, H: body.H}
}

// MaxScroll returns the largest meaningful scroll offset: zero whenever the
// content fits the view.
func MaxScroll(contentLen, viewLen float32) float32 {
	return maxf(0, contentLen-viewLen)
}

// ThumbRect computes the scrollbar thumb within its track. The thumb length
// is proportional to the visible fraction of the content, clamped to
// [minThumbSize, track length]; its position distributes the clamped scroll
// offset over the remaining travel. Degenerate inputs - empty track, content,
// or view - return the unmodified track, a visible no-op rather than an
// error, because zero-sized widgets legitimately occur mid-layout.
func ThumbRect(axis Axis, track Rect, viewLen, contentLen, scrollOffset, minThumbSize float32) Rect {
	trackLen := axisLen(axis, track)
	if trackLen <= 0 || contentLen <= 0 || viewLen <= 0 {
		return track
	}

	thumbLen := clampf(trackLen*viewLen/contentLen, minThumbSize, trackLen)

	pos := float32(0)
	if maxScroll := MaxScroll(contentLen, viewLen); maxScroll > 0 {
		pos = clampf(scrollOffset, 0, maxScroll) * (trackLen - thumbLen) / maxScroll
	}

	if axis == AxisHorizontal {
		return Rect{X: track.X + pos, Y: track.Y, W: thumbLen, H: track.H}
	}
	return Rect{X: track.X, Y: track.Y + pos, W: track.W, H: thumbLen}
}

// DragDelta converts a pixel drag distance along the track into a
// content-space scroll delta. Returns zero for an empty track. The
// multiplication runs in float64 and saturates, so huge content lengths
// cannot overflow the result.
func DragDelta(axis Axis, pointerDelta, contentLen float32, track Rect) float32 {
	trackLen := axisLen(axis, track)
	if trackLen <= 0 {
		return 0
	}
	d := float64(pointerDelta) * float64(contentLen) / float64(trackLen)
	if d > math.MaxFloat32 {
		return math.MaxFloat32
	}
	if d < -math.MaxFloat32 {
		return -math.MaxFloat32
	}
	return float32(d)
}

// axisLen returns the rect's extent along the scroll axis.
func axisLen(axis Axis, r Rect) float32 {
	if axis == AxisHorizontal {
		return r.W
	}
	return r.H
}
