package uikit

import (
	"strings"

	"github.com/rivo/uniseg"
)

// ReturnBehavior configures what the enter key does in an editable text
// widget.
type ReturnBehavior struct {
	// InsertNewline inserts a literal newline instead of submitting.
	InsertNewline bool
	// SubmitOnCtrl, with InsertNewline set, submits when the control
	// modifier is held and inserts a newline otherwise.
	SubmitOnCtrl bool
}

// ReturnSubmits makes enter set the submit flag and leave content unchanged.
var ReturnSubmits = ReturnBehavior{}

// ReturnNewline makes enter insert a newline, optionally submitting when
// control is held.
func ReturnNewline(submitOnCtrl bool) ReturnBehavior {
	return ReturnBehavior{InsertNewline: true, SubmitOnCtrl: submitOnCtrl}
}

// EditOptions configures ApplyInput.
type EditOptions struct {
	// AllowLeadingNewline lets backspace at position 0 delete a newline
	// the buffer starts with, instead of being a no-op.
	AllowLeadingNewline bool
	Return              ReturnBehavior
}

// EditOutcome is the result of applying one frame's input to a text buffer:
// the new cursor byte offset and three independent flags. It carries no
// identity of its own.
type EditOutcome struct {
	Cursor      int
	Changed     bool
	CursorMoved bool
	Submitted   bool
}

// ApplyInput applies one input snapshot to the buffer at *value, editing in
// place. Operations run in a fixed order - typed text, backspace, forward
// delete, arrow movement, enter - so later edits see the buffer left by
// earlier ones within the same call.
//
// All deletions and cursor movement operate on grapheme cluster boundaries;
// a multi-byte character is never split. Out-of-range cursors are clamped,
// and edits at the buffer edges degrade to no-ops: input arrives
// asynchronously relative to layout changes and must never fail the frame.
func ApplyInput(value *string, cursor int, in *InputState, opts EditOptions) EditOutcome {
	buf := *value
	cursor = clampCursor(buf, cursor)
	start := cursor
	out := EditOutcome{}

	// Typed or pasted text.
	if len(in.InputChars) > 0 {
		var b strings.Builder
		for _, r := range in.InputChars {
			if r < 0x20 || r == 0x7f {
				continue
			}
			b.WriteRune(r)
		}
		if insert := b.String(); insert != "" {
			buf = buf[:cursor] + insert + buf[cursor:]
			cursor += len(insert)
			out.Changed = true
		}
	}

	// Backspace.
	if in.KeyRepeated(KeyBackspace) {
		if cursor > 0 {
			prev := prevBoundary(buf, cursor)
			buf = buf[:prev] + buf[cursor:]
			cursor = prev
			out.Changed = true
		} else if opts.AllowLeadingNewline && strings.HasPrefix(buf, "\n") {
			buf = buf[1:]
			out.Changed = true
		}
	}

	// Forward delete.
	if in.KeyRepeated(KeyDelete) && cursor < len(buf) {
		next := nextBoundary(buf, cursor)
		buf = buf[:cursor] + buf[next:]
		out.Changed = true
	}

	// Arrow movement.
	if in.KeyRepeated(KeyLeft) {
		cursor = prevBoundary(buf, cursor)
	}
	if in.KeyRepeated(KeyRight) {
		cursor = nextBoundary(buf, cursor)
	}

	// Enter. Newline insertion follows key repeat like the other editing
	// keys; submission fires once per press.
	if in.KeyRepeated(KeyEnter) {
		submits := !opts.Return.InsertNewline || (opts.Return.SubmitOnCtrl && in.ModCtrl)
		if submits {
			if in.KeyPressed(KeyEnter) {
				out.Submitted = true
			}
		} else {
			buf = buf[:cursor] + "\n" + buf[cursor:]
			cursor++
			out.Changed = true
		}
	}

	*value = buf
	out.Cursor = cursor
	out.CursorMoved = cursor != start
	return out
}

// clampCursor snaps cursor into the buffer and back onto a cluster boundary.
func clampCursor(s string, cursor int) int {
	if cursor <= 0 {
		return 0
	}
	if cursor >= len(s) {
		return len(s)
	}
	b := 0
	for b < cursor {
		n := nextBoundary(s, b)
		if n > cursor {
			return b
		}
		b = n
	}
	return b
}

// nextBoundary returns the grapheme cluster boundary after pos.
func nextBoundary(s string, pos int) int {
	if pos >= len(s) {
		return len(s)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s[pos:], -1)
	return pos + len(cluster)
}

// prevBoundary returns the grapheme cluster boundary before pos. Cluster
// segmentation only runs forward, so this rescans from the start of the
// string; buffers here are short editable fields, not documents.
func prevBoundary(s string, pos int) int {
	if pos <= 0 {
		return 0
	}
	b := 0
	for b < pos {
		n := nextBoundary(s, b)
		if n >= pos {
			return b
		}
		b = n
	}
	return b
}

// LineIndexForCursor returns the index of the wrapped line containing the
// cursor. A cursor sitting exactly on a wrap boundary belongs to the earlier
// line. Returns the last line when the cursor is past the layout.
func LineIndexForCursor(lines []TextLine, cursor int) int {
	if len(lines) == 0 {
		return 0
	}
	for i, l := range lines {
		if cursor >= l.Start && cursor <= l.End {
			return i
		}
	}
	if cursor < lines[0].Start {
		return 0
	}
	return len(lines) - 1
}

// CursorXInLine returns the horizontal pixel offset of the cursor within its
// line. Cursors outside the line's range are clamped to its ends.
func CursorXInLine(buffer string, line TextLine, cursor int, metrics GlyphMetrics) float32 {
	if cursor <= line.Start {
		return 0
	}
	if cursor > line.End {
		cursor = line.End
	}
	return metrics.TextWidth(buffer[line.Start:cursor])
}

// CursorFromX converts a horizontal pixel target into a cursor byte offset
// within the line, walking glyph by glyph and rounding to the nearest
// boundary. A target past a glyph's midpoint lands after it; a target exactly
// on the midpoint favors the later boundary.
func CursorFromX(buffer string, line TextLine, targetX float32, metrics GlyphMetrics) int {
	x := float32(0)
	pos := line.Start
	rest := buffer[line.Start:line.End]
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := metrics.TextWidth(cluster)
		if targetX < x+w/2 {
			return pos
		}
		x += w
		pos += len(cluster)
	}
	return pos
}
