package uikit_test

import (
	"testing"

	"github.com/go-uikit/uikit"
)

// cells measures one pixel per terminal cell, so widths equal visible rune
// counts for ASCII. Deterministic and independent of any font file.
var cells = uikit.CellMetrics{CellWidth: 1}

func lineTexts(buffer string, lines []uikit.TextLine) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text(buffer)
	}
	return out
}

func TestBuildLinesEmptyBuffer(t *testing.T) {
	for _, mode := range []uikit.WrapMode{uikit.WrapNone, uikit.WrapWord} {
		lines := uikit.BuildLines("", mode, 100, cells)
		if len(lines) != 1 {
			t.Fatalf("mode %v: got %d lines for empty buffer, want 1", mode, len(lines))
		}
		l := lines[0]
		if l.Start != 0 || l.End != 0 || l.Width != 0 {
			t.Errorf("mode %v: empty-buffer line = %+v, want [0,0) width 0", mode, l)
		}
	}
}

func TestBuildLinesNoWrapWidth(t *testing.T) {
	const buffer = "a long single line of text"

	// maxWidth <= 0 never splits, regardless of mode.
	for _, maxWidth := range []float32{0, -5} {
		for _, mode := range []uikit.WrapMode{uikit.WrapNone, uikit.WrapWord} {
			lines := uikit.BuildLines(buffer, mode, maxWidth, cells)
			if len(lines) != 1 {
				t.Fatalf("mode %v width %v: got %d lines, want 1", mode, maxWidth, len(lines))
			}
			if lines[0].End != len(buffer) {
				t.Errorf("mode %v width %v: line covers [%d,%d), want whole buffer", mode, maxWidth, lines[0].Start, lines[0].End)
			}
		}
	}
}

func TestBuildLinesHardNewlines(t *testing.T) {
	lines := uikit.BuildLines("ab\n\ncd\n", uikit.WrapNone, 0, cells)

	want := []uikit.TextLine{
		{Start: 0, End: 2, Width: 2},
		{Start: 3, End: 3, Width: 0},
		{Start: 4, End: 6, Width: 2},
		{Start: 7, End: 7, Width: 0},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lineTexts("ab\n\ncd\n", lines))
	}
	for i, l := range lines {
		if l != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, l, want[i])
		}
	}
}

func TestBuildLinesWordWrap(t *testing.T) {
	const buffer = "hello world foo"

	lines := uikit.BuildLines(buffer, uikit.WrapWord, 11, cells)

	got := lineTexts(buffer, lines)
	want := []string{"hello world ", "foo"}
	if len(got) != len(want) {
		t.Fatalf("got lines %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}

	// Byte coverage is contiguous: the trailing space stays with the word
	// before the break.
	if lines[0].End != lines[1].Start {
		t.Errorf("line ranges not contiguous: [%d,%d) then [%d,%d)",
			lines[0].Start, lines[0].End, lines[1].Start, lines[1].End)
	}
}

func TestBuildLinesLongFirstWord(t *testing.T) {
	const buffer = "unbreakable next"

	lines := uikit.BuildLines(buffer, uikit.WrapWord, 5, cells)

	got := lineTexts(buffer, lines)
	want := []string{"unbreakable ", "next"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got lines %q, want %q (no mid-word breaking)", got, want)
	}
}

func TestBuildLinesWrapInsideSegments(t *testing.T) {
	const buffer = "one two three\nfour"

	lines := uikit.BuildLines(buffer, uikit.WrapWord, 7, cells)

	got := lineTexts(buffer, lines)
	want := []string{"one two ", "three", "four"}
	if len(got) != len(want) {
		t.Fatalf("got lines %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBuildLinesDeterminism(t *testing.T) {
	const buffer = "some wrapped text that spans lines"

	a := uikit.BuildLines(buffer, uikit.WrapWord, 10, cells)
	b := uikit.BuildLines(buffer, uikit.WrapWord, 10, cells)

	if len(a) != len(b) {
		t.Fatalf("line counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("line %d differs between identical calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestMeasureLines(t *testing.T) {
	lines := uikit.BuildLines("abc\nfghij", uikit.WrapNone, 0, cells)

	size := uikit.MeasureLines(lines, 13)
	if size.X != 5 {
		t.Errorf("width = %v, want 5", size.X)
	}
	if size.Y != 26 {
		t.Errorf("height = %v, want 26 (2 lines of 13)", size.Y)
	}
}
