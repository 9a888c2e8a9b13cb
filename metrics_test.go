package uikit_test

import (
	"testing"

	"golang.org/x/image/font/basicfont"

	"github.com/go-uikit/uikit"
)

func TestCellMetrics(t *testing.T) {
	m := uikit.CellMetrics{CellWidth: 8}

	if got := m.TextWidth("abc"); got != 24 {
		t.Errorf("TextWidth(\"abc\") = %v, want 24", got)
	}
	// East Asian wide characters occupy two cells.
	if got := m.TextWidth("日本"); got != 32 {
		t.Errorf("TextWidth(wide) = %v, want 32", got)
	}
	if got := m.TextWidth(""); got != 0 {
		t.Errorf("TextWidth(\"\") = %v, want 0", got)
	}
}

func TestFaceMetrics(t *testing.T) {
	m := uikit.NewFaceMetrics(basicfont.Face7x13)

	// Face7x13 advances 7 pixels per glyph.
	if got := m.TextWidth("abc"); got != 21 {
		t.Errorf("TextWidth(\"abc\") = %v, want 21", got)
	}
	if got := m.TextWidth(""); got != 0 {
		t.Errorf("TextWidth(\"\") = %v, want 0", got)
	}
}

func TestGlyphMetricsFunc(t *testing.T) {
	m := uikit.GlyphMetricsFunc(func(s string) float32 {
		return float32(len(s)) * 2
	})
	if got := m.TextWidth("abcd"); got != 8 {
		t.Errorf("TextWidth via func = %v, want 8", got)
	}
}
