package uikit

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
)

// GlyphMetrics is the capability the text layer needs from a font: the
// rendered pixel width of a string. The package does not depend on any
// concrete font implementation; applications inject whatever satisfies this
// interface (a rasterized atlas font, a system font, or a fixed-width mock
// for tests).
type GlyphMetrics interface {
	// TextWidth returns the pixel width of s when rendered.
	TextWidth(s string) float32
}

// GlyphMetricsFunc adapts a plain function to GlyphMetrics.
type GlyphMetricsFunc func(s string) float32

// TextWidth implements GlyphMetrics.
func (f GlyphMetricsFunc) TextWidth(s string) float32 { return f(s) }

// FaceMetrics measures text with a golang.org/x/image/font.Face.
// The face's advance widths are 26.6 fixed point; they are converted to
// pixels here.
type FaceMetrics struct {
	Face font.Face
}

// NewFaceMetrics wraps a font face as a GlyphMetrics provider.
func NewFaceMetrics(face font.Face) *FaceMetrics {
	return &FaceMetrics{Face: face}
}

// TextWidth implements GlyphMetrics.
func (m *FaceMetrics) TextWidth(s string) float32 {
	adv := font.MeasureString(m.Face, s)
	return float32(adv) / 64
}

// CellMetrics measures text in terminal-style cells: every rune occupies an
// integral number of cells of CellWidth pixels, with East Asian wide
// characters taking two. Suitable for monospace UIs and as a deterministic
// metrics source in tests.
type CellMetrics struct {
	CellWidth float32
}

// TextWidth implements GlyphMetrics.
func (m CellMetrics) TextWidth(s string) float32 {
	return float32(runewidth.StringWidth(s)) * m.CellWidth
}
