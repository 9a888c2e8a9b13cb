package uikit

// WrapMode specifies how a text buffer is split into display lines.
type WrapMode int

const (
	// WrapNone breaks only on explicit newline characters.
	WrapNone WrapMode = iota
	// WrapWord additionally breaks on word boundaries to fit a maximum
	// width. Words are split on spaces, with each space retained on the
	// preceding word.
	WrapWord
)

// TextLine is one display line of a wrapped buffer: a half-open byte range
// [Start, End) plus its rendered pixel width. A slice of these represents the
// buffer's current layout and is recomputed whenever the buffer, wrap mode,
// or available width changes - it is derived, disposable data, never
// persisted.
type TextLine struct {
	Start, End int
	Width      float32
}

// Text returns the line's slice of buffer.
func (l TextLine) Text(buffer string) string {
	return buffer[l.Start:l.End]
}

// BuildLines splits buffer into display lines. The result is always
// non-empty: an empty buffer yields exactly one zero-width line spanning
// [0,0). The buffer is first split on literal newlines into hard segments;
// each segment becomes one line unless mode is WrapWord and maxWidth is
// positive, in which case it is greedily packed word by word. A single first
// word is always kept even when it alone exceeds maxWidth - there is no
// mid-word breaking. A maxWidth of zero or less behaves as no-wrap.
//
// Same buffer, mode, width, and metrics always produce the same lines; the
// function holds no cache of its own.
func BuildLines(buffer string, mode WrapMode, maxWidth float32, metrics GlyphMetrics) []TextLine {
	var lines []TextLine
	segStart := 0
	for i := 0; i < len(buffer); i++ {
		if buffer[i] == '\n' {
			lines = appendSegment(lines, buffer, segStart, i, mode, maxWidth, metrics)
			segStart = i + 1
		}
	}
	return appendSegment(lines, buffer, segStart, len(buffer), mode, maxWidth, metrics)
}

// appendSegment wraps one newline-free segment [start, end) into lines.
// Every segment produces at least one line, including the empty segment
// after a trailing newline.
func appendSegment(lines []TextLine, buffer string, start, end int, mode WrapMode, maxWidth float32, metrics GlyphMetrics) []TextLine {
	if mode != WrapWord || maxWidth <= 0 {
		return append(lines, makeLine(buffer, start, end, metrics))
	}

	lineStart := start
	p := start
	for p < end {
		wordEnd, tokenEnd := nextWord(buffer, p, end)
		// Trailing spaces hang past the edge without forcing a break, so
		// the fit test measures only up to the word itself.
		if p > lineStart && metrics.TextWidth(buffer[lineStart:wordEnd]) > maxWidth {
			lines = append(lines, makeLine(buffer, lineStart, p, metrics))
			lineStart = p
		}
		p = tokenEnd
	}
	return append(lines, makeLine(buffer, lineStart, end, metrics))
}

// nextWord scans one word starting at p: wordEnd is the end of its non-space
// run, tokenEnd additionally absorbs the trailing spaces that belong to it.
func nextWord(s string, p, end int) (wordEnd, tokenEnd int) {
	i := p
	for i < end && s[i] != ' ' {
		i++
	}
	wordEnd = i
	for i < end && s[i] == ' ' {
		i++
	}
	return wordEnd, i
}

func makeLine(buffer string, start, end int, metrics GlyphMetrics) TextLine {
	var w float32
	if end > start {
		w = metrics.TextWidth(buffer[start:end])
	}
	return TextLine{Start: start, End: end, Width: w}
}

// MeasureLines returns the bounding size of a wrapped layout given the
// line height of the rendering font.
func MeasureLines(lines []TextLine, lineHeight float32) Vec2 {
	var maxW float32
	for _, l := range lines {
		maxW = maxf(maxW, l.Width)
	}
	return Vec2{X: maxW, Y: float32(len(lines)) * lineHeight}
}
