package uikit

// ListClipper narrows a fixed-height item list down to the rows that
// intersect the viewport, so a scrollable list only lays out and draws
// what is actually visible. Build one per frame from the list's
// ScrollState; it holds no cross-frame state of its own.
type ListClipper struct {
	First, Last int     // Visible item range [First, Last)
	ItemLen     float32 // Length of one item along the scroll axis
	Total       int     // Total number of items in the list
	offset      float32
}

// ClipList computes the visible item window for a list of total items of
// itemLen each, as seen through the given scroll state. The scroll state's
// ContentLen is not consulted; use ListContentLen to keep it in sync.
func ClipList(total int, itemLen float32, s ScrollState) ListClipper {
	c := ListClipper{ItemLen: itemLen, Total: total, offset: s.Offset}
	if total <= 0 || itemLen <= 0 || s.ViewLen <= 0 {
		return c
	}

	c.First = int(s.Offset / itemLen)
	if c.First < 0 {
		c.First = 0
	}
	// Exclusive end: the first item that starts at or past the viewport end.
	c.Last = int((s.Offset + s.ViewLen) / itemLen)
	if float32(c.Last)*itemLen < s.Offset+s.ViewLen {
		c.Last++
	}
	if c.Last > total {
		c.Last = total
	}
	if c.First > c.Last {
		c.First = c.Last
	}
	return c
}

// ListContentLen returns the content length a list of total items of
// itemLen each occupies, for feeding into ScrollState.ContentLen.
func ListContentLen(total int, itemLen float32) float32 {
	if total <= 0 || itemLen <= 0 {
		return 0
	}
	return float32(total) * itemLen
}

// Visible reports whether item i falls inside the clipped window.
func (c ListClipper) Visible(i int) bool {
	return i >= c.First && i < c.Last
}

// Count returns the number of items in the clipped window.
func (c ListClipper) Count() int {
	return c.Last - c.First
}

// ItemPos returns item i's position along the scroll axis in viewport
// space: content position minus the scroll offset. Negative for items
// scrolled past the viewport start.
func (c ListClipper) ItemPos(i int) float32 {
	return float32(i)*c.ItemLen - c.offset
}

// ScrollToItem adjusts the scroll state so item i is fully visible,
// scrolling the minimal distance. Out-of-range indices clamp to the ends.
func (c ListClipper) ScrollToItem(i int, s *ScrollState) {
	if c.Total <= 0 || c.ItemLen <= 0 {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= c.Total {
		i = c.Total - 1
	}

	itemStart := float32(i) * c.ItemLen
	if itemStart < s.Offset {
		s.Offset = itemStart
	} else if itemEnd := itemStart + c.ItemLen; itemEnd > s.Offset+s.ViewLen {
		s.Offset = itemEnd - s.ViewLen
	}
	s.Clamp()
}
