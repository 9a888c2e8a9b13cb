package uikit

// PackerConfig describes the atlas region a RectPacker allocates from.
// BorderPadding is the minimum gap kept from the atlas edges, RectPadding the
// minimum gap between any two allocated rectangles.
type PackerConfig struct {
	Width, Height int
	BorderPadding int
	RectPadding   int
}

// PackRect is an allocated sub-rectangle of the atlas. Once returned by Pack
// it is permanently reserved: a packer is built once per atlas and never
// compacts or evicts.
type PackRect struct {
	X, Y, W, H int
}

// RectPacker allocates disjoint sub-rectangles inside a fixed atlas region
// using a guillotine free-rectangle scheme with best-area-fit selection.
// Typical use is packing glyph and icon regions at atlas-build time, before
// any frame runs:
//
//	packer := uikit.NewRectPacker(uikit.PackerConfig{Width: 512, Height: 512, RectPadding: 1})
//	r, ok := packer.Pack(glyphW, glyphH, false)
//
// A failed Pack never corrupts the packer; smaller requests may still succeed
// afterwards.
type RectPacker struct {
	cfg  PackerConfig
	free []PackRect // disjoint free regions in padded-interior coordinates
}

// NewRectPacker creates a packer for the configured atlas region.
// The packable interior is the configured size plus one rectangle padding
// (the final rectangle in each row/column needs no trailing gap) minus the
// border padding on both sides, clamped at zero per dimension.
func NewRectPacker(cfg PackerConfig) *RectPacker {
	usableW := cfg.Width + cfg.RectPadding - 2*cfg.BorderPadding
	usableH := cfg.Height + cfg.RectPadding - 2*cfg.BorderPadding
	if usableW < 0 {
		usableW = 0
	}
	if usableH < 0 {
		usableH = 0
	}
	p := &RectPacker{cfg: cfg}
	if usableW > 0 && usableH > 0 {
		p.free = append(p.free, PackRect{X: 0, Y: 0, W: usableW, H: usableH})
	}
	return p
}

// Pack reserves a w by h rectangle, returning its position within the atlas.
// Requests with a non-positive dimension return false immediately. When
// allowRotate is set the packer may place the rectangle rotated 90 degrees;
// callers detect rotation by comparing the returned dimensions against the
// request. Returns false when no free region fits.
func (p *RectPacker) Pack(w, h int, allowRotate bool) (PackRect, bool) {
	fit, ok := p.findFit(w, h, allowRotate)
	if !ok {
		return PackRect{}, false
	}
	p.split(fit)
	return PackRect{
		X: fit.x + p.cfg.BorderPadding,
		Y: fit.y + p.cfg.BorderPadding,
		W: fit.w - p.cfg.RectPadding,
		H: fit.h - p.cfg.RectPadding,
	}, true
}

// CanPack reports whether a w by h rectangle would currently fit, without
// reserving anything. Callers use this to compare candidate layouts before
// committing.
func (p *RectPacker) CanPack(w, h int, allowRotate bool) bool {
	_, ok := p.findFit(w, h, allowRotate)
	return ok
}

// FreeRegions returns the number of free regions currently tracked.
func (p *RectPacker) FreeRegions() int {
	return len(p.free)
}

// fit describes a chosen placement: the free-list index it consumes and the
// padded rectangle to carve out of it.
type fit struct {
	index      int
	x, y, w, h int
}

// findFit selects the free region leaving the least leftover area
// (best-area-fit) for the padded request, trying the rotated orientation as
// well when allowed. The request is padded by RectPadding on one side; the
// padding is stripped again when the rectangle is returned to the caller.
func (p *RectPacker) findFit(w, h int, allowRotate bool) (fit, bool) {
	if w <= 0 || h <= 0 {
		return fit{}, false
	}
	pw := w + p.cfg.RectPadding
	ph := h + p.cfg.RectPadding

	best := fit{index: -1}
	bestWaste := 0
	consider := func(i int, fw, fh int) {
		fr := p.free[i]
		if fw > fr.W || fh > fr.H {
			return
		}
		waste := fr.W*fr.H - fw*fh
		if best.index < 0 || waste < bestWaste {
			best = fit{index: i, x: fr.X, y: fr.Y, w: fw, h: fh}
			bestWaste = waste
		}
	}
	for i := range p.free {
		consider(i, pw, ph)
		if allowRotate && pw != ph {
			consider(i, ph, pw)
		}
	}
	return best, best.index >= 0
}

// split consumes the chosen free region and re-adds the two leftover strips,
// cutting along the shorter leftover axis to keep the remainders square-ish.
func (p *RectPacker) split(f fit) {
	fr := p.free[f.index]
	p.free[f.index] = p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]

	rightW := fr.W - f.w
	bottomH := fr.H - f.h

	var right, bottom PackRect
	if rightW < bottomH {
		// Bottom strip keeps the full width.
		right = PackRect{X: fr.X + f.w, Y: fr.Y, W: rightW, H: f.h}
		bottom = PackRect{X: fr.X, Y: fr.Y + f.h, W: fr.W, H: bottomH}
	} else {
		// Right strip keeps the full height.
		right = PackRect{X: fr.X + f.w, Y: fr.Y, W: rightW, H: fr.H}
		bottom = PackRect{X: fr.X, Y: fr.Y + f.h, W: f.w, H: bottomH}
	}
	if right.W > 0 && right.H > 0 {
		p.free = append(p.free, right)
	}
	if bottom.W > 0 && bottom.H > 0 {
		p.free = append(p.free, bottom)
	}
}
