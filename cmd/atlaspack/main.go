// Command atlaspack packs a manifest of sprite sizes into a texture atlas
// layout. It runs once at asset-build time; the resulting layout file is
// loaded at runtime instead of re-running the packer.
//
// Usage:
//
//	atlaspack -in sprites.toml -out layout.toml
//
// The manifest describes the atlas and its sprites:
//
//	width = 512
//	height = 512
//	border_padding = 1
//	rect_padding = 1
//	allow_rotate = false
//
//	[[sprite]]
//	name = "icon_save"
//	width = 24
//	height = 24
//
// Sprites are placed largest-first. If any sprite does not fit, the layout
// for the ones that did is still written and the command exits non-zero,
// naming the sprites left over.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/go-uikit/uikit"
)

// Manifest is the packing input.
type Manifest struct {
	Width         int      `toml:"width"`
	Height        int      `toml:"height"`
	BorderPadding int      `toml:"border_padding"`
	RectPadding   int      `toml:"rect_padding"`
	AllowRotate   bool     `toml:"allow_rotate"`
	Sprites       []Sprite `toml:"sprite"`
}

// Sprite is one rectangle request in the manifest.
type Sprite struct {
	Name   string `toml:"name"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Layout is the packing output.
type Layout struct {
	Width  int      `toml:"width"`
	Height int      `toml:"height"`
	Rects  []Placed `toml:"rect"`
}

// Placed records where one sprite landed. Rotated is set when the packer
// placed the sprite turned 90 degrees.
type Placed struct {
	Name    string `toml:"name"`
	X       int    `toml:"x"`
	Y       int    `toml:"y"`
	W       int    `toml:"w"`
	H       int    `toml:"h"`
	Rotated bool   `toml:"rotated,omitempty"`
}

func main() {
	inPath := flag.String("in", "", "manifest TOML file (required)")
	outPath := flag.String("out", "", "layout TOML file (required)")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	uikit.SetVerbose(*verbose)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	manifest, err := readManifest(*inPath)
	if err != nil {
		logger.Error("reading manifest", "path", *inPath, "err", err)
		os.Exit(1)
	}

	layout, leftover := packSprites(manifest)

	if err := writeLayout(*outPath, layout); err != nil {
		logger.Error("writing layout", "path", *outPath, "err", err)
		os.Exit(1)
	}

	logger.Info("atlas packed",
		"sprites", len(layout.Rects),
		"leftover", len(leftover),
		"size", fmt.Sprintf("%dx%d", layout.Width, layout.Height))

	if len(leftover) > 0 {
		for _, name := range leftover {
			fmt.Fprintf(os.Stderr, "does not fit: %s\n", name)
		}
		os.Exit(1)
	}
}

func readManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return Manifest{}, fmt.Errorf("atlas size %dx%d is not positive", m.Width, m.Height)
	}
	return m, nil
}

// packSprites places every sprite it can, largest area first, and returns
// the names of those that did not fit.
func packSprites(m Manifest) (Layout, []string) {
	packer := uikit.NewRectPacker(uikit.PackerConfig{
		Width:         m.Width,
		Height:        m.Height,
		BorderPadding: m.BorderPadding,
		RectPadding:   m.RectPadding,
	})

	order := make([]Sprite, len(m.Sprites))
	copy(order, m.Sprites)
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Width*order[i].Height > order[j].Width*order[j].Height
	})

	layout := Layout{Width: m.Width, Height: m.Height}
	var leftover []string
	for _, sp := range order {
		r, ok := packer.Pack(sp.Width, sp.Height, m.AllowRotate)
		if !ok {
			leftover = append(leftover, sp.Name)
			continue
		}
		layout.Rects = append(layout.Rects, Placed{
			Name:    sp.Name,
			X:       r.X,
			Y:       r.Y,
			W:       r.W,
			H:       r.H,
			Rotated: r.W != sp.Width,
		})
	}
	return layout, leftover
}

func writeLayout(path string, layout Layout) error {
	data, err := toml.Marshal(layout)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
