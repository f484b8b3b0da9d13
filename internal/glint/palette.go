// Purpose: Fixed accent palette and the closeness penalties between entries.
// Exports: PaletteEntry, Palette.
// Role: Shared constants for repository color identity.
// Invariants: palette order is significant (penalties are keyed by hue
// adjacency, not RGB distance); the palette is strictly larger than the
// color-cache cap so the allocator always has a candidate.
package glint

import "github.com/lucasb-eyer/go-colorful"

// PaletteEntry is one named accent color with a bright (foreground) and dim
// (background) 24-bit variant.
type PaletteEntry struct {
	Name   string
	Bright string // #rrggbb
	Dim    string // #rrggbb
}

// Palette is ordered by hue; neighbors are visually similar, which is what
// the penalty table below encodes.
var Palette = []PaletteEntry{
	{"red", "#ff5f5f", "#5f1f1f"},
	{"orange", "#ff9f3f", "#5f3a10"},
	{"yellow", "#ffd75f", "#5f4f10"},
	{"green", "#5fd75f", "#1f4f1f"},
	{"cyan", "#5fd7d7", "#154a4a"},
	{"blue", "#5f87ff", "#1f2a5f"},
	{"violet", "#875fff", "#2f1f5f"},
	{"magenta", "#d75fd7", "#4f1f4f"},
	{"pink", "#ff87af", "#5f2a3a"},
	{"gray", "#9e9e9e", "#3a3a3a"},
	{"brown", "#af875f", "#3f2f1f"},
	{"teal", "#5faf87", "#1f453a"},
}

// BrightRGB returns the bright variant as a parsed color.
func (e PaletteEntry) BrightRGB() colorful.Color {
	return mustHex(e.Bright)
}

// DimRGB returns the dim variant as a parsed color.
func (e PaletteEntry) DimRGB() colorful.Color {
	return mustHex(e.Dim)
}

func mustHex(literal string) colorful.Color {
	c, err := colorful.Hex(literal)
	if err != nil {
		panic("palette: bad hex constant " + literal)
	}
	return c
}

type colorPair struct{ a, b string }

// closeness penalties between palette entries. This is a deliberate proxy
// for perceptual distance: hand-listed hue neighbors and bright/dim cousins
// rather than a computed color-space metric. Unlisted pairs are 0.
var closeness = map[colorPair]int{
	// hue neighbors
	{"red", "orange"}:     100,
	{"orange", "yellow"}:  100,
	{"yellow", "green"}:   100,
	{"green", "cyan"}:     100,
	{"cyan", "blue"}:      100,
	{"blue", "violet"}:    100,
	{"violet", "magenta"}: 100,
	{"magenta", "pink"}:   100,
	{"pink", "red"}:       100,
	// two apart on the hue wheel
	{"red", "yellow"}:    40,
	{"orange", "green"}:  40,
	{"yellow", "cyan"}:   40,
	{"green", "blue"}:    40,
	{"cyan", "violet"}:   40,
	{"blue", "magenta"}:  40,
	{"violet", "pink"}:   40,
	{"magenta", "red"}:   40,
	// look-alike cousins
	{"orange", "brown"}: 60,
	{"green", "teal"}:   60,
	{"cyan", "teal"}:    60,
	{"gray", "brown"}:   30,
}

// penalty returns the symmetric closeness weight between two entry names.
func penalty(a, b string) int {
	if w, ok := closeness[colorPair{a, b}]; ok {
		return w
	}
	return closeness[colorPair{b, a}]
}
