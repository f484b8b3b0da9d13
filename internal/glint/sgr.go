// Purpose: Track terminal SGR attributes and compute minimal transitions.
// Exports: Color (via markup rendering), parse helpers are package-internal.
// Role: Color-state machine backing the markup renderer.
// Invariants: tracked state always matches what the escapes emitted so far
// would leave on a real terminal; diffing never emits a code for an
// attribute that did not change.
// Notes: Only the SGR subset glint emits is modeled (fg, bg, bold, italic).
package glint

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type colorKind int

const (
	colorNone colorKind = iota
	colorNamed           // 8-color ANSI set, index 0-7
	colorTrue            // 24-bit RGB
)

// Color is a closed variant: absent, one of the 8 ANSI colors, or 24-bit.
type Color struct {
	kind    colorKind
	ansi    int
	r, g, b uint8
}

// namedColors maps the markup's single-letter color set to ANSI indices.
var namedColors = map[rune]int{
	'k': 0, // black
	'r': 1,
	'g': 2,
	'y': 3,
	'b': 4,
	'm': 5,
	'c': 6,
	'w': 7,
}

func namedColor(letter rune) (Color, error) {
	idx, ok := namedColors[letter]
	if !ok {
		return Color{}, fmt.Errorf("markup: unknown color letter %q", letter)
	}
	return Color{kind: colorNamed, ansi: idx}, nil
}

// hexColor parses an #rrggbb literal. Exactly six hex digits; anything
// else (including the 3-digit shorthand go-colorful would accept) is a
// markup error.
func hexColor(literal string) (Color, error) {
	if len(literal) != 7 || literal[0] != '#' || !isHexString(literal[1:]) {
		return Color{}, fmt.Errorf("markup: malformed color literal %q (want #rrggbb)", literal)
	}
	parsed, err := colorful.Hex(literal)
	if err != nil {
		return Color{}, fmt.Errorf("markup: malformed color literal %q (want #rrggbb)", literal)
	}
	r, g, b := parsed.RGB255()
	return Color{kind: colorTrue, r: r, g: g, b: b}, nil
}

// fgParam returns the SGR parameter that sets c as the foreground.
func (c Color) fgParam() string {
	switch c.kind {
	case colorNamed:
		return fmt.Sprintf("3%d", c.ansi)
	case colorTrue:
		return fmt.Sprintf("38;2;%d;%d;%d", c.r, c.g, c.b)
	}
	return ""
}

// bgParam returns the SGR parameter that sets c as the background.
func (c Color) bgParam() string {
	switch c.kind {
	case colorNamed:
		return fmt.Sprintf("4%d", c.ansi)
	case colorTrue:
		return fmt.Sprintf("48;2;%d;%d;%d", c.r, c.g, c.b)
	}
	return ""
}

func (c Color) isSet() bool {
	return c.kind != colorNone
}

// Hex renders the color as #rrggbb (named colors use the VGA-ish values
// a default terminal theme maps them to). Used by prompt composition.
func (c Color) Hex() string {
	switch c.kind {
	case colorNamed:
		vga := [8]string{"#000000", "#aa0000", "#00aa00", "#aa5500", "#0000aa", "#aa00aa", "#00aaaa", "#aaaaaa"}
		return vga[c.ansi]
	case colorTrue:
		return colorful.Color{R: float64(c.r) / 255, G: float64(c.g) / 255, B: float64(c.b) / 255}.Hex()
	}
	return ""
}

// renderState is the full set of attributes the renderer tracks.
// The zero value is the empty (reset) state.
type renderState struct {
	fg, bg Color
	bold   bool
	italic bool
}

// colorSpec is one parsed run of color-spec tokens (letters, :bg, #rrggbb,
// ! bold, / italic). hasFg/hasBg distinguish "not mentioned" from "set".
type colorSpec struct {
	fg, bg Color
	bold   bool
	italic bool
}

// transitionParams computes the SGR parameter list that takes the terminal
// from one state to the next. Bold and italic are sticky: they are only
// ever set here, never cleared (an explicit reset token clears them).
func transitionParams(from, to renderState) []string {
	var params []string
	if to.bold && !from.bold {
		params = append(params, "1")
	}
	if to.italic && !from.italic {
		params = append(params, "3")
	}
	if to.fg != from.fg && to.fg.isSet() {
		params = append(params, to.fg.fgParam())
	}
	if to.bg != from.bg && to.bg.isSet() {
		params = append(params, to.bg.bgParam())
	}
	return params
}

// sgrSequence builds one CSI sequence from a parameter list.
func sgrSequence(params []string) string {
	return "\x1b[" + strings.Join(params, ";") + "m"
}

const sgrReset = "\x1b[0m"
