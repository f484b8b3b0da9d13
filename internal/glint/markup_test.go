// Tests for markup parsing, escape emission, and width justification.
package glint

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

// renderString runs one markup string through a renderer with fixed width
// and no shell markers.
func renderString(t *testing.T, markup string, width int) string {
	t.Helper()
	var buf strings.Builder
	r := NewRenderer(&buf, width, ShellNone, rand.New(rand.NewSource(1)))
	if err := r.Render(markup); err != nil {
		t.Fatalf("Render(%q) failed: %v", markup, err)
	}
	return buf.String()
}

var escapePattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// printableWidth strips escape sequences and measures the rest in cells.
func printableWidth(s string) int {
	return runewidth.StringWidth(escapePattern.ReplaceAllString(s, ""))
}

func TestRender_LiteralAndColors(t *testing.T) {
	got := renderString(t, `r"a"`, 80)
	want := "\x1b[31ma"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_BackgroundColor(t *testing.T) {
	got := renderString(t, `:g"a"`, 80)
	want := "\x1b[42ma"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_TrueColor(t *testing.T) {
	got := renderString(t, `#ff8000"a"`, 80)
	want := "\x1b[38;2;255;128;0ma"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_CombinedSpecOneSequence(t *testing.T) {
	// fg, bg, bold, and italic set together must join into one sequence.
	got := renderString(t, `!/r:b"a"`, 80)
	want := "\x1b[1;3;31;44ma"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_StateDiffingIsIdempotent(t *testing.T) {
	got := renderString(t, `r"a"r"b"`, 80)
	want := "\x1b[31mab"
	if got != want {
		t.Errorf("setting the same color twice emitted extra escapes: got %q, want %q", got, want)
	}
}

func TestRender_BoldIsSticky(t *testing.T) {
	got := renderString(t, `!"a"!"b"`, 80)
	want := "\x1b[1mab"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_ResetScenario(t *testing.T) {
	// reset | bold blue "x" reset: one reset line, then one set + one reset.
	got := renderString(t, `0|!b"x"0`, 80)
	want := "\x1b[0m\n\x1b[1;34mx\x1b[0m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_LineCounts(t *testing.T) {
	for _, tc := range []struct {
		markup string
		lines  int
	}{
		{`"a"`, 1},
		{`"a"|"b"`, 2},
		{`"a"|"b"|"c"`, 3},
		{`|"b"`, 2},
	} {
		got := renderString(t, tc.markup, 80)
		if n := strings.Count(got, "\n") + 1; n != tc.lines {
			t.Errorf("%q: got %d lines, want %d", tc.markup, n, tc.lines)
		}
		if strings.HasSuffix(got, "\n") {
			t.Errorf("%q: trailing newline emitted", tc.markup)
		}
	}
}

func TestRender_LiteralEscapes(t *testing.T) {
	got := renderString(t, `"a\"b\\cA"`, 80)
	want := `a"b\cA`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_WhitespaceCounts(t *testing.T) {
	got := renderString(t, `"a"  "b"*"c"`, 10)
	// printable: a, two spaces, b, c = 5 cells; one gap of 5 fill spaces.
	want := "a  b     c"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_FillTwoSegments(t *testing.T) {
	got := renderString(t, `"ab"*"cd"`, 10)
	want := "ab      cd"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if w := printableWidth(got); w != 10 {
		t.Errorf("printable width = %d, want 10", w)
	}
}

func TestRender_FillExtraCellsGoEarly(t *testing.T) {
	// remainder 5 over 2 gaps: first gap 3, second gap 2.
	got := renderString(t, `"ab"*"c"*"de"`, 10)
	want := "ab   c  de"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_SingleSegmentUnpadded(t *testing.T) {
	got := renderString(t, `"ab"`, 40)
	if got != "ab" {
		t.Errorf("got %q, want %q", got, "ab")
	}
}

func TestRender_WidthNarrowerThanContent(t *testing.T) {
	got := renderString(t, `"abcdef"*"gh"`, 4)
	want := "abcdefgh" // no negative fill
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_ConfiguredFillGlyph(t *testing.T) {
	got := renderString(t, `F(2500)"a"*"b"`, 6)
	want := "a────b"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_RandomFillIsSeedStable(t *testing.T) {
	const markup = `F(2d,3d)"a"*"b"`
	first := renderString(t, markup, 12)
	second := renderString(t, markup, 12)
	if first != second {
		t.Errorf("same seed gave different fills: %q vs %q", first, second)
	}
	gap := strings.TrimSuffix(strings.TrimPrefix(first, "a"), "b")
	if len(gap) != 10 {
		t.Fatalf("gap = %q, want 10 cells", gap)
	}
	if strings.Trim(gap, "-=") != "" {
		t.Errorf("gap %q contains glyphs outside the fill set", gap)
	}
}

func TestRender_RepeatLastLiteralFill(t *testing.T) {
	// The anchor is the literal preceding the gap; text after the gap
	// must not change what the gap repeats.
	got := renderString(t, `"=-"F(#)*"x"`, 6)
	want := "=----x"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_RepeatFillAnchorsPerGap(t *testing.T) {
	// Each gap repeats its own preceding literal.
	got := renderString(t, `"="F(#)*"+"*"y"`, 7)
	want := "===+++y"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_SeparatorPairPlain(t *testing.T) {
	// No background change: bare glyphs, no color escapes.
	got := renderString(t, `S(+,-){"a"}`, 80)
	want := "+a-\x1b[0m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_SeparatorAltPairForAngles(t *testing.T) {
	got := renderString(t, `S(+,-,[,])<"a">`, 80)
	want := "[a]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_SeparatorInversionSwapsClosing(t *testing.T) {
	got := renderString(t, `S!(+,-){"a"}`, 80)
	want := "-a+\x1b[0m"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_BubbleTwoToneEdges(t *testing.T) {
	// Opening into a black bubble from a red background: the glyph gets the
	// new background as fg and the old as bg, then the bubble colors apply.
	got := renderString(t, `S(e0b2,e0b0):r{:#000000 "hi" }`, 80)
	want := "\x1b[41m" + // :r
		"\x1b[38;2;0;0;0;41m" + // open glyph, two-tone
		"\x1b[48;2;0;0;0m hi " + // bubble bg
		"\x1b[31;48;2;0;0;0m" + // close glyph, two-tone
		"\x1b[0m" // pop resets fully
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_BubbleScenarioFillsToWidth(t *testing.T) {
	got := renderString(t, `S(e0b2,e0b0):r{:#000000 "hi" } *`, 10)
	if w := printableWidth(got); w != 10 {
		t.Errorf("printable width = %d, want 10", w)
	}
	if !strings.HasSuffix(got, "   ") {
		t.Errorf("expected trailing space fill, got %q", got)
	}
}

func TestRender_BubbleWithoutSeparatorsIsPushPop(t *testing.T) {
	got := renderString(t, `{:r"a"}"b"`, 80)
	want := "\x1b[41ma\x1b[0mb"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_ShellMarkersWrapEscapes(t *testing.T) {
	var buf strings.Builder
	r := NewRenderer(&buf, 80, ShellZsh, rand.New(rand.NewSource(1)))
	if err := r.Render(`r"x"`); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want := "%{\x1b[31m%}x"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	buf.Reset()
	r = NewRenderer(&buf, 80, ShellBash, rand.New(rand.NewSource(1)))
	if err := r.Render(`r"x"`); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	want = `\[` + "\x1b[31m" + `\]x`
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRender_Errors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		markup string
		substr string
	}{
		{"unrecognized token", `"a"@`, "unrecognized token"},
		{"unknown color letter", `:q"a"`, "unknown color letter"},
		{"short hex literal", `#12345"a"`, "malformed color literal"},
		{"bad hex digits", `#zzzzzz"a"`, "malformed color literal"},
		{"unterminated literal", `"abc`, "unterminated string literal"},
		{"bad escape", `"a\n"`, "bad escape"},
		{"bad unicode escape", `"\uzzzz"`, "bad \\u escape"},
		{"unterminated glyph list", `S(a,b`, "unterminated glyph list"},
		{"wrong separator arity", `S(a,b,c)`, "wants 2 or 4"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var buf strings.Builder
			r := NewRenderer(&buf, 80, ShellNone, rand.New(rand.NewSource(1)))
			err := r.Render(tc.markup)
			if err == nil {
				t.Fatalf("Render(%q) succeeded, want error", tc.markup)
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q does not mention %q", err, tc.substr)
			}
		})
	}
}

func TestRender_StateFreshPerLine(t *testing.T) {
	// Color set on line 1 must not suppress the same color on line 2.
	got := renderString(t, `r"a"|r"b"`, 80)
	want := "\x1b[31ma\n\x1b[31mb"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseShellMode(t *testing.T) {
	for _, tc := range []struct {
		value string
		want  ShellMode
		ok    bool
	}{
		{"", ShellNone, true},
		{"none", ShellNone, true},
		{"raw", ShellNone, true},
		{"zsh", ShellZsh, true},
		{"bash", ShellBash, true},
		{"fish", ShellNone, false},
	} {
		got, err := ParseShellMode(tc.value)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseShellMode(%q) = %v, %v; want %v", tc.value, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParseShellMode(%q) succeeded, want error", tc.value)
		}
	}
}
