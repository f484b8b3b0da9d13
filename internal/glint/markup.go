// Purpose: Parse prompt markup and emit ANSI-decorated, width-justified lines.
// Exports: Renderer, NewRenderer.
// Role: The markup interpreter at the center of glint.
// Invariants: each line is buffered as segments until fully parsed, because
// fill widths are only known once the whole line is; escape bytes never
// count toward a segment's printable cells; all parse errors are fatal and
// abort the render (lines already flushed stay flushed).
// Notes: token dispatch is first-match-wins in the order of the switch below.
package glint

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
)

// segment is one fill-delimited chunk of a line: accumulated bytes plus the
// printable cell count (escapes and shell markers excluded). anchor is the
// most recent literal character at the moment the segment's leading gap was
// opened; repeat-fill (F(#)) pads that gap with it.
type segment struct {
	buf    strings.Builder
	cells  int
	anchor rune
}

// separatorSet holds the configured transition glyphs. glyphs is the
// open/close pair for background-change framing; alt, when present, is used
// for <> transitions instead. inverted swaps which side counts as closing.
type separatorSet struct {
	glyphs     [2]string
	alt        [2]string
	hasAlt     bool
	inverted   bool
	configured bool
}

// glyph picks the separator for a transition. idx is the transition's
// position in "{}<>"; odd positions close, even open, further flipped by
// the inversion flag.
func (s separatorSet) glyph(idx int, closing bool) string {
	if !s.configured {
		return ""
	}
	pair := s.glyphs
	if idx >= 2 && s.hasAlt {
		pair = s.alt
	}
	if closing {
		return pair[1]
	}
	return pair[0]
}

// Renderer interprets one markup string per Render call and writes the
// result to out. It is not safe for concurrent use; a prompt render is a
// single-shot, single-goroutine affair.
type Renderer struct {
	out     io.Writer
	width   int
	wrapPre string
	wrapSuf string
	rng     *rand.Rand

	state       renderState
	stack       []renderState
	sep         separatorSet
	fill        []rune
	fillRepeat  bool
	lastLiteral rune
	line        []*segment
	linesOut    int
}

// NewRenderer builds a renderer targeting the given terminal width. mode
// selects the shell's non-printing markers. rng drives randomized fill
// glyph choice; pass nil for a time-seeded source (tests inject a fixed
// seed for deterministic fills).
func NewRenderer(out io.Writer, width int, mode ShellMode, rng *rand.Rand) *Renderer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	pre, suf := mode.wrap()
	return &Renderer{
		out:     out,
		width:   width,
		wrapPre: pre,
		wrapSuf: suf,
		rng:     rng,
	}
}

// Render parses markup and writes the decorated output. No trailing newline
// is emitted; N line-break tokens produce N+1 newline-separated lines.
func (r *Renderer) Render(markup string) error {
	r.state = renderState{}
	r.stack = nil
	r.sep = separatorSet{}
	r.fill = []rune{' '}
	r.fillRepeat = false
	r.lastLiteral = 0
	r.line = []*segment{{}}
	r.linesOut = 0

	runes := []rune(markup)
	i := 0
	for i < len(runes) {
		ch := runes[i]
		var err error
		switch {
		case ch == 'S':
			i, err = r.parseSeparators(runes, i)
		case ch == 'F':
			i, err = r.parseFill(runes, i)
		case ch == '*':
			r.line = append(r.line, &segment{anchor: r.lastLiteral})
			i++
		case ch == ' ' || ch == '\t':
			j := i
			for j < len(runes) && (runes[j] == ' ' || runes[j] == '\t') {
				j++
			}
			r.emitText(string(runes[i:j]))
			r.lastLiteral = runes[j-1]
			i = j
		case ch == '"':
			i, err = r.parseQuoted(runes, i)
		case ch == '|':
			err = r.flushLine()
			i++
		case ch == '0':
			r.emitEscape(sgrReset)
			r.state = renderState{}
			i++
		case ch == '{' || ch == '}' || ch == '<' || ch == '>':
			i, err = r.parseTransition(runes, i)
		case isSpecStart(ch):
			var spec colorSpec
			spec, i, err = parseColorSpec(runes, i)
			if err == nil {
				r.applySpec(spec)
			}
		default:
			err = fmt.Errorf("markup: unrecognized token %q at offset %d", ch, i)
		}
		if err != nil {
			return err
		}
	}
	return r.flushLine()
}

func (r *Renderer) current() *segment {
	return r.line[len(r.line)-1]
}

// emitText appends printable text to the current segment, counting its
// width in terminal cells.
func (r *Renderer) emitText(text string) {
	seg := r.current()
	seg.buf.WriteString(text)
	seg.cells += runewidth.StringWidth(text)
}

// emitEscape appends escape bytes wrapped in the shell's non-printing
// markers. Never affects the cell count.
func (r *Renderer) emitEscape(esc string) {
	seg := r.current()
	seg.buf.WriteString(r.wrapPre)
	seg.buf.WriteString(esc)
	seg.buf.WriteString(r.wrapSuf)
}

// setState diffs next against the tracked state and emits one combined SGR
// sequence covering only the attributes that changed.
func (r *Renderer) setState(next renderState) {
	params := transitionParams(r.state, next)
	if len(params) > 0 {
		r.emitEscape(sgrSequence(params))
	}
	r.state = next
}

func (r *Renderer) applySpec(spec colorSpec) {
	next := r.state
	if spec.fg.isSet() {
		next.fg = spec.fg
	}
	if spec.bg.isSet() {
		next.bg = spec.bg
	}
	if spec.bold {
		next.bold = true
	}
	if spec.italic {
		next.italic = true
	}
	r.setState(next)
}

// parseTransition handles { } < > and the color spec that may follow.
func (r *Renderer) parseTransition(runes []rune, i int) (int, error) {
	kind := runes[i]
	i++
	var spec colorSpec
	if i < len(runes) && isSpecStart(runes[i]) {
		var err error
		spec, i, err = parseColorSpec(runes, i)
		if err != nil {
			return i, err
		}
	}
	return i, r.transition(kind, spec)
}

// transition draws the separator for a region boundary and maintains the
// saved-state stack. When the background changes across the boundary, the
// glyph is drawn two-tone: new background as its foreground, old background
// as its background, so one color appears to flow into the next.
func (r *Renderer) transition(kind rune, spec colorSpec) error {
	idx := strings.IndexRune("{}<>", kind)
	closing := idx%2 == 1
	if r.sep.inverted {
		closing = !closing
	}

	if kind == '{' {
		r.stack = append(r.stack, r.state)
	}
	var restored renderState
	if kind == '}' {
		if n := len(r.stack); n > 0 {
			restored = r.stack[n-1]
			r.stack = r.stack[:n-1]
		}
	}

	oldBg := r.state.bg
	newBg := oldBg
	switch {
	case kind == '}':
		newBg = restored.bg
	case spec.bg.isSet():
		newBg = spec.bg
	}

	if glyph := r.sep.glyph(idx, closing); glyph != "" {
		if newBg != oldBg {
			var params []string
			if newBg.isSet() {
				params = append(params, newBg.fgParam())
			}
			if oldBg.isSet() {
				params = append(params, oldBg.bgParam())
			}
			if len(params) > 0 {
				r.emitEscape(sgrSequence(params))
			}
			r.emitText(glyph)
			// Both tracked colors are now glyph colors; clear them so the
			// following spec starts fresh.
			r.state.fg = Color{}
			r.state.bg = Color{}
		} else {
			r.emitText(glyph)
		}
	}

	if kind == '}' {
		r.emitEscape(sgrReset)
		r.state = renderState{}
		return nil
	}
	r.applySpec(spec)
	return nil
}

// parseSeparators handles S(a,b) and S!(a,b,c,d).
func (r *Renderer) parseSeparators(runes []rune, i int) (int, error) {
	start := i
	i++ // 'S'
	inverted := false
	if i < len(runes) && runes[i] == '!' {
		inverted = true
		i++
	}
	args, next, err := parseGlyphArgs(runes, i, start)
	if err != nil {
		return next, err
	}
	if len(args) != 2 && len(args) != 4 {
		return next, fmt.Errorf("markup: S() wants 2 or 4 glyphs, got %d at offset %d", len(args), start)
	}
	set := separatorSet{
		glyphs:     [2]string{args[0], args[1]},
		inverted:   inverted,
		configured: true,
	}
	if len(args) == 4 {
		set.alt = [2]string{args[2], args[3]}
		set.hasAlt = true
	}
	r.sep = set
	return next, nil
}

// parseFill handles F(spec). A lone # selects repeat-last-literal fill.
func (r *Renderer) parseFill(runes []rune, i int) (int, error) {
	start := i
	i++ // 'F'
	args, next, err := parseGlyphArgs(runes, i, start)
	if err != nil {
		return next, err
	}
	if len(args) == 1 && args[0] == "#" {
		r.fillRepeat = true
		r.fill = nil
		return next, nil
	}
	var glyphs []rune
	for _, arg := range args {
		glyphs = append(glyphs, []rune(arg)...)
	}
	if len(glyphs) == 0 {
		return next, fmt.Errorf("markup: empty fill set at offset %d", start)
	}
	r.fillRepeat = false
	r.fill = glyphs
	return next, nil
}

// parseGlyphArgs reads a parenthesized, comma-separated glyph list. An
// argument of two or more hex digits is a code point; anything else is
// taken literally (so a lone hex digit is still that character).
func parseGlyphArgs(runes []rune, i, start int) ([]string, int, error) {
	if i >= len(runes) || runes[i] != '(' {
		return nil, i, fmt.Errorf("markup: unrecognized token %q at offset %d", runes[start], start)
	}
	i++
	j := i
	for j < len(runes) && runes[j] != ')' {
		j++
	}
	if j >= len(runes) {
		return nil, j, fmt.Errorf("markup: unterminated glyph list at offset %d", start)
	}
	var args []string
	for _, arg := range strings.Split(string(runes[i:j]), ",") {
		args = append(args, decodeGlyph(arg))
	}
	return args, j + 1, nil
}

func decodeGlyph(arg string) string {
	if len(arg) >= 2 && isHexString(arg) {
		if cp, err := strconv.ParseUint(arg, 16, 32); err == nil {
			return string(rune(cp))
		}
	}
	return arg
}

func isHexString(s string) bool {
	for _, ch := range s {
		if !isHexDigit(ch) {
			return false
		}
	}
	return len(s) > 0
}

func isHexDigit(ch rune) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// parseQuoted handles "..." literals with \" \\ and \uXXXX escapes.
func (r *Renderer) parseQuoted(runes []rune, i int) (int, error) {
	start := i
	i++ // opening quote
	var text strings.Builder
	for i < len(runes) {
		ch := runes[i]
		switch ch {
		case '"':
			decoded := text.String()
			r.emitText(decoded)
			if tail := []rune(decoded); len(tail) > 0 {
				r.lastLiteral = tail[len(tail)-1]
			}
			return i + 1, nil
		case '\\':
			i++
			if i >= len(runes) {
				return i, fmt.Errorf("markup: unterminated string literal at offset %d", start)
			}
			switch runes[i] {
			case '"':
				text.WriteRune('"')
			case '\\':
				text.WriteRune('\\')
			case 'u':
				if i+4 >= len(runes) {
					return i, fmt.Errorf("markup: bad \\u escape at offset %d", i-1)
				}
				hex := string(runes[i+1 : i+5])
				cp, err := strconv.ParseUint(hex, 16, 32)
				if err != nil {
					return i, fmt.Errorf("markup: bad \\u escape %q at offset %d", hex, i-1)
				}
				text.WriteRune(rune(cp))
				i += 4
			default:
				return i, fmt.Errorf("markup: bad escape \\%c at offset %d", runes[i], i-1)
			}
			i++
		default:
			text.WriteRune(ch)
			i++
		}
	}
	return i, fmt.Errorf("markup: unterminated string literal at offset %d", start)
}

func isSpecStart(ch rune) bool {
	if _, ok := namedColors[ch]; ok {
		return true
	}
	return ch == ':' || ch == '#' || ch == '!' || ch == '/'
}

// parseColorSpec consumes a greedy run of color-spec tokens.
func parseColorSpec(runes []rune, i int) (colorSpec, int, error) {
	var spec colorSpec
	for i < len(runes) {
		ch := runes[i]
		switch {
		case ch == '!':
			spec.bold = true
			i++
		case ch == '/':
			spec.italic = true
			i++
		case ch == ':':
			i++
			c, next, err := parseOneColor(runes, i)
			if err != nil {
				return spec, next, err
			}
			spec.bg = c
			i = next
		case ch == '#' || isSpecLetter(ch):
			c, next, err := parseOneColor(runes, i)
			if err != nil {
				return spec, next, err
			}
			spec.fg = c
			i = next
		default:
			return spec, i, nil
		}
	}
	return spec, i, nil
}

// isSpecLetter reports whether ch is a lowercase letter, which in spec
// position must be one of the 8 color letters (anything else is fatal in
// parseOneColor, matching the grammar's unknown-color error).
func isSpecLetter(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

func parseOneColor(runes []rune, i int) (Color, int, error) {
	if i >= len(runes) {
		return Color{}, i, fmt.Errorf("markup: expected color at offset %d", i)
	}
	if runes[i] == '#' {
		if i+7 > len(runes) {
			return Color{}, i, fmt.Errorf("markup: malformed color literal %q (want #rrggbb)", string(runes[i:]))
		}
		c, err := hexColor(string(runes[i : i+7]))
		if err != nil {
			return Color{}, i, err
		}
		return c, i + 7, nil
	}
	c, err := namedColor(runes[i])
	if err != nil {
		return Color{}, i, err
	}
	return c, i + 1, nil
}

// flushLine justifies the buffered segments to the target width and writes
// the line. Render state, the bubble stack, and the repeat-fill anchor are
// per-line and start fresh afterwards.
func (r *Renderer) flushLine() error {
	segs := r.line
	var out strings.Builder
	out.WriteString(segs[0].buf.String())
	if len(segs) > 1 {
		total := 0
		for _, seg := range segs {
			total += seg.cells
		}
		remainder := r.width - total
		if remainder < 0 {
			remainder = 0
		}
		gaps := len(segs) - 1
		base, extra := remainder/gaps, remainder%gaps
		for gi := 1; gi < len(segs); gi++ {
			n := base
			if gi-1 < extra {
				n++
			}
			out.WriteString(r.fillRun(n, segs[gi].anchor))
			out.WriteString(segs[gi].buf.String())
		}
	}
	if r.linesOut > 0 {
		if _, err := io.WriteString(r.out, "\n"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(r.out, out.String()); err != nil {
		return err
	}
	r.linesOut++
	r.line = []*segment{{}}
	r.state = renderState{}
	r.stack = nil
	r.lastLiteral = 0
	return nil
}

// fillRun produces n fill cells. With more than one glyph configured each
// cell is a uniform random pick (visual texture); with one it repeats.
// anchor is the gap's captured literal, used only in repeat mode.
func (r *Renderer) fillRun(n int, anchor rune) string {
	glyphs := r.fill
	if r.fillRepeat {
		g := anchor
		if g == 0 {
			g = ' '
		}
		glyphs = []rune{g}
	}
	if len(glyphs) == 0 {
		glyphs = []rune{' '}
	}
	var b strings.Builder
	for j := 0; j < n; j++ {
		if len(glyphs) == 1 {
			b.WriteRune(glyphs[0])
		} else {
			b.WriteRune(glyphs[r.rng.Intn(len(glyphs))])
		}
	}
	return b.String()
}
