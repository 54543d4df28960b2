package textbox

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/pstext/core/font/afm"
	"github.com/npillmayer/pstext/core/font/encoding"
	"github.com/npillmayer/pstext/core/parameters"
	"github.com/npillmayer/pstext/engine/glyphing"
)

const (
	numberingOff       = ""
	numberingParagraph = "paragraph"
	numberingBox       = "box"
)

// lineState holds the state of a single layout run.
type lineState struct {
	text       []byte
	box        Box
	mode       Mode
	font       *afm.Font
	size       float64
	shaper     *glyphing.Shaper
	input      *encoding.InputEncoding
	emitter    Emitter
	hyphenator Hyphenator

	hyphenchar     byte
	hyphenminchars int
	linebreak      bool
	parbreak       bool
	leading        float64
	ascent         float64
	parindent      float64
	numindentlines int
	parindentskip  int
	parskip        float64
	numbering      string
	numbersep      float64
	left, width    float64

	ypos           float64
	parcounter     int
	parlinecounter int
	boxlinecounter int
}

// Layout sets text into a box, starting at the top of the box. Lines are
// set until either the text is exhausted or the next line would fall below
// the bottom of the box. Text is expected in the input encoding configured
// in the registers.
func Layout(font *afm.Font, text []byte, box Box, mode Mode, opts ...Option) (Result, error) {
	if font == nil {
		return Result{}, core.Error(core.EINVALID, "no font to lay out text")
	}
	cfg := &config{size: DefaultSize}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.size <= 0 {
		return Result{}, core.Error(core.EINVALID, "font size must be positive, is %g", cfg.size)
	}
	if box.Width <= 0 || box.Height < 0 {
		return Result{}, core.Error(core.EINVALID, "box %gx%g has no room for text", box.Width, box.Height)
	}
	if cfg.regs == nil {
		cfg.regs = parameters.NewTypesettingRegisters()
	}
	st, err := newLineState(font, text, box, mode, cfg)
	if err != nil {
		return Result{}, err
	}
	return st.run(), nil
}

func newLineState(font *afm.Font, text []byte, box Box, mode Mode, cfg *config) (*lineState, error) {
	regs := cfg.regs
	st := &lineState{
		text:  text,
		box:   box,
		mode:  mode,
		font:  font,
		size:  cfg.size,
		input: cfg.input,
		left:  box.Left,
		width: box.Width,
	}
	if st.input == nil {
		ie, err := encoding.NewInputEncoding(regs.S(parameters.P_INPUTENCODING))
		if err != nil {
			return nil, core.WrapError(err, core.ECONFIG, "cannot lay out text")
		}
		st.input = ie
	}
	if !cfg.blind {
		st.emitter = cfg.emitter
	}
	st.shaper = glyphing.NewShaper(font, glyphing.Params{
		Size:        cfg.size,
		Input:       st.input,
		Ligatures:   regs.B(parameters.P_LIGATURES),
		Kerning:     regs.B(parameters.P_KERNING),
		CharSpacing: regs.D(parameters.P_CHARSPACING).Points(),
		BreakChar:   byteParameter(regs, parameters.P_LIGBREAKCHAR),
	})
	st.hyphenchar = byteParameter(regs, parameters.P_HYPHENCHAR)
	if regs.B(parameters.P_HYPHENATION) {
		if cfg.hyphenator == nil {
			tracer().Infof("no hyphenation dictionary, hyphenation switched off")
		} else {
			st.hyphenator = cfg.hyphenator
		}
	}
	if st.hyphenminchars = regs.N(parameters.P_HYPHENMINCHARS); st.hyphenminchars <= 0 {
		st.hyphenminchars = 3
	}
	st.linebreak = regs.B(parameters.P_LINEBREAK)
	st.parbreak = regs.B(parameters.P_PARBREAK) && !st.linebreak
	st.ascent = font.Ascender * cfg.size / 1000
	if st.leading = regs.D(parameters.P_LEADING).Points(); st.leading <= 0 {
		st.leading = (font.Ascender - font.Descender) * cfg.size * 1.2 / 1000
	}
	st.parindent = regs.D(parameters.P_PARINDENT).Points()
	st.numindentlines = regs.N(parameters.P_NUMINDENTLINES)
	if st.parindent > 0 && st.numindentlines == 0 {
		st.numindentlines = 1
	}
	st.parindentskip = regs.N(parameters.P_PARINDENTSKIP)
	st.parskip = regs.D(parameters.P_PARSKIP).Points()
	switch m := strings.ToLower(regs.S(parameters.P_LINENUMBERMODE)); m {
	case numberingOff:
	case numberingParagraph, numberingBox:
		st.numbering = m
		space := regs.D(parameters.P_LINENUMBERSPACE).Points()
		st.numbersep = regs.D(parameters.P_LINENUMBERSEP).Points()
		st.width -= space + st.numbersep
		st.left += space + st.numbersep
	default:
		tracer().Errorf("unknown line numbering mode %q, line numbering switched off", m)
	}
	st.ypos = box.Bottom + box.Height - st.ascent
	return st, nil
}

func byteParameter(regs *parameters.TypesettingRegisters, p parameters.TypesettingParameter) byte {
	n := regs.N(p)
	if n < 0 || n > 255 {
		tracer().Errorf("parameter %s out of byte range: %d", p, n)
		return 0
	}
	return byte(n)
}

func (st *lineState) run() Result {
	var result Result
	pos, lastY := 0, st.ypos
	for pos < len(st.text) && (st.box.Height == 0 || st.ypos >= st.box.Bottom) {
		indent := st.indentation()
		linewidth := st.width - indent
		br := st.breakLine(pos, linewidth)
		line := st.setLine(br, indent, linewidth)
		tracer().Debugf("%v", line)
		result.Lines = append(result.Lines, line)
		lastY = st.ypos
		st.ypos -= st.leading
		st.boxlinecounter++
		if br.parEnd {
			st.ypos -= st.parskip
			st.parlinecounter = 0
			st.parcounter++
		} else {
			st.parlinecounter++
		}
		pos = br.next
	}
	result.Unlaid = len(st.text) - pos
	if len(result.Lines) > 0 {
		result.BoxHeight = st.box.Bottom + st.box.Height - (lastY - st.leading + st.ascent)
	}
	return result
}

func (st *lineState) indentation() float64 {
	if st.parindent <= 0 || st.parcounter < st.parindentskip {
		return 0
	}
	if st.parlinecounter < st.numindentlines {
		return st.parindent
	}
	return 0
}

// --- Line breaking ---------------------------------------------------------

// lineBreak describes where a line is broken.
type lineBreak struct {
	start, end int  // line content is text[start:end]
	next       int  // start of the following line
	hyphenated bool // a hyphen is appended to the content
	forced     bool // line ended by a newline
	parEnd     bool // line ends a paragraph
	textEnd    bool // line ends the text
}

func (st *lineState) isDelimiter(c byte) bool {
	switch c {
	case ' ', '-', '\n', '\r', '\t':
		return true
	}
	return st.isSoftHyphen(c)
}

func (st *lineState) isSoftHyphen(c byte) bool {
	return st.hyphenchar != 0 && c == st.hyphenchar
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func (st *lineState) nextDelimiter(pos int) int {
	for i := pos; i < len(st.text); i++ {
		if st.isDelimiter(st.text[i]) {
			return i
		}
	}
	return len(st.text)
}

// breakLine fills a line greedily, starting at input position start. The
// first word is always taken, even if it does not fit.
func (st *lineState) breakLine(start int, linewidth float64) lineBreak {
	br := lineBreak{start: start, end: start, next: len(st.text)}
	text := st.text
	accepted := false
	for pos := start; ; {
		d := st.nextDelimiter(pos)
		end := d
		if d < len(text) && (text[d] == '-' || st.isSoftHyphen(text[d])) {
			end = d + 1
		}
		if st.parbreak && d == pos && d < len(text) && text[d] == '\n' && d > 0 && text[d-1] == '\n' {
			br.parEnd = true
			br.next = d + 1
			break
		}
		if accepted && end > pos && st.measure(start, end, false) >= linewidth {
			br.next = pos
			st.hyphenate(&br, pos, d, linewidth)
			break
		}
		accepted = true
		br.end = end
		if d >= len(text) {
			br.next = len(text)
			br.textEnd = true
			break
		}
		br.next = d + 1
		if st.linebreak && text[d] == '\n' {
			br.forced = true
			break
		}
		pos = d + 1
	}
	if br.next >= len(text) {
		br.textEnd = true
	}
	for br.end > br.start && isBlank(text[br.end-1]) {
		br.end--
	}
	return br
}

// hyphenate tries to break the word text[pos:wend] which overflows the
// line. The rightmost hyphenation point which fits is chosen.
func (st *lineState) hyphenate(br *lineBreak, pos, wend int, linewidth float64) {
	if st.hyphenator == nil {
		return
	}
	runes := []rune(st.input.Decode(st.text[pos:wend]))
	if len(runes) != wend-pos {
		tracer().Errorf("cannot hyphenate %q in multi-byte encoding", string(runes))
		return
	}
	k := 0
	for k < len(runes) && !unicode.IsLetter(runes[k]) {
		k++
	}
	n := len(runes) - k
	if n <= 2*st.hyphenminchars {
		return
	}
	mask := st.hyphenator.Hyphenate(string(runes[k:]))
	best := -1
	for i := st.hyphenminchars - 1; i < n-st.hyphenminchars && i < len(mask); i++ {
		if mask[i]&1 == 0 {
			continue
		}
		cut := pos + k + i + 1
		if st.measure(br.start, cut, true) < linewidth {
			best = cut
		}
	}
	if best < 0 {
		return
	}
	tracer().Debugf("hyphenating %q after %d chars", string(runes[k:]), best-pos-k)
	br.end, br.next = best, best
	br.hyphenated = true
}

// render returns text[start:end] as it is set: blanks are set as spaces, soft
// hyphens are dropped except at the end, where they are set as a hyphen.
func (st *lineState) render(start, end int, hyphen bool) ([]byte, bool) {
	out := make([]byte, 0, end-start+1)
	for i := start; i < end; i++ {
		c := st.text[i]
		switch {
		case isBlank(c):
			out = append(out, ' ')
		case st.isSoftHyphen(c):
			if i == end-1 {
				return append(out, '-'), true
			}
		default:
			out = append(out, c)
		}
	}
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}
	if hyphen {
		out = append(out, '-')
	}
	return out, hyphen
}

func (st *lineState) measure(start, end int, hyphen bool) float64 {
	content, _ := st.render(start, end, hyphen)
	return st.shaper.Measure(content).Width
}

// --- Setting lines ---------------------------------------------------------

func (st *lineState) stretches(br lineBreak, spaces int) bool {
	if spaces == 0 {
		return false
	}
	switch st.mode {
	case FullJustify:
		return true
	case Justify:
		return !br.parEnd && !br.textEnd && !br.forced
	}
	return false
}

// protrusion returns the amounts first and last glyph may protrude into
// the margins, in points.
func (st *lineState) protrusion(seq glyphing.GlyphSequence) (l, r float64) {
	if len(seq.Glyphs) == 0 {
		return 0, 0
	}
	if g := seq.Glyphs[0].Glyph; g != nil {
		l = float64(g.Width) * st.size * float64(g.LeftProtrusion) / 1e6
	}
	if g := seq.Glyphs[len(seq.Glyphs)-1].Glyph; g != nil {
		r = float64(g.Width) * st.size * float64(g.RightProtrusion) / 1e6
	}
	return
}

func (st *lineState) setLine(br lineBreak, indent, linewidth float64) Line {
	content, hyphenated := st.render(br.start, br.end, br.hyphenated)
	seq := st.shaper.Shape(content)
	line := Line{
		Start:        br.start,
		End:          br.end,
		Text:         content,
		Hyphenated:   hyphenated,
		Y:            st.ypos,
		Width:        seq.W,
		Spaces:       seq.Spaces(),
		ParagraphEnd: br.parEnd,
	}
	x := st.left + indent
	switch st.mode {
	case Right:
		x += linewidth - seq.W
	case Center:
		x += (linewidth - seq.W) / 2
	case Justify, FullJustify:
		if st.stretches(br, line.Spaces) {
			l, r := st.protrusion(seq)
			line.WordSpacing = (linewidth + l + r - seq.W) / float64(line.Spaces)
			x -= l
		}
	}
	line.X = x
	switch st.numbering {
	case numberingParagraph:
		line.Number = st.parlinecounter + 1
	case numberingBox:
		line.Number = st.boxlinecounter + 1
	}
	if st.emitter != nil {
		if line.Number > 0 {
			num := st.shaper.Shape([]byte(strconv.Itoa(line.Number)))
			st.emitter.MoveTo(arithm.P(st.left-st.numbersep-num.W, line.Y))
			st.emitter.ShowGlyphs(num, 0)
		}
		st.emitter.MoveTo(arithm.P(line.X, line.Y))
		st.emitter.ShowGlyphs(seq, line.WordSpacing)
	}
	return line
}
