package recorder

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/pstext/engine/glyphing"
)

// Op is the type of a recorded command.
type Op int

const (
	MoveTo Op = iota
	Show
)

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "moveto"
	case Show:
		return "show"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Command is a recorded output command.
type Command struct {
	Op          Op
	At          arithm.Pair            // target of MoveTo
	Glyphs      glyphing.GlyphSequence // glyphs of Show
	WordSpacing float64                // extra space per inter-word space of Show
}

func (c Command) String() string {
	if c.Op == MoveTo {
		return fmt.Sprintf("moveto %s", c.At)
	}
	return fmt.Sprintf("show %q +%.3f", c.Glyphs.Codes(), c.WordSpacing)
}

// Recorder collects output commands. It is not safe for concurrent use.
type Recorder struct {
	commands []Command
}

// New creates an empty recorder.
func New() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// MoveTo records a move of the current point.
func (r *Recorder) MoveTo(p arithm.Pair) {
	r.record(Command{Op: MoveTo, At: p})
}

// ShowGlyphs records a run of glyphs. wordSpacing is added to the advance of
// every inter-word space.
func (r *Recorder) ShowGlyphs(seq glyphing.GlyphSequence, wordSpacing float64) {
	r.record(Command{Op: Show, Glyphs: seq, WordSpacing: wordSpacing})
}

func (r *Recorder) record(c Command) {
	tracer().Debugf("%v", c)
	r.commands = append(r.commands, c)
}

// Commands returns the recorded commands.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset drops all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// WritePostScript writes a debug listing of the recorded commands, one
// PostScript-style operator per line. It is meant for inspection and carries
// no prolog, font setup or page structure. Kerning is listed as relative
// moves between sub-runs of glyphs.
func (r *Recorder) WritePostScript(w io.Writer) error {
	for _, c := range r.commands {
		var err error
		switch c.Op {
		case MoveTo:
			_, err = fmt.Fprintf(w, "%s %s moveto\n", num(c.At.X()), num(c.At.Y()))
		case Show:
			err = writeShow(w, c)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func writeShow(w io.Writer, c Command) error {
	seq := c.Glyphs
	scale := seq.Size / 1000
	var spaceCode byte = ' '
	start := 0
	for i, g := range seq.Glyphs {
		if g.IsSpace {
			spaceCode = g.Code
		}
		if g.Kern == 0 || i == 0 {
			continue
		}
		if err := show(w, seq.Glyphs[start:i], spaceCode, c.WordSpacing); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s 0 rmoveto\n", num(g.Kern*scale)); err != nil {
			return err
		}
		start = i
	}
	if len(seq.Glyphs) > 0 && seq.Glyphs[0].Kern != 0 {
		tracer().Debugf("kerning before first glyph %s ignored", seq.Glyphs[0].Name)
	}
	return show(w, seq.Glyphs[start:], spaceCode, c.WordSpacing)
}

func show(w io.Writer, glyphs []glyphing.ShapedGlyph, spaceCode byte, wordSpacing float64) error {
	if len(glyphs) == 0 {
		return nil
	}
	codes := make([]byte, len(glyphs))
	spaces := false
	for i, g := range glyphs {
		codes[i] = g.Code
		spaces = spaces || g.IsSpace
	}
	var err error
	if wordSpacing != 0 && spaces {
		_, err = fmt.Fprintf(w, "%s 0 %d %s widthshow\n", num(wordSpacing), spaceCode, String(codes))
	} else {
		_, err = fmt.Fprintf(w, "%s show\n", String(codes))
	}
	return err
}

// String formats bytes as a PostScript string literal. Parentheses and
// backslashes are escaped, bytes outside of printable ASCII are written as
// octal escapes.
func String(codes []byte) string {
	var b strings.Builder
	b.WriteByte('(')
	for _, c := range codes {
		switch {
		case c == '(' || c == ')' || c == '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case c < 32 || c > 126:
			fmt.Fprintf(&b, "\\%03o", c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(')')
	return b.String()
}

func num(x float64) string {
	s := fmt.Sprintf("%.2f", x)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
