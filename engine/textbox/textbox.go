package textbox

import (
	"fmt"
	"strings"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/pstext/core/font/encoding"
	"github.com/npillmayer/pstext/core/parameters"
	"github.com/npillmayer/pstext/engine/glyphing"
)

// Mode is the horizontal alignment of lines within a box.
type Mode int

// Alignment modes. Justify stretches every line but the last one of a
// paragraph, FullJustify stretches the last one as well.
const (
	Left Mode = iota
	Right
	Center
	Justify
	FullJustify
)

var modeNames = [...]string{"left", "right", "center", "justify", "fulljustify"}

func (m Mode) String() string {
	if m < Left || m > FullJustify {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode returns the mode for a name. Unknown names select Left.
func ParseMode(name string) Mode {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if n == name {
			return Mode(i)
		}
	}
	tracer().Errorf("unknown layout mode %q, using left", name)
	return Left
}

// Box is a rectangle in PostScript points. A box with zero height is
// unbounded at the bottom.
type Box struct {
	Left, Bottom  float64
	Width, Height float64
}

// Emitter receives laid out lines.
type Emitter interface {
	MoveTo(arithm.Pair)
	ShowGlyphs(seq glyphing.GlyphSequence, wordSpacing float64)
}

// Hyphenator finds hyphenation points of a word. The result is indexed by
// rune position, an odd value allows a break after the rune.
type Hyphenator interface {
	Hyphenate(word string) []int
}

// Line is a laid out line of text.
type Line struct {
	Start, End   int     // input bytes text[Start:End] make up the line
	Text         []byte  // text as set, soft hyphens removed
	Hyphenated   bool    // line ends with an inserted hyphen
	X, Y         float64 // start of baseline
	Width        float64 // natural width
	WordSpacing  float64 // extra space added to each inter-word space
	Spaces       int     // number of inter-word spaces
	Number       int     // line number, 0 if not numbered
	ParagraphEnd bool    // line ends a paragraph
}

func (l Line) String() string {
	return fmt.Sprintf("line[%d:%d] %q at (%.2f,%.2f)", l.Start, l.End, l.Text, l.X, l.Y)
}

// Result is the outcome of laying out text in a box.
type Result struct {
	Unlaid    int     // number of trailing input bytes which did not fit
	Lines     []Line  // lines set
	BoxHeight float64 // height of the box actually used
}

// Option configures a layout run.
type Option func(*config)

type config struct {
	size       float64
	regs       *parameters.TypesettingRegisters
	emitter    Emitter
	hyphenator Hyphenator
	input      *encoding.InputEncoding
	blind      bool
}

// DefaultSize is the font size used if no size is given.
const DefaultSize = 12.0

// WithSize sets the font size in points.
func WithSize(size float64) Option {
	return func(c *config) {
		c.size = size
	}
}

// WithRegisters sets the typesetting registers to read layout parameters
// from. Without registers, default parameters apply.
func WithRegisters(regs *parameters.TypesettingRegisters) Option {
	return func(c *config) {
		c.regs = regs
	}
}

// WithEmitter sets the receiver of laid out lines.
func WithEmitter(e Emitter) Option {
	return func(c *config) {
		c.emitter = e
	}
}

// WithHyphenator sets a hyphenator. Hyphenation has to be switched on in
// the registers as well.
func WithHyphenator(h Hyphenator) Option {
	return func(c *config) {
		c.hyphenator = h
	}
}

// WithInputEncoding overrides the input encoding set in the registers.
func WithInputEncoding(ie *encoding.InputEncoding) Option {
	return func(c *config) {
		c.input = ie
	}
}

// Blind computes the layout without emitting anything.
func Blind() Option {
	return func(c *config) {
		c.blind = true
	}
}
