package afm

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/pstext/core/font/encoding"
	"github.com/npillmayer/pstext/core/glyphstore"
)

// LigatureOp is one of the ligature operations of LIGKERN instructions.
// The operations differ in which of the glyphs are retained and where
// processing continues (see the afm2tfm documentation).
type LigatureOp int

const (
	LigSimple      LigatureOp = iota // =:
	LigKeepLeft                      // |=:
	LigKeepLeftAdv                   // |=:>
	LigKeepRight                     // =:|
	LigKeepRightAdv                  // =:|>
	LigKeepBoth                      // |=:|
	LigKeepBothAdv                   // |=:|>
	LigKeepBothAdv2                  // |=:|>>
)

var ligatureOps = [...]string{"=:", "|=:", "|=:>", "=:|", "=:|>", "|=:|", "|=:|>", "|=:|>>"}

func (op LigatureOp) String() string {
	if op < 0 || int(op) >= len(ligatureOps) {
		return "?"
	}
	return ligatureOps[op]
}

// ParseLigatureOp finds a ligature operation by its LIGKERN notation.
func ParseLigatureOp(s string) (LigatureOp, bool) {
	for i, o := range ligatureOps {
		if o == s {
			return LigatureOp(i), true
		}
	}
	return -1, false
}

// Kern is a kerning pair, attached to the first glyph of the pair.
type Kern struct {
	Successor string
	Delta     int
}

// Ligature is a ligature rule, attached to the first glyph of the pair.
// Substitute replaces the glyph followed by Successor.
type Ligature struct {
	Successor    string
	Substitute   string
	Op           LigatureOp
	BoundaryLeft bool // successor is the boundary "||"
}

// CompositePart is a part of a composite character, displaced from the
// composite's origin.
type CompositePart struct {
	Part   string
	DX, DY int
}

// Glyph holds the metrics of a single glyph. Kerns and Ligatures are
// ordered with the most recently declared entry first.
type Glyph struct {
	Name            string
	Code            int // code in the font's own encoding, -1 if unencoded
	Width           int
	BBox            [4]int // llx, lly, urx, ury
	LeftProtrusion  int    // in 1/1000 of the glyph's width
	RightProtrusion int
	Ligatures       []Ligature
	Kerns           []Kern
	KernEquivalents []string
	Composite       []CompositePart
}

// Kerning returns the kerning between g and a successor glyph, or 0.
// The first matching pair wins.
func (g *Glyph) Kerning(successor string) int {
	if g == nil {
		return 0
	}
	for _, k := range g.Kerns {
		if k.Successor == successor {
			return k.Delta
		}
	}
	return 0
}

// Ligature returns the first ligature rule of g for a successor.
func (g *Glyph) Ligature(successor string) (Ligature, bool) {
	if g != nil {
		for _, l := range g.Ligatures {
			if l.Successor == successor {
				return l, true
			}
		}
	}
	return Ligature{}, false
}

// Font holds the metrics of a font, as read from AFM data.
type Font struct {
	FontName           string
	FullName           string
	FamilyName         string
	Weight             string
	EncodingScheme     string
	ItalicAngle        float64
	UnderlinePosition  float64
	UnderlineThickness float64
	Ascender           float64
	Descender          float64
	CapHeight          float64
	XHeight            float64
	FixedPitch         bool
	BoundaryChar       int                    // -1 if not set
	Encoding           *encoding.FontEncoding // nil until an encoding is applied
	wordSpace          float64
	glyphs             *glyphstore.Store[*Glyph]
}

func newFont(opts []Option) *Font {
	o := options{heuristic: glyphstore.MoveToFront}
	for _, opt := range opts {
		opt(&o)
	}
	storeOpts := []glyphstore.Option{
		glyphstore.WithHeuristics(o.heuristic),
		glyphstore.WithAutoRehash(true),
	}
	if o.alloc != nil {
		storeOpts = append(storeOpts, glyphstore.WithAllocator(o.alloc))
	}
	return &Font{
		BoundaryChar: -1,
		glyphs:       glyphstore.New[*Glyph](512, storeOpts...),
	}
}

// Option configures the loading of a font.
type Option func(*options)

type options struct {
	alloc     glyphstore.Allocator
	heuristic glyphstore.Heuristics
}

// WithAllocator accounts glyph records of the font with an allocator.
func WithAllocator(a glyphstore.Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// WithHeuristics sets the lookup heuristics of the font's glyph store.
func WithHeuristics(h glyphstore.Heuristics) Option {
	return func(o *options) {
		o.heuristic = h
	}
}

// Glyph looks up a glyph by name.
func (f *Font) Glyph(name string) (*Glyph, bool) {
	if name == "" {
		return nil, false
	}
	return f.glyphs.Get(name)
}

// HasGlyph is true if the font contains a glyph.
func (f *Font) HasGlyph(name string) bool {
	_, ok := f.Glyph(name)
	return ok
}

// GlyphCount returns the number of glyphs of the font.
func (f *Font) GlyphCount() int {
	return f.glyphs.Len()
}

// GlyphNames returns the names of all glyphs, sorted.
func (f *Font) GlyphNames() []string {
	set := treeset.NewWithStringComparator()
	it := f.glyphs.Iterate()
	for it.Next() {
		set.Add(it.Key())
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

func (f *Font) addGlyph(g *Glyph) error {
	return f.glyphs.Insert(g.Name, g)
}

// AddKerning adds a kerning pair. Both glyphs must exist. An existing pair
// for the same successor is shadowed, not replaced.
func (f *Font) AddKerning(first, second string, delta int) error {
	g1, ok1 := f.Glyph(first)
	_, ok2 := f.Glyph(second)
	if !ok1 || !ok2 {
		return core.Error(core.ELOOKUP, "kerning pair %s %s: glyph not in font %s",
			first, second, f.FontName)
	}
	for _, k := range g1.Kerns {
		if k.Successor == second {
			tracer().Infof("kerning pair %s %s already defined", first, second)
			break
		}
	}
	g1.Kerns = append([]Kern{{Successor: second, Delta: delta}}, g1.Kerns...)
	return nil
}

// AddLigature adds a ligature rule: first followed by second is replaced by
// substitute. All glyphs must exist. An existing rule for the same successor
// is shadowed, not replaced.
func (f *Font) AddLigature(first, second, substitute string) error {
	g1, ok1 := f.Glyph(first)
	_, ok2 := f.Glyph(second)
	_, ok3 := f.Glyph(substitute)
	if !ok1 || !ok2 || !ok3 {
		return core.Error(core.ELOOKUP, "ligature %s %s =: %s: glyph not in font %s",
			first, second, substitute, f.FontName)
	}
	if _, exists := g1.Ligature(second); exists {
		tracer().Infof("ligature %s %s already defined", first, second)
	}
	g1.Ligatures = append([]Ligature{{Successor: second, Substitute: substitute}}, g1.Ligatures...)
	return nil
}

// defaultWordSpace is the width of a space for fonts without a space glyph.
const defaultWordSpace = 500

// SetWordSpacing sets the width of spaces between words. A value of 0 resets
// word spacing to the width of the font's space glyph. Other values are in
// PostScript points and relative to a font size.
func (f *Font) SetWordSpacing(value, size float64) {
	if value != 0 && size > 0 {
		f.wordSpace = value * 1000 / size
		return
	}
	f.wordSpace = defaultWordSpace
	if space, ok := f.Glyph("space"); ok {
		f.wordSpace = float64(space.Width)
	}
}

// WordSpacing returns the current width of spaces, in 1/1000 of the font size.
func (f *Font) WordSpacing() float64 {
	return f.wordSpace
}
