package glyphing

import (
	"fmt"

	"github.com/npillmayer/pstext/core/font/afm"
	"github.com/npillmayer/pstext/core/font/encoding"
)

// A ShapedGlyph lives in design space, i.e. its metrics are in 1/1000 of the
// font size.
type ShapedGlyph struct {
	Name    string     // glyph name
	Code    byte       // code in the font encoding
	Glyph   *afm.Glyph // metrics of the glyph
	Cluster int        // position of the first input byte for this glyph
	Length  int        // number of input bytes for this glyph
	Kern    float64    // kerning applied before the glyph
	Advance float64    // advance after glyph has been set, including char spacing
	IsSpace bool       // glyph is an inter-word space
}

func (g ShapedGlyph) String() string {
	return fmt.Sprintf("(%s@%d, advance=%g)", g.Name, g.Cluster, g.Advance)
}

// GlyphSequence contains a sequence of shaped glyphs.
type GlyphSequence struct {
	Glyphs  []ShapedGlyph // resulting sequence of glyphs
	Size    float64       // font size in PostScript points
	W, H, D float64       // width, height, depth of bounding box, in points
}

// BoundingBox returns width, height (ascent) and depth (descent, negative
// below the baseline) of the sequence, in points.
func (seq GlyphSequence) BoundingBox() (w float64, h float64, d float64) {
	return seq.W, seq.H, seq.D
}

// Codes returns the glyphs as a string in the font encoding.
func (seq GlyphSequence) Codes() []byte {
	codes := make([]byte, len(seq.Glyphs))
	for i, g := range seq.Glyphs {
		codes[i] = g.Code
	}
	return codes
}

// Spaces counts the inter-word spaces of the sequence.
func (seq GlyphSequence) Spaces() int {
	n := 0
	for _, g := range seq.Glyphs {
		if g.IsSpace {
			n++
		}
	}
	return n
}

// Params collects shaping parameters.
type Params struct {
	Size        float64                 // font size in points
	Input       *encoding.InputEncoding // encoding of input text
	Ligatures   bool                    // form ligatures
	Kerning     bool                    // apply kerning pairs
	CharSpacing float64                 // additional space between glyphs, in points
	BreakChar   byte                    // input byte breaking ligatures
}

// DefaultParams returns parameters for a font size, with ligatures and
// kerning switched on.
func DefaultParams(size float64) Params {
	return Params{
		Size:      size,
		Input:     encoding.Latin1(),
		Ligatures: true,
		Kerning:   true,
		BreakChar: DefaultBreakChar,
	}
}

// Metrics are the dimensions of a run of text, in points.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// A Shaper creates sequences of glyphs from input text, with glyphs taken
// from an AFM font at a given size.
type Shaper struct {
	Font     *afm.Font
	Params   Params
	resolver *Resolver
}

// NewShaper creates a shaper for a font.
func NewShaper(font *afm.Font, params Params) *Shaper {
	if params.Input == nil {
		params.Input = encoding.Latin1()
	}
	r := NewResolver(font, params.Input)
	r.BreakChar = params.BreakChar
	return &Shaper{Font: font, Params: params, resolver: r}
}

// Resolver returns the ligature and kerning resolver of the shaper.
func (s *Shaper) Resolver() *Resolver {
	return s.resolver
}

// Shape maps input text to glyphs. Bytes without a glyph in the font are
// traced and skipped. Ligatures are formed only if there is no extra char
// spacing, and only if the ligature glyph is present in the font and in the
// font encoding.
func (s *Shaper) Shape(text []byte) GlyphSequence {
	seq := GlyphSequence{Size: s.Params.Size}
	if s.Params.Size <= 0 {
		return seq
	}
	charspacing := s.Params.CharSpacing * 1000 / s.Params.Size
	var asc, desc float64
	var prev *afm.Glyph
	for i := 0; i < len(text); i++ {
		name := s.Params.Input.GlyphName(text[i])
		if name == "" {
			tracer().Errorf("input byte 0x%02x at %d has no glyph name", text[i], i)
			prev = nil
			continue
		}
		g, ok := s.Font.Glyph(name)
		if !ok {
			tracer().Errorf("glyph %s not in font %s", name, s.Font.FontName)
			prev = nil
			continue
		}
		sg := ShapedGlyph{Cluster: i, Length: 1}
		if name == "space" {
			sg.IsSpace = true
			sg.Advance = s.Font.WordSpacing()
		} else {
			if s.Params.Ligatures && charspacing == 0 {
				if sub, n, ok := s.resolver.ResolveLigature(g, text[i+1:]); ok {
					if lig, ok := s.ligatureGlyph(sub); ok {
						g = lig
						sg.Length += n
					} else {
						tracer().Errorf("ligature %s not available in font %s, dissolved", sub, s.Font.FontName)
					}
				}
			}
			sg.Advance = float64(g.Width)
			if s.Params.Kerning {
				sg.Kern = float64(s.resolver.ResolveKerning(prev, g))
			}
		}
		sg.Name = g.Name
		sg.Glyph = g
		sg.Code = s.code(g)
		if i+sg.Length < len(text) {
			sg.Advance += charspacing
		}
		if ury := float64(g.BBox[3]); ury > asc {
			asc = ury
		}
		if lly := float64(g.BBox[1]); lly < desc {
			desc = lly
		}
		seq.W += sg.Kern + sg.Advance
		seq.Glyphs = append(seq.Glyphs, sg)
		if sg.IsSpace {
			prev = nil
		} else {
			prev = g
		}
		i += sg.Length - 1
	}
	scale := s.Params.Size / 1000
	seq.W *= scale
	seq.H = asc * scale
	seq.D = desc * scale
	return seq
}

func (s *Shaper) ligatureGlyph(name string) (*afm.Glyph, bool) {
	if s.Font.Encoding != nil && !s.Font.Encoding.HasGlyph(name) {
		return nil, false
	}
	return s.Font.Glyph(name)
}

func (s *Shaper) code(g *afm.Glyph) byte {
	if s.Font.Encoding != nil {
		return s.Font.Encoding.CodeFor(g.Name)
	}
	if g.Code >= 0 && g.Code < 256 {
		return byte(g.Code)
	}
	return '?'
}

// Measure returns the width, ascent and descent of input text.
func (s *Shaper) Measure(text []byte) Metrics {
	seq := s.Shape(text)
	return Metrics{Width: seq.W, Ascent: seq.H, Descent: seq.D}
}

// Width returns the width of a single glyph, in points.
func (s *Shaper) Width(glyph string) float64 {
	g, ok := s.Font.Glyph(glyph)
	if !ok {
		return 0
	}
	return float64(g.Width) * s.Params.Size / 1000
}
