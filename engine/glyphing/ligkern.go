package glyphing

import (
	"github.com/npillmayer/pstext/core/font/afm"
	"github.com/npillmayer/pstext/core/font/encoding"
)

// DefaultBreakChar is the input byte which keeps glyphs from forming a
// ligature. In ISO-8859-1 it is '¦'.
const DefaultBreakChar byte = 0xA6

// DefaultMaxDepth limits the length of ligature chains.
const DefaultMaxDepth = 8

// Resolver looks up ligatures and kerning for glyphs of a font.
type Resolver struct {
	Font      *afm.Font
	Input     *encoding.InputEncoding // maps input bytes to glyph names
	BreakChar byte                    // input byte breaking ligatures
	MaxDepth  int                     // maximum recursion depth for ligature chains
}

// NewResolver creates a resolver for a font, using the default break
// character and chain length. If input is nil, ISO-8859-1 is used.
func NewResolver(font *afm.Font, input *encoding.InputEncoding) *Resolver {
	if input == nil {
		input = encoding.Latin1()
	}
	return &Resolver{
		Font:      font,
		Input:     input,
		BreakChar: DefaultBreakChar,
		MaxDepth:  DefaultMaxDepth,
	}
}

// ResolveKerning returns the kerning between two consecutive glyphs, in
// 1/1000 of the font size. Kerning is not symmetric.
func (r *Resolver) ResolveKerning(prev, cur *afm.Glyph) int {
	if prev == nil || cur == nil {
		return 0
	}
	return prev.Kerning(cur.Name)
}

// ResolveLigature checks if glyph g forms a ligature with the glyphs of the
// input text following it. It returns the name of the substitute glyph and
// the number of bytes of rest consumed by the ligature.
//
// If rest starts with the break character, g's own name is returned and the
// break character is consumed. Three-glyph ligatures take precedence: if the
// next two glyphs form a ligature which g ligates with, that one wins.
// Otherwise a ligature of g and the next glyph is looked up, and its
// substitute is again checked for a ligature with the glyph following.
func (r *Resolver) ResolveLigature(g *afm.Glyph, rest []byte) (string, int, bool) {
	depth := r.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}
	return r.resolve(g, rest, depth)
}

func (r *Resolver) resolve(g *afm.Glyph, rest []byte, depth int) (string, int, bool) {
	if g == nil || len(g.Ligatures) == 0 || len(rest) == 0 || depth == 0 {
		return "", 0, false
	}
	if rest[0] == r.BreakChar {
		return g.Name, 1, true
	}
	next, ok := r.Font.Glyph(r.Input.GlyphName(rest[0]))
	if !ok {
		return "", 0, false
	}
	// next and its successor may form a ligature which g ligates with
	if sub, n, ok := r.resolve(next, rest[1:], depth-1); ok {
		if lig, found := g.Ligature(sub); found {
			tracer().Debugf("ligature %s + %s = %s", g.Name, sub, lig.Substitute)
			return lig.Substitute, 1 + n, true
		}
	}
	lig, found := g.Ligature(next.Name)
	if !found {
		return "", 0, false
	}
	tracer().Debugf("ligature %s + %s = %s", g.Name, next.Name, lig.Substitute)
	if subglyph, ok := r.Font.Glyph(lig.Substitute); ok {
		if sub, n, ok := r.resolve(subglyph, rest[1:], depth-1); ok {
			return sub, 1 + n, true
		}
	}
	return lig.Substitute, 1, true
}
