package encoding

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/pstext/core/glyphstore"
)

// FontEncoding maps glyph names to codes of a font's encoding vector.
type FontEncoding struct {
	name   string
	vector [256]string
	codes  *glyphstore.Store[int]
}

// FromVector creates a font encoding from a 256-entry encoding vector.
// Empty entries are skipped; for glyphs occurring more than once the first
// position wins.
func FromVector(name string, vector [256]string) *FontEncoding {
	fe := &FontEncoding{
		name:   name,
		vector: vector,
		codes:  glyphstore.New[int](256, glyphstore.WithHeuristics(glyphstore.MoveToFront)),
	}
	for code, glyph := range vector {
		if glyph == "" {
			continue
		}
		if err := fe.codes.Insert(glyph, code); err != nil {
			tracer().Debugf("encoding %s: glyph %s repeated at code %d", name, glyph, code)
		}
	}
	return fe
}

// Built-in font encodings.
const (
	CorkEncoding = "CorkEncoding"
	TeXBase1     = "TeXBase1"
)

// Builtin returns one of the built-in font encodings by name.
func Builtin(name string) (*FontEncoding, bool) {
	switch {
	case strings.EqualFold(name, CorkEncoding), strings.EqualFold(name, "T1"):
		return FromVector(CorkEncoding, corkEncoding), true
	case strings.EqualFold(name, TeXBase1), strings.EqualFold(name, "8r"):
		return FromVector(TeXBase1, texBase1Encoding), true
	}
	return nil, false
}

// Default returns the font encoding used for fonts without an encoding file.
func Default() *FontEncoding {
	return FromVector(CorkEncoding, corkEncoding)
}

// Name returns the name of the encoding vector.
func (fe *FontEncoding) Name() string {
	return fe.name
}

// Vector returns a copy of the encoding vector.
func (fe *FontEncoding) Vector() [256]string {
	return fe.vector
}

// HasGlyph is true if a glyph is part of the encoding.
func (fe *FontEncoding) HasGlyph(glyph string) bool {
	_, ok := fe.codes.Get(glyph)
	return ok
}

// Code returns the code of a glyph.
func (fe *FontEncoding) Code(glyph string) (int, bool) {
	return fe.codes.Get(glyph)
}

// CodeFor returns the code of a glyph as a byte to be output. Glyphs not in
// the encoding are traced and replaced by '?'.
func (fe *FontEncoding) CodeFor(glyph string) byte {
	code, ok := fe.codes.Get(glyph)
	if !ok {
		tracer().Errorf("glyph %s not in font encoding %s", glyph, fe.name)
		return '?'
	}
	return byte(code)
}

// GlyphNames returns the glyphs of the encoding, sorted by name.
func (fe *FontEncoding) GlyphNames() []string {
	set := treeset.NewWithStringComparator()
	it := fe.codes.Iterate()
	for it.Next() {
		set.Add(it.Key())
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

// Len returns the number of glyphs in the encoding.
func (fe *FontEncoding) Len() int {
	return fe.codes.Len()
}
