/*
Package glyphing turns input text into sequences of positioned glyphs.

Input text is a sequence of bytes in an 8-bit input encoding. Each byte is
mapped to a glyph of an AFM font. Neighbouring glyphs may form ligatures and
are kerned, both according to the rules stored with the font (see package
afm). The Resolver implements the lookup of ligatures and kerning pairs,
the Shaper uses it to produce glyph sequences and to measure text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'pstext.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("pstext.glyphs")
}
