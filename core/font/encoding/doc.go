/*
Package encoding maps between input bytes, glyph names and font codes.

Two kinds of tables are involved when text is shaped with an AFM font.
An InputEncoding tells which glyph an input byte denotes; it is derived from
an 8-bit character set, such as ISO-8859-1 or windows-1250. A FontEncoding
tells at which code a glyph is found in the font's encoding vector; it is
built from an encoding file, from a font's own codes, or from one of the
built-in vectors (CorkEncoding, TeXBase1).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package encoding

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'pstext.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("pstext.fonts")
}
