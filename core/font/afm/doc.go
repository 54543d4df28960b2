/*
Package afm reads Adobe Font Metrics and related font data files.

A Font is loaded from an AFM file with Parse. Character metrics, kerning
pairs, inline ligatures and composite characters are taken from the AFM
data. An encoding file (see LoadEncoding) then determines the font encoding
and may contribute further ligature and kerning instructions, written as
LIGKERN comments in the manner of afm2tfm:

	% LIGKERN f i =: fi ; f l =: fl ;
	% LIGKERN space {} * ; * {} space ;

If no encoding file contains LIGKERN instructions, a built-in set of
defaults is applied (see DefaultLigKern). Finally, a protrusion file may
set the amounts by which glyphs protrude into the margins (see
LoadProtrusion).

All metrics are in units of 1/1000 of the font size.

Errors are coded as in package core: malformed data is reported with
core.EPARSE and aborts loading, lookups of glyphs not present in the font
are traced as warnings and skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package afm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'pstext.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("pstext.fonts")
}
