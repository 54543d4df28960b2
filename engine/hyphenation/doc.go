/*
Package hyphenation finds hyphenation points in words.

Hyphenation follows Frank Liang's algorithm, as known from TeX. A Dictionary
holds hyphenation patterns, loaded from TeX-style pattern files:

	\patterns{
	.hy3ph he2n hena4 hen5at 1na n2at 1tio 2io o2n
	}
	\hyphenation{ ta-ble }

Files in the format of libhnj, with a charset name in the first line and one
pattern per line, are understood as well. Patterns and exceptions are read
as UTF-8.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package hyphenation

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'pstext.hyphenation'.
func tracer() tracing.Trace {
	return tracing.Select("pstext.hyphenation")
}
