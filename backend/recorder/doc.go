/*
Package recorder records text output of the layout engine.

A Recorder receives positioning and glyph commands and keeps them for
inspection. Recorded commands may be written out as PostScript operators,
using moveto, show and widthshow.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package recorder

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'pstext.backend'.
func tracer() tracing.Trace {
	return tracing.Select("pstext.backend")
}
