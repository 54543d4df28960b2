/*
Package textbox lays out text in a rectangular box.

Text is broken into lines at spaces, hyphens, line ends and soft hyphens.
Lines are filled greedily; a word overflowing a line may be hyphenated if
a Hyphenator is configured. Each line is aligned according to a Mode and
handed to an Emitter, which typically produces page description output.

Layout parameters (leading, paragraph indentation, line numbering etc.)
are read from typesetting registers, see package core/parameters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textbox

import "github.com/npillmayer/schuko/tracing"

// tracer traces to tracing key 'pstext.layout'.
func tracer() tracing.Trace {
	return tracing.Select("pstext.layout")
}
