/*
Package fontregistry manages a registry for loaded fonts.

Fonts are found by name. The registry locates the font's metrics file, applies
a font encoding and reads margin protrusion values, then caches the font for
later requests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'pstext.fonts'
func tracer() tracing.Trace {
	return tracing.Select("pstext.fonts")
}
