/*
Package resources resolves files for fonts and other resources.

Resources are organized in categories. A category maps resource names to file
names, e.g. category FontAFM may map font "Helvetica" to "n019003l.afm".
Files are opened in a search path: first as given, then relative to every
directory of the search path (most recently added first), then relative to
the data directory and finally in the system font directories.

The search path is initialized from the global configuration, key
'resource-path', a list of directories separated by the OS path list
separator. The data directory is taken from key 'data-dir'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'pstext.resources'.
func tracer() tracing.Trace {
	return tracing.Select("pstext.resources")
}
