/*
Package glyphstore implements an associative store keyed by strings.

Fonts keep their glyph records, and encodings their glyph codes, in stores of
this package. A store is a hash table with chained buckets. Chains are doubly
linked through indices into an arena of entries, which keeps entries compact
and lets removed slots be reused through a free list.

A store may reorganize its chains on lookup hits (see Heuristics), may grow
automatically when chains get long, and accounts for entries with an
Allocator, which callers may use to put a budget on memory use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphstore

import (
	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'pstext.core'.
func tracer() tracing.Trace {
	return tracing.Select("pstext.core")
}

// ErrDuplicateKey is returned when inserting a key which is already present.
var ErrDuplicateKey = core.Error(core.EINVALID, "duplicate key")

// ErrAllocation is returned when the allocator refuses to account for a new entry.
var ErrAllocation = core.Error(core.EALLOC, "allocation refused")
