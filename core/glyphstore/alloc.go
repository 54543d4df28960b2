package glyphstore

import "github.com/npillmayer/pstext/core"

// Allocator accounts for store entries. Allocate is called before an entry is
// created and may refuse it; Release is called for removed entries.
type Allocator interface {
	Allocate(n int) error
	Release(n int)
}

type unlimited struct{}

func (unlimited) Allocate(int) error { return nil }
func (unlimited) Release(int)        {}

// Unlimited is an allocator which never refuses.
var Unlimited Allocator = unlimited{}

// Budget is an allocator with a fixed maximum number of entries.
type Budget struct {
	max, used int
}

// NewBudget creates an allocator accounting for at most max entries.
func NewBudget(max int) *Budget {
	return &Budget{max: max}
}

func (b *Budget) Allocate(n int) error {
	if b.used+n > b.max {
		return core.Error(core.EALLOC, "budget of %d entries exhausted", b.max)
	}
	b.used += n
	return nil
}

func (b *Budget) Release(n int) {
	b.used -= n
	if b.used < 0 {
		b.used = 0
	}
}

// Used returns the number of entries currently accounted for.
func (b *Budget) Used() int {
	return b.used
}
