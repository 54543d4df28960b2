package glyphstore

import (
	"github.com/npillmayer/pstext/core"
)

// HashFunc computes the hash value of a key.
type HashFunc func(key string) uint32

// Heuristics selects how chains are reorganized on lookup hits.
type Heuristics int

const (
	None        Heuristics = iota // chains keep insertion order
	MoveToFront                   // a hit moves to the head of its chain
	Transpose                     // a hit swaps places with its predecessor
)

func (h Heuristics) String() string {
	switch h {
	case MoveToFront:
		return "move-to-front"
	case Transpose:
		return "transpose"
	}
	return "none"
}

const nilIndex = -1

type entry[V any] struct {
	key        string
	value      V
	prev, next int
}

// Store is a hash table from strings to values of type V.
// A Store is not safe for concurrent use.
type Store[V any] struct {
	entries   []entry[V] // arena
	free      int        // head of the free list, chained by next
	heads     []int      // first entry of each bucket
	counts    []int      // chain length of each bucket
	sizeMask  uint32
	count     int
	hash      HashFunc
	alloc     Allocator
	heuristic Heuristics
	autogrow  bool
	rehashing bool
}

// Option configures a store.
type Option func(*options)

type options struct {
	hash      HashFunc
	alloc     Allocator
	heuristic Heuristics
	autogrow  bool
}

// WithHash sets the hash function. The default is OneAtATime.
func WithHash(h HashFunc) Option {
	return func(o *options) {
		if h != nil {
			o.hash = h
		}
	}
}

// WithAllocator sets the allocator accounting for entries.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		if a != nil {
			o.alloc = a
		}
	}
}

// WithHeuristics sets the chain reorganization on lookup hits.
func WithHeuristics(h Heuristics) Option {
	return func(o *options) {
		o.heuristic = h
	}
}

// WithAutoRehash lets the store double its bucket count whenever it holds
// more than twice as many entries as buckets.
func WithAutoRehash(on bool) Option {
	return func(o *options) {
		o.autogrow = on
	}
}

// New creates a store with a bucket count of the next power of two not less
// than sizeHint.
func New[V any](sizeHint int, opts ...Option) *Store[V] {
	o := options{hash: OneAtATime, alloc: Unlimited}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Store[V]{
		free:      nilIndex,
		hash:      o.hash,
		alloc:     o.alloc,
		heuristic: o.heuristic,
		autogrow:  o.autogrow,
	}
	s.initBuckets(sizeHint)
	return s
}

func bucketCount(sizeHint int) int {
	n := 1
	for n < sizeHint {
		n <<= 1
	}
	return n
}

func (s *Store[V]) initBuckets(sizeHint int) {
	n := bucketCount(sizeHint)
	s.heads = make([]int, n)
	for i := range s.heads {
		s.heads[i] = nilIndex
	}
	s.counts = make([]int, n)
	s.sizeMask = uint32(n - 1)
}

// OneAtATime is Bob Jenkins' one-at-a-time hash over the bytes of a key.
func OneAtATime(key string) uint32 {
	var h uint32
	for i := 0; i < len(key); i++ {
		h += uint32(key[i])
		h += h << 10
		h ^= h >> 6
	}
	h += h << 3
	h ^= h >> 11
	h += h << 15
	return h
}

// Len returns the number of entries.
func (s *Store[V]) Len() int {
	return s.count
}

// Buckets returns the number of buckets.
func (s *Store[V]) Buckets() int {
	return len(s.heads)
}

// BucketLen returns the chain length of bucket i.
func (s *Store[V]) BucketLen(i int) int {
	if i < 0 || i >= len(s.counts) {
		return 0
	}
	return s.counts[i]
}

// SetHeuristics changes the chain reorganization for subsequent lookups.
func (s *Store[V]) SetHeuristics(h Heuristics) {
	s.heuristic = h
}

// SetAutoRehash switches automatic growing on or off.
func (s *Store[V]) SetAutoRehash(on bool) {
	s.autogrow = on
}

func (s *Store[V]) bucket(key string) int {
	return int(s.hash(key) & s.sizeMask)
}

func (s *Store[V]) find(key string) (int, int) {
	b := s.bucket(key)
	for i := s.heads[b]; i != nilIndex; i = s.entries[i].next {
		if len(s.entries[i].key) == len(key) && s.entries[i].key == key {
			return b, i
		}
	}
	return b, nilIndex
}

// Insert adds a new entry at the head of its bucket's chain. Existing keys are
// never overwritten: inserting a present key returns ErrDuplicateKey.
func (s *Store[V]) Insert(key string, value V) error {
	b, i := s.find(key)
	if i != nilIndex {
		return core.WrapError(ErrDuplicateKey, core.EINVALID, "duplicate key %q", key)
	}
	if err := s.alloc.Allocate(1); err != nil {
		return core.WrapError(ErrAllocation, core.EALLOC, "cannot store %q: %s",
			key, core.UserMessage(err))
	}
	s.link(b, s.newEntry(key, value))
	if s.autogrow && !s.rehashing && s.count > 2*len(s.heads) {
		tracer().Debugf("store with %d entries grows to %d buckets", s.count, 2*len(s.heads))
		s.rebuild(2 * len(s.heads))
	}
	return nil
}

func (s *Store[V]) newEntry(key string, value V) int {
	e := entry[V]{key: key, value: value, prev: nilIndex, next: nilIndex}
	if s.free != nilIndex {
		i := s.free
		s.free = s.entries[i].next
		s.entries[i] = e
		return i
	}
	s.entries = append(s.entries, e)
	return len(s.entries) - 1
}

// link prepends entry i to the chain of bucket b.
func (s *Store[V]) link(b, i int) {
	e := &s.entries[i]
	e.prev = nilIndex
	e.next = s.heads[b]
	if e.next != nilIndex {
		s.entries[e.next].prev = i
	}
	s.heads[b] = i
	s.counts[b]++
	s.count++
}

func (s *Store[V]) unlink(b, i int) {
	e := &s.entries[i]
	if e.prev != nilIndex {
		s.entries[e.prev].next = e.next
	} else {
		s.heads[b] = e.next
	}
	if e.next != nilIndex {
		s.entries[e.next].prev = e.prev
	}
	e.prev, e.next = nilIndex, nilIndex
	s.counts[b]--
	s.count--
}

// Get looks up a key. A hit is subject to the store's heuristics.
func (s *Store[V]) Get(key string) (V, bool) {
	b, i := s.find(key)
	if i == nilIndex {
		var zero V
		return zero, false
	}
	i = s.promote(b, i)
	return s.entries[i].value, true
}

// Replace sets the value of an existing key and returns the previous value.
// Absent keys are not inserted.
func (s *Store[V]) Replace(key string, value V) (V, bool) {
	b, i := s.find(key)
	if i == nilIndex {
		var zero V
		return zero, false
	}
	i = s.promote(b, i)
	prev := s.entries[i].value
	s.entries[i].value = value
	return prev, true
}

// Remove deletes a key and returns its value.
func (s *Store[V]) Remove(key string) (V, bool) {
	var zero V
	b, i := s.find(key)
	if i == nilIndex {
		return zero, false
	}
	value := s.entries[i].value
	s.unlink(b, i)
	s.entries[i] = entry[V]{value: zero, prev: nilIndex, next: s.free}
	s.free = i
	s.alloc.Release(1)
	return value, true
}

// promote applies the heuristics to entry i of bucket b and returns the
// entry's (unchanged) arena index.
func (s *Store[V]) promote(b, i int) int {
	if s.rehashing || s.entries[i].prev == nilIndex {
		return i
	}
	switch s.heuristic {
	case MoveToFront:
		s.unlink(b, i)
		s.link(b, i)
	case Transpose:
		p := s.entries[i].prev
		pp := s.entries[p].prev
		n := s.entries[i].next
		// pp <-> i <-> p <-> n
		if pp != nilIndex {
			s.entries[pp].next = i
		} else {
			s.heads[b] = i
		}
		s.entries[i].prev = pp
		s.entries[i].next = p
		s.entries[p].prev = i
		s.entries[p].next = n
		if n != nilIndex {
			s.entries[n].prev = p
		}
	}
	return i
}

// Rehash re-inserts every entry into a table with a bucket count of the next
// power of two not less than sizeHint. Heuristics are suspended meanwhile.
func (s *Store[V]) Rehash(sizeHint int) error {
	if sizeHint < 1 {
		return core.Error(core.EINVALID, "rehash size hint must be positive, is %d", sizeHint)
	}
	s.rebuild(sizeHint)
	return nil
}

func (s *Store[V]) rebuild(sizeHint int) {
	s.rehashing = true
	defer func() { s.rehashing = false }()
	old := s.heads
	s.initBuckets(sizeHint)
	s.count = 0
	// relink entries in place; chains are walked tail to head so that relative
	// order within a new bucket follows the old order
	for _, head := range old {
		tail := nilIndex
		for i := head; i != nilIndex; i = s.entries[i].next {
			tail = i
		}
		for i := tail; i != nilIndex; {
			prev := s.entries[i].prev
			s.link(s.bucket(s.entries[i].key), i)
			i = prev
		}
	}
}

// Iterator walks the entries of a store, bucket by bucket and along each
// chain. The store must not be modified while iterating.
type Iterator[V any] struct {
	s      *Store[V]
	bucket int
	cur    int
	next   int
}

// Iterate returns a fresh iterator positioned before the first entry.
func (s *Store[V]) Iterate() *Iterator[V] {
	return &Iterator[V]{s: s, bucket: -1, cur: nilIndex, next: nilIndex}
}

// Next advances the iterator and reports whether an entry is available.
func (it *Iterator[V]) Next() bool {
	for it.next == nilIndex {
		it.bucket++
		if it.bucket >= len(it.s.heads) {
			it.cur = nilIndex
			return false
		}
		it.next = it.s.heads[it.bucket]
	}
	it.cur = it.next
	it.next = it.s.entries[it.cur].next
	return true
}

// Key returns the key of the current entry.
func (it *Iterator[V]) Key() string {
	if it.cur == nilIndex {
		return ""
	}
	return it.s.entries[it.cur].key
}

// Value returns the value of the current entry.
func (it *Iterator[V]) Value() V {
	if it.cur == nilIndex {
		var zero V
		return zero
	}
	return it.s.entries[it.cur].value
}
