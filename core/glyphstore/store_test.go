package glyphstore

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketCount(t *testing.T) {
	assert.Equal(t, 1, New[int](0).Buckets())
	assert.Equal(t, 1, New[int](1).Buckets())
	assert.Equal(t, 256, New[int](200).Buckets())
	assert.Equal(t, 512, New[int](512).Buckets())
}

func TestInsertGetRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.core")
	defer teardown()
	//
	s := New[int](16)
	require.NoError(t, s.Insert("A", 722))
	require.NoError(t, s.Insert("B", 667))
	err := s.Insert("A", 1)
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	v, ok := s.Get("A")
	assert.True(t, ok)
	assert.Equal(t, 722, v)
	prev, ok := s.Replace("B", 700)
	assert.True(t, ok)
	assert.Equal(t, 667, prev)
	_, ok = s.Replace("C", 1)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
	v, ok = s.Remove("A")
	assert.True(t, ok)
	assert.Equal(t, 722, v)
	_, ok = s.Get("A")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
	// freed slot is reused
	require.NoError(t, s.Insert("D", 4))
	assert.Equal(t, 2, len(s.entries))
}

func TestRoundTripAndRehash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.core")
	defer teardown()
	//
	s := New[int](4)
	want := map[string]int{}
	for i := 0; i < 300; i++ {
		key := fmt.Sprintf("glyph%d", i)
		want[key] = i
		require.NoError(t, s.Insert(key, i))
	}
	collect := func() map[string]int {
		got := map[string]int{}
		it := s.Iterate()
		for it.Next() {
			got[it.Key()] = it.Value()
		}
		return got
	}
	assert.Equal(t, want, collect())
	require.NoError(t, s.Rehash(1024))
	assert.Equal(t, 1024, s.Buckets())
	assert.Equal(t, want, collect())
	sum := 0
	for i := 0; i < s.Buckets(); i++ {
		sum += s.BucketLen(i)
	}
	assert.Equal(t, s.Len(), sum)
	assert.Error(t, s.Rehash(0))
}

func TestHeuristics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.core")
	defer teardown()
	//
	constHash := func(string) uint32 { return 7 }
	chain := func(s *Store[int]) []string {
		var keys []string
		it := s.Iterate()
		for it.Next() {
			keys = append(keys, it.Key())
		}
		return keys
	}
	s := New[int](1, WithHash(constHash))
	for i, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, s.Insert(k, i))
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, chain(s))
	s.Get("a")
	assert.Equal(t, []string{"d", "c", "b", "a"}, chain(s))
	s.SetHeuristics(Transpose)
	s.Get("a")
	assert.Equal(t, []string{"d", "c", "a", "b"}, chain(s))
	s.Get("c")
	assert.Equal(t, []string{"c", "d", "a", "b"}, chain(s))
	s.SetHeuristics(MoveToFront)
	s.Get("b")
	assert.Equal(t, []string{"b", "c", "d", "a"}, chain(s))
	s.Remove("c")
	assert.Equal(t, []string{"b", "d", "a"}, chain(s))
	assert.Equal(t, 3, s.BucketLen(0))
}

func TestAutoRehash(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.core")
	defer teardown()
	//
	s := New[string](2, WithAutoRehash(true), WithHeuristics(MoveToFront))
	for i := 0; i < 40; i++ {
		require.NoError(t, s.Insert(fmt.Sprintf("k%02d", i), "v"))
	}
	assert.LessOrEqual(t, s.Len(), 2*s.Buckets())
	for i := 0; i < 40; i++ {
		_, ok := s.Get(fmt.Sprintf("k%02d", i))
		assert.True(t, ok)
	}
}

func TestAllocationBudget(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.core")
	defer teardown()
	//
	budget := NewBudget(2)
	s := New[int](8, WithAllocator(budget))
	require.NoError(t, s.Insert("x", 1))
	require.NoError(t, s.Insert("y", 2))
	err := s.Insert("z", 3)
	assert.True(t, errors.Is(err, ErrAllocation))
	assert.Equal(t, core.EALLOC, core.Code(err))
	assert.Equal(t, 2, s.Len())
	s.Remove("x")
	assert.Equal(t, 1, budget.Used())
	assert.NoError(t, s.Insert("z", 3))
}

func TestOneAtATime(t *testing.T) {
	assert.Equal(t, uint32(0), OneAtATime(""))
	assert.NotEqual(t, OneAtATime("ab"), OneAtATime("ba"))
}
