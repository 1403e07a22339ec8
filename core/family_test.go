package core_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvtopo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamily_AddDedupes(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[string]()
	f := core.NewFamily(eq, []string{"a", "b", "c"})

	added, err := f.Add([]string{"b", "a"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = f.Add([]string{"a", "b", "b"})
	require.NoError(t, err)
	assert.False(t, added, "same set")

	_, err = f.Add([]string{"x"})
	assert.ErrorIs(t, err, core.ErrNotInCarrier)

	assert.True(t, f.Has([]string{"b", "a"}))
	assert.False(t, f.Has([]string{"x"}))
	assert.False(t, f.HasEmpty())
	assert.True(t, f.AddEmpty())
	assert.True(t, f.HasEmpty())
	assert.False(t, f.HasCarrier())
	assert.Equal(t, [][]string{{"a", "b"}, {}}, f.Sets())
}

func TestFamily_CloseUnderUnionIntersection(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[string]()
	f := core.NewFamily(eq, []string{"a", "b"})
	_, _ = f.Add([]string{"a"})
	_, _ = f.Add([]string{"b"})

	assert.Equal(t, 2, f.CloseUnderUnionIntersection())
	assert.Equal(t, [][]string{{"a"}, {"b"}, {"a", "b"}, {}}, f.Sets())
	assert.Equal(t, 0, f.CloseUnderUnionIntersection(), "already a fixed point")

	ok, _, _ := f.ClosedUnderUnionIntersection()
	assert.True(t, ok)
}

func TestFamily_CloseUnderIntersection(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[string]()
	f := core.NewFamily(eq, []string{"a", "b", "c"})
	f.AddCarrier()
	_, _ = f.Add([]string{"a", "b"})
	_, _ = f.Add([]string{"b", "c"})

	assert.Equal(t, 1, f.CloseUnderIntersection())
	assert.True(t, f.Has([]string{"b"}))
	assert.False(t, f.Has([]string{}), "{a,b} ∩ {b,c} is not empty")

	ok, i, j := f.ClosedUnderUnionIntersection()
	assert.True(t, ok, "{a,b} ∪ {b,c} is the carrier")
	assert.Equal(t, -1, i)
	assert.Equal(t, -1, j)
	assert.False(t, f.HasEmpty(), "closure never adds ∅ on its own")
}

func TestPowerSet(t *testing.T) {
	t.Parallel()

	assert.Equal(t, [][]string{{}, {"x"}, {"y"}, {"x", "y"}}, core.PowerSet([]string{"x", "y"}))
	assert.Equal(t, [][]int{{}}, core.PowerSet([]int{}))
	assert.Len(t, core.PowerSet([]int{1, 2, 3, 4, 5}), 32)
}

// TestFamily_ClosureIsTopology feeds random seeds to the closure and checks
// the result against Check.
func TestFamily_ClosureIsTopology(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 50; round++ {
		n := 1 + rng.IntN(6)
		carrier := make([]int, n)
		for i := range carrier {
			carrier[i] = i
		}
		f := core.NewFamily(eq, carrier)
		f.AddEmpty()
		f.AddCarrier()
		for k := rng.IntN(4); k >= 0; k-- {
			_, _ = f.Add(core.Filter(carrier, func(int) bool { return rng.IntN(2) == 0 }))
		}
		f.CloseUnderUnionIntersection()

		s, err := core.NewSpace(eq, carrier, f.Sets())
		require.NoError(t, err)
		require.NoError(t, core.Check(eq, s), "round %d", round)
	}
}
