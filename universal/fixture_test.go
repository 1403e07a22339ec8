package universal_test

import (
	"testing"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
	"github.com/stretchr/testify/require"
)

// world holds a few small spaces sharing two witnesses, so arrows built
// between them line up by identity.
type world struct {
	ints *core.Eq[int]
	strs *core.Eq[string]
}

func newWorld() world {
	return world{ints: core.Comparable[int](), strs: core.Comparable[string]()}
}

func (w world) discreteInts(t *testing.T, pts ...int) *core.Space[int] {
	t.Helper()
	s, err := builder.Discrete(w.ints, pts)
	require.NoError(t, err)
	return s
}

func (w world) discreteStrs(t *testing.T, pts ...string) *core.Space[string] {
	t.Helper()
	s, err := builder.Discrete(w.strs, pts)
	require.NoError(t, err)
	return s
}

// sierpinski is {0, 1} with 1 the open point.
func (w world) sierpinski(t *testing.T) *core.Space[int] {
	t.Helper()
	s, err := builder.FromBase(w.ints, []int{0, 1}, [][]int{{1}})
	require.NoError(t, err)
	return s
}

func mustMap[A, B any](t *testing.T, src *core.Space[A], dst *core.Space[B], eqA *core.Eq[A], eqB *core.Eq[B], fn func(A) B, name string) *continuity.Map[A, B] {
	t.Helper()
	m, err := continuity.New(src, dst, eqA, eqB, fn, continuity.WithName(name))
	require.NoError(t, err)
	return m
}

func lookup[K comparable, V any](table map[K]V) func(K) V {
	return func(k K) V { return table[k] }
}
