package core_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvtopo/core"
	"github.com/stretchr/testify/assert"
)

func TestEq_Witness(t *testing.T) {
	t.Parallel()

	fold := core.NewEq("fold", strings.EqualFold)
	assert.True(t, fold.Equal("Hub", "HUB"))
	assert.False(t, fold.Equal("Hub", "Depot"))
	assert.Equal(t, "fold", fold.Name())

	a, b := core.Comparable[int](), core.Comparable[int]()
	assert.NotSame(t, a, b, "each Comparable call is a fresh witness")
	assert.True(t, a.Equal(3, 3))
	assert.Equal(t, "==[int]", a.Name())

	assert.Panics(t, func() { core.NewEq[int]("nil", nil) })
}

func TestPair(t *testing.T) {
	t.Parallel()

	eq := core.PairEq(core.Comparable[string](), core.NewEq("fold", strings.EqualFold))
	p := core.MakePair("x", "Up")

	assert.Equal(t, "(x, Up)", p.String())
	assert.True(t, eq.Equal(p, core.MakePair("x", "UP")))
	assert.False(t, eq.Equal(p, core.MakePair("y", "Up")))
	assert.Equal(t, "==[string]×fold", eq.Name())
}

func TestSum(t *testing.T) {
	t.Parallel()

	eq := core.SumEq(core.Comparable[int](), core.Comparable[string]())
	l := core.Inl[int, string](7)
	r := core.Inr[int]("seven")

	assert.Equal(t, core.Left, l.Side())
	assert.Equal(t, core.Right, r.Side())
	assert.Equal(t, "inl(7)", l.String())
	assert.Equal(t, "inr(seven)", r.String())
	assert.Equal(t, "inl", core.Left.String())

	v, ok := l.Left()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, ok = l.Right()
	assert.False(t, ok)

	assert.True(t, eq.Equal(l, core.Inl[int, string](7)))
	assert.False(t, eq.Equal(l, core.Inl[int, string](8)))
	assert.False(t, eq.Equal(core.Inl[int, string](0), core.Inr[int]("")), "tags differ")

	size := func(s core.Sum[int, string]) int {
		return core.Case(s, func(n int) int { return n }, func(s string) int { return len(s) })
	}
	assert.Equal(t, 7, size(l))
	assert.Equal(t, 5, size(r))
}

func TestWithShow(t *testing.T) {
	t.Parallel()

	eq := core.Comparable[int]()
	s, err := core.NewSpace(eq, []int{1, 2}, nil, core.WithShow(func(n int) string {
		return strings.Repeat("*", n)
	}))
	assert.NoError(t, err)
	assert.Equal(t, "**", s.Show(2))
	assert.Equal(t, "{*, **}", s.ShowSet([]int{1, 2}))
	assert.Equal(t, "{}", s.ShowSet(nil))

	plain := core.Raw([]int{1}, nil)
	assert.Equal(t, "1", plain.Show(1))

	assert.Panics(t, func() { core.WithShow[int](nil) })
}
