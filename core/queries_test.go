package core_test

import (
	"testing"

	"github.com/katalvlaran/lvtopo/core"
	"github.com/stretchr/testify/assert"
)

// TestSeparation runs the separation axioms over the standard small spaces.
func TestSeparation(t *testing.T) {
	t.Parallel()
	eqS := core.Comparable[string]()
	eqI := core.Comparable[int]()

	type axioms struct{ t0, t1, hausdorff bool }
	check := func(t *testing.T, want axioms, t0, t1, hausdorff bool) {
		t.Helper()
		assert.Equal(t, want.t0, t0, "T0")
		assert.Equal(t, want.t1, t1, "T1")
		assert.Equal(t, want.hausdorff, hausdorff, "Hausdorff")
	}

	t.Run("discrete depot/hub", func(t *testing.T) {
		s := discrete(t, eqS, []string{"Depot", "Hub"})
		check(t, axioms{true, true, true}, core.IsT0(eqS, s), core.IsT1(eqS, s), core.IsHausdorff(eqS, s))
	})
	t.Run("indiscrete weather", func(t *testing.T) {
		s := indiscrete(t, eqS, []string{"Sunny", "Rainy"})
		check(t, axioms{}, core.IsT0(eqS, s), core.IsT1(eqS, s), core.IsHausdorff(eqS, s))
	})
	t.Run("sierpinski", func(t *testing.T) {
		s := sierpinski(t, eqI)
		check(t, axioms{t0: true}, core.IsT0(eqI, s), core.IsT1(eqI, s), core.IsHausdorff(eqI, s))
	})
}

func TestSeparation_SinglePoint(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[string]()
	s := indiscrete(t, eq, []string{"only"})
	assert.True(t, core.IsHausdorff(eq, s))
	assert.True(t, core.IsT1(eq, s))
}

func TestClosureInterior(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	s := sierpinski(t, eq)

	assert.Equal(t, []int{0, 1}, core.Closure(eq, s, []int{1}), "1 is dense")
	assert.Equal(t, []int{0}, core.Closure(eq, s, []int{0}), "0 is a closed point")
	assert.Equal(t, []int{}, core.Interior(eq, s, []int{0}))
	assert.Equal(t, []int{1}, core.Interior(eq, s, []int{1}))
	assert.Equal(t, []int{0, 1}, core.Interior(eq, s, []int{1, 0}))

	assert.True(t, core.IsOpen(eq, s, []int{1}))
	assert.False(t, core.IsOpen(eq, s, []int{0}))
	assert.True(t, core.IsClosed(eq, s, []int{0}))
	assert.False(t, core.IsClosed(eq, s, []int{1}))
	assert.Equal(t, [][]int{{0, 1}, {0}, {}}, core.ClosedSets(eq, s))
}

func TestIsConnected(t *testing.T) {
	t.Parallel()
	eqI := core.Comparable[int]()
	eqS := core.Comparable[string]()

	assert.True(t, core.IsConnected(eqI, sierpinski(t, eqI)))
	assert.True(t, core.IsConnected(eqS, indiscrete(t, eqS, []string{"Sunny", "Rainy"})))
	assert.False(t, core.IsConnected(eqS, discrete(t, eqS, []string{"Depot", "Hub"})))
	assert.True(t, core.IsConnected(eqS, indiscrete(t, eqS, nil)), "empty space")
}
