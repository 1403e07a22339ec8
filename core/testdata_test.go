package core_test

import (
	"testing"

	"github.com/katalvlaran/lvtopo/core"
	"github.com/stretchr/testify/require"
)

// sierpinski returns the two-point space {0, 1} with opens ∅, {1}, {0,1}.
func sierpinski(t testing.TB, eq *core.Eq[int]) *core.Space[int] {
	t.Helper()
	s, err := core.NewSpace(eq, []int{0, 1}, [][]int{{}, {1}, {0, 1}})
	require.NoError(t, err)
	return s
}

// discrete returns carrier with every subset open.
func discrete[T any](t testing.TB, eq *core.Eq[T], carrier []T) *core.Space[T] {
	t.Helper()
	s, err := core.NewSpace(eq, carrier, core.PowerSet(carrier))
	require.NoError(t, err)
	return s
}

// indiscrete returns carrier with opens ∅ and carrier.
func indiscrete[T any](t testing.TB, eq *core.Eq[T], carrier []T) *core.Space[T] {
	t.Helper()
	s, err := core.NewSpace(eq, carrier, [][]T{{}, carrier})
	require.NoError(t, err)
	return s
}
