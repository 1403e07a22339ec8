// Package builder provides validation helpers to enforce parameter
// contracts in the generators.
//
// Each function returns an error wrapped via builderErrorf when its
// precondition is violated.
package builder

import "github.com/katalvlaran/lvtopo/core"

// validatePowerSet ensures a carrier of n points may be enumerated.
//
// Complexity: O(1) time and space.
func validatePowerSet(method string, n, max int) error {
	if n > max {
		return builderErrorf(method, ErrTooLarge, "%d points exceeds limit %d", n, max)
	}

	return nil
}

// validateEq rejects a nil equality witness.
func validateEq[T any](method string, eq *core.Eq[T]) error {
	if eq == nil {
		return builderErrorf(method, core.ErrNilEq, "carrier witness")
	}

	return nil
}

// normalize restricts every subset to the carrier, dropping stray points.
func normalize[T any](eq *core.Eq[T], carrier []T, subsets [][]T) [][]T {
	out := make([][]T, len(subsets))
	for i, s := range subsets {
		out[i] = core.Intersect(eq, s, carrier)
	}

	return out
}
