package builder

import "github.com/katalvlaran/lvtopo/core"

// Discrete builds the discrete topology: every subset of the carrier is
// open. Duplicate points are removed under eq first.
//
// Opens are enumerated by bit-mask over carrier positions, ∅ first and the
// full carrier last, giving exactly 2^n opens.
//
// Errors: core.ErrNilEq, ErrTooLarge.
// Complexity: O(2^n · n).
func Discrete[T any](eq *core.Eq[T], carrier []T, opts ...BuilderOption) (*core.Space[T], error) {
	if err := validateEq(MethodDiscrete, eq); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	base := core.Dedupe(eq, carrier)
	if err := validatePowerSet(MethodDiscrete, len(base), cfg.maxPowerSet); err != nil {
		return nil, err
	}

	return core.NewSpace(eq, base, core.PowerSet(base), cfg.spaceOpts...)
}

// Indiscrete builds the indiscrete topology {∅, carrier}. For an empty
// carrier the two coincide and the single open ∅ is returned.
//
// Errors: core.ErrNilEq.
// Complexity: O(n²) for deduplication.
func Indiscrete[T any](eq *core.Eq[T], carrier []T, opts ...BuilderOption) (*core.Space[T], error) {
	if err := validateEq(MethodIndiscrete, eq); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	base := core.Dedupe(eq, carrier)

	return core.NewSpace(eq, base, [][]T{{}, base}, cfg.spaceOpts...)
}
