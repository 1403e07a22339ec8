package builder

import "github.com/katalvlaran/lvtopo/core"

// FromBase builds the topology generated by base.
//
// Implementation:
//   - Stage 1: Deduplicate the carrier; restrict each base set to it.
//   - Stage 2: Seed a core.Family with ∅, the carrier and every base set.
//   - Stage 3: Saturate under pairwise union and intersection until a full
//     pass adds nothing (core.Family.CloseUnderUnionIntersection).
//
// The result always satisfies core.Validate.
//
// Errors: core.ErrNilEq.
// Complexity: O(K²·n/64) where K ≤ 2^n is the number of resulting opens.
func FromBase[T any](eq *core.Eq[T], carrier []T, base [][]T, opts ...BuilderOption) (*core.Space[T], error) {
	if err := validateEq(MethodFromBase, eq); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)
	pts := core.Dedupe(eq, carrier)

	fam := closeBase(eq, pts, normalize(eq, pts, base))

	return core.NewSpace(eq, pts, fam.Sets(), cfg.spaceOpts...)
}

// closeBase seeds and saturates a family; seeds must already lie in pts.
func closeBase[T any](eq *core.Eq[T], pts []T, seeds [][]T) *core.Family[T] {
	fam := core.NewFamily(eq, pts)
	fam.AddEmpty()
	fam.AddCarrier()
	for _, s := range seeds {
		// seeds are carrier-normalized, Add cannot fail
		_, _ = fam.Add(s)
	}
	fam.CloseUnderUnionIntersection()

	return fam
}

// FromSubbase builds the topology generated by subbase: the subbase is
// first closed under finite intersection (the empty intersection being the
// whole carrier), and the result is handed to FromBase.
//
// Errors: core.ErrNilEq.
func FromSubbase[T any](eq *core.Eq[T], carrier []T, subbase [][]T, opts ...BuilderOption) (*core.Space[T], error) {
	if err := validateEq(MethodFromSubbase, eq); err != nil {
		return nil, err
	}
	pts := core.Dedupe(eq, carrier)

	fam := core.NewFamily(eq, pts)
	fam.AddCarrier()
	for _, s := range normalize(eq, pts, subbase) {
		_, _ = fam.Add(s)
	}
	fam.CloseUnderIntersection()

	return FromBase(eq, pts, fam.Sets(), opts...)
}
