package builder

import "github.com/katalvlaran/lvtopo/core"

// Subspace builds the subspace topology on subset ∩ carrier: its opens are
// U ∩ S for every open U of space. Points of subset outside the carrier are
// ignored; carrier order is preserved. The display function is inherited.
//
// Errors: ErrNilSpace, core.ErrNilEq.
// Complexity: O(k·n²).
func Subspace[T any](eq *core.Eq[T], space *core.Space[T], subset []T, opts ...BuilderOption) (*core.Space[T], error) {
	if space == nil {
		return nil, builderErrorf(MethodSubspace, ErrNilSpace, "ambient")
	}
	if err := validateEq(MethodSubspace, eq); err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(opts...)

	pts := core.Filter(space.Carrier(), func(x T) bool { return core.Contains(eq, subset, x) })
	pts = core.Dedupe(eq, pts)
	opens := make([][]T, 0, space.NumOpens())
	for _, u := range space.Opens() {
		opens = append(opens, core.Intersect(eq, u, pts))
	}

	return core.NewSpace(eq, pts, opens, cfg.withDefaultShow(space.ShowOption())...)
}
