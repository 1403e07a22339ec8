// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// impl_initial_final.go — initial (coarsest) and final (finest) topologies
// induced by families of maps.
//
// Legs erase the type of the other end of each map behind a small interface,
// so a single family may mix targets (or sources) of different point types.

package builder

import "github.com/katalvlaran/lvtopo/core"

// InitialLeg is a map from the prospective carrier T into some target space.
// Construct with Into.
type InitialLeg[T any] interface {
	// Preimages returns, for every open of the target, its preimage within
	// carrier. eq is the carrier's witness (unused by the target side).
	Preimages(eq *core.Eq[T], carrier []T) [][]T
}

// FinalLeg is a map from some source space into the prospective carrier T.
// Construct with From.
type FinalLeg[T any] interface {
	// PullsBackOpen reports whether the preimage of candidate (a subset of
	// the prospective carrier, compared with eq) is open in the source.
	PullsBackOpen(eq *core.Eq[T], candidate []T) bool
}

type intoLeg[T, Y any] struct {
	target *core.Space[Y]
	eqY    *core.Eq[Y]
	fn     func(T) Y
}

// Into builds an InitialLeg for fn: T → target.
// Panics on nil arguments (programmer error at leg construction).
func Into[T, Y any](target *core.Space[Y], eqY *core.Eq[Y], fn func(T) Y) InitialLeg[T] {
	if target == nil || eqY == nil || fn == nil {
		panic("builder: Into(nil)")
	}
	return intoLeg[T, Y]{target: target, eqY: eqY, fn: fn}
}

func (l intoLeg[T, Y]) Preimages(_ *core.Eq[T], carrier []T) [][]T {
	opens := l.target.Opens()
	out := make([][]T, len(opens))
	for i, v := range opens {
		out[i] = core.Preimage(l.eqY, carrier, l.fn, v)
	}
	return out
}

type fromLeg[S, T any] struct {
	source *core.Space[S]
	eqS    *core.Eq[S]
	fn     func(S) T
}

// From builds a FinalLeg for fn: source → T.
// Panics on nil arguments (programmer error at leg construction).
func From[S, T any](source *core.Space[S], eqS *core.Eq[S], fn func(S) T) FinalLeg[T] {
	if source == nil || eqS == nil || fn == nil {
		panic("builder: From(nil)")
	}
	return fromLeg[S, T]{source: source, eqS: eqS, fn: fn}
}

func (l fromLeg[S, T]) PullsBackOpen(eq *core.Eq[T], candidate []T) bool {
	pre := core.Preimage(eq, l.source.Carrier(), l.fn, candidate)
	return core.IsOpen(l.eqS, l.source, pre)
}

// Initial builds the coarsest topology on carrier making every leg
// continuous: the subbase of all preimages of target opens, handed to
// FromSubbase.
//
// Errors: core.ErrNilEq, ErrNilLeg.
// Complexity: O(Σ kᵢ·n·mᵢ) for the subbase, then the FromSubbase closure.
func Initial[T any](eq *core.Eq[T], carrier []T, legs []InitialLeg[T], opts ...BuilderOption) (*core.Space[T], error) {
	if err := validateEq(MethodInitial, eq); err != nil {
		return nil, err
	}
	pts := core.Dedupe(eq, carrier)

	var subbase [][]T
	for i, leg := range legs {
		if leg == nil {
			return nil, builderErrorf(MethodInitial, ErrNilLeg, "leg #%d", i)
		}
		subbase = append(subbase, leg.Preimages(eq, pts)...)
	}

	return FromSubbase(eq, pts, subbase, opts...)
}

// Final builds the finest topology on carrier making every leg continuous.
//
// Implementation:
//   - Stage 1: Enumerate all 2^n subsets of the deduplicated carrier.
//   - Stage 2: Keep a candidate iff every leg pulls it back to a listed open
//     of that leg's source (compared with the source's own witness).
//   - Stage 3: Make sure ∅ and the carrier are present.
//   - Stage 4: Validate the result; a failure is a construction error.
//
// Stage 4 is a backstop: with well-formed source topologies the kept family
// is always closed under union and intersection, since preimages commute
// with both.
//
// Errors: core.ErrNilEq, ErrNilLeg, ErrTooLarge, core.ErrAxiomViolation.
// Complexity: O(2^n · Σ (mᵢ·n + kᵢ·mᵢ²)). Exponential in n.
func Final[T any](eq *core.Eq[T], carrier []T, legs []FinalLeg[T], opts ...BuilderOption) (*core.Space[T], error) {
	if err := validateEq(MethodFinal, eq); err != nil {
		return nil, err
	}
	for i, leg := range legs {
		if leg == nil {
			return nil, builderErrorf(MethodFinal, ErrNilLeg, "leg #%d", i)
		}
	}
	cfg := newBuilderConfig(opts...)
	pts := core.Dedupe(eq, carrier)
	if err := validatePowerSet(MethodFinal, len(pts), cfg.maxPowerSet); err != nil {
		return nil, err
	}

	fam := core.NewFamily(eq, pts)
	for _, cand := range core.PowerSet(pts) {
		if pullsBackEverywhere(eq, legs, cand) {
			_, _ = fam.Add(cand)
		}
	}
	fam.AddEmpty()
	fam.AddCarrier()

	space, err := core.NewSpace(eq, pts, fam.Sets(), cfg.spaceOpts...)
	if err != nil {
		return nil, builderErrorf(MethodFinal, err, "assemble")
	}
	if err := core.Check(eq, space); err != nil {
		return nil, builderErrorf(MethodFinal, err, "result")
	}

	return space, nil
}

func pullsBackEverywhere[T any](eq *core.Eq[T], legs []FinalLeg[T], cand []T) bool {
	for _, leg := range legs {
		if !leg.PullsBackOpen(eq, cand) {
			return false
		}
	}
	return true
}
