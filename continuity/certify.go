package continuity

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

// Certify decides whether fn: source → target is continuous.
//
// For every open V of target the preimage {x ∈ source : fn(x) ∈ V} is
// computed (membership via eqT) and looked up among the opens of source
// (set equality via eqS). All violations are collected, not just the first.
//
// On success the witness Holds, its diagnostics list every (open, preimage)
// pair with the configured note (NoteDirect unless WithNote), and Verify
// re-runs this same check.
//
// On failure the returned witness is non-nil and the error is a
// *NotContinuousError carrying it.
//
// Errors: core.ErrNilSpace, core.ErrNilEq, ErrNilFunc, *NotContinuousError.
// Complexity: O(kB·(nA·nB + kA·nA²)).
func Certify[A, B any](source *core.Space[A], target *core.Space[B], eqS *core.Eq[A], eqT *core.Eq[B], fn func(A) B, opts ...Option) (*Witness[A, B], error) {
	if err := validateArgs(source, target, eqS, eqT, fn); err != nil {
		return nil, err
	}
	cfg := newConfig(NoteDirect, opts...)

	records, failures := evaluate(source, target, eqS, eqT, fn)
	w := &Witness[A, B]{
		holds:       len(failures) == 0,
		failures:    failures,
		diagnostics: &Diagnostics[A, B]{Preimages: records, Note: cfg.note},
		verify:      verifier(source, target, eqS, eqT, fn),
	}
	if !w.holds {
		return w, &NotContinuousError[A, B]{Witness: w, source: source, target: target}
	}

	return w, nil
}

// New certifies fn and wraps it as a Map. A non-continuous fn yields a nil
// map and a *NotContinuousError.
func New[A, B any](source *core.Space[A], target *core.Space[B], eqS *core.Eq[A], eqT *core.Eq[B], fn func(A) B, opts ...Option) (*Map[A, B], error) {
	w, err := Certify(source, target, eqS, eqT, fn, opts...)
	if err != nil {
		return nil, err
	}
	cfg := newConfig(NoteDirect, opts...)

	return &Map[A, B]{
		name:    cfg.name,
		source:  source,
		target:  target,
		eqS:     eqS,
		eqT:     eqT,
		fn:      fn,
		witness: w,
	}, nil
}

func validateArgs[A, B any](source *core.Space[A], target *core.Space[B], eqS *core.Eq[A], eqT *core.Eq[B], fn func(A) B) error {
	switch {
	case source == nil || target == nil:
		return fmt.Errorf("continuity: %w", core.ErrNilSpace)
	case eqS == nil || eqT == nil:
		return fmt.Errorf("continuity: %w", core.ErrNilEq)
	case fn == nil:
		return ErrNilFunc
	}
	return nil
}

// evaluate computes the preimage of every target open and collects those
// whose preimage is not a listed source open.
func evaluate[A, B any](source *core.Space[A], target *core.Space[B], eqS *core.Eq[A], eqT *core.Eq[B], fn func(A) B) (records, failures []Record[A, B]) {
	srcOpens := core.NewFamily(eqS, source.Carrier())
	for _, u := range source.Opens() {
		_, _ = srcOpens.Add(u)
	}

	pts := source.Carrier()
	opens := target.Opens()
	records = make([]Record[A, B], 0, len(opens))
	for _, v := range opens {
		rec := Record[A, B]{Open: v, Preimage: core.Preimage(eqT, pts, fn, v)}
		records = append(records, rec)
		if !srcOpens.Has(rec.Preimage) {
			failures = append(failures, rec)
		}
	}

	return records, failures
}

func verifier[A, B any](source *core.Space[A], target *core.Space[B], eqS *core.Eq[A], eqT *core.Eq[B], fn func(A) B) func() bool {
	return func() bool {
		_, failures := evaluate(source, target, eqS, eqT, fn)
		return len(failures) == 0
	}
}
