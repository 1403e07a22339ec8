package universal

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
)

// Equalizer is the agreement subspace E = {x : f(x) = g(x)} of a parallel
// pair f, g: X → Y, with its certified inclusion ι: E → X.
type Equalizer[X, Y any] struct {
	f, g      *continuity.Map[X, Y]
	space     *core.Space[X]
	inclusion *continuity.Map[X, X]
}

// NewEqualizer builds the equalizer of the parallel pair f, g.
//
// Errors: ErrShapeMismatch when f and g are not parallel; builder errors
// from the subspace step.
func NewEqualizer[X, Y any](f, g *continuity.Map[X, Y], opts ...builder.BuilderOption) (*Equalizer[X, Y], error) {
	const method = "NewEqualizer"
	if f == nil || g == nil {
		return nil, shapeErr(method, "nil argument")
	}
	if !sameArrowSource(f, g) || !sameArrowTarget(f, g) {
		return nil, shapeErr(method, "f and g are not parallel")
	}

	eqX, eqY := f.EqSource(), f.EqTarget()
	agree := core.Filter(f.Source().Carrier(), func(x X) bool { return eqY.Equal(f.Apply(x), g.Apply(x)) })
	space, err := builder.Subspace(eqX, f.Source(), agree, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	inc, err := continuity.New(space, f.Source(), eqX, eqX, func(x X) X { return x },
		continuity.WithNote(continuity.NoteStructured), continuity.WithName("ι"))
	if err != nil {
		return nil, fmt.Errorf("%s: ι: %w", method, err)
	}

	return &Equalizer[X, Y]{f: f, g: g, space: space, inclusion: inc}, nil
}

// Space returns the agreement subspace E.
func (e *Equalizer[X, Y]) Space() *core.Space[X] { return e.space }

// Eq returns the witness of E (shared with X).
func (e *Equalizer[X, Y]) Eq() *core.Eq[X] { return e.f.EqSource() }

// Inclusion returns ι: E → X.
func (e *Equalizer[X, Y]) Inclusion() *continuity.Map[X, X] { return e.inclusion }

// Legs re-verifies ι and checks f∘ι = g∘ι over E.
func (e *Equalizer[X, Y]) Legs() Verdict {
	return NewReport([]Entry[Arrow, Info]{
		arrowEntry(KindEqualizer, "ι", e.inclusion),
		commuteEntry(KindEqualizer, "f∘ι=g∘ι", e.space, e.f.EqTarget(), e.f.Func(), e.g.Func()),
	}, nil)
}

// FactorThroughEqualizer factors a fork h: W → X through the equalizer.
//
// Implementation:
//   - Stage 1: Check f∘h = g∘h over W; a violation fails the mediator
//     immediately, naming the first offending point.
//   - Stage 2: Map each w to the point of E equal to h(w).
//   - Stage 3: Certify the mediator and check ι∘m = h over W.
//
// Errors: ErrShapeMismatch when h does not land in X.
func FactorThroughEqualizer[W, X, Y any](e *Equalizer[X, Y], h *continuity.Map[W, X]) (Factorization[W, X], error) {
	const method, name = "FactorThroughEqualizer", "m"
	var zero Factorization[W, X]
	switch {
	case e == nil || h == nil:
		return zero, shapeErr(method, "nil argument")
	case h.Target() != e.f.Source() || h.EqTarget() != e.f.EqSource():
		return zero, shapeErr(method, "h does not land in the domain of the pair")
	}

	return guarded(KindEqualizer, name, func() Factorization[W, X] {
		hf := h.Func()
		ff, gf := e.f.Func(), e.g.Func()
		fork := commuteEntry(KindEqualizer, "f∘h=g∘h", h.Source(), e.f.EqTarget(),
			func(w W) Y { return ff(hf(w)) },
			func(w W) Y { return gf(hf(w)) })
		legs := []Entry[Arrow, Info]{arrowEntry(KindEqualizer, "h", h), fork}
		if !fork.Holds() {
			return failed[W, X](KindEqualizer, name, legs, "fork h does not commute with f and g.")
		}

		eqX := e.Eq()
		pts := e.space.Carrier()
		m, err := continuity.New(h.Source(), e.space, h.EqSource(), eqX,
			func(w W) X {
				i := core.IndexOf(eqX, pts, hf(w))
				if i < 0 {
					panic(fmt.Sprintf("h(%s) is outside the agreement set", h.Source().Show(w)))
				}
				return pts[i]
			},
			continuity.WithName(name))
		if err != nil {
			return failed[W, X](KindEqualizer, name, legs, fmt.Sprintf("mediator %s: %v", name, err))
		}

		med := Mediator[Arrow, Info](name, true).WithArrow(m)
		if pt, bad := mismatch(h.Source().Carrier(), eqX, composite(e.inclusion, m), hf); bad {
			med = med.WithFailure(fmt.Sprintf("ι∘%s ≠ h at %s.", name, h.Source().Show(pt)))
		}
		med = med.WithMetadata(Info{Construction: KindEqualizer, Checked: h.Source().Size(), Note: m.Witness().Diagnostics().Note})

		return Factorization[W, X]{Mediator: m, Report: NewReport(legs, []Entry[Arrow, Info]{med})}
	}), nil
}
