package universal

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
	"github.com/katalvlaran/lvtopo/quotient"
)

// Pushout is X+Y collapsed along inl(f(z)) ~ inr(g(z)) for a span
// f: Z → X, g: Z → Y, with legs i1 = q∘ι1 and i2 = q∘ι2.
type Pushout[Z, X, Y any] struct {
	f         *continuity.Map[Z, X]
	g         *continuity.Map[Z, Y]
	coproduct *Coproduct[X, Y]
	quotient  *quotient.Quotient[core.Sum[X, Y]]
	i1        *continuity.Map[X, quotient.Class[core.Sum[X, Y]]]
	i2        *continuity.Map[Y, quotient.Class[core.Sum[X, Y]]]
}

// NewPushout builds the pushout of the span f, g.
//
// Errors: ErrShapeMismatch when f and g do not share a source; quotient and
// builder errors otherwise.
func NewPushout[Z, X, Y any](f *continuity.Map[Z, X], g *continuity.Map[Z, Y], opts ...builder.BuilderOption) (*Pushout[Z, X, Y], error) {
	const method = "NewPushout"
	if f == nil || g == nil {
		return nil, shapeErr(method, "nil argument")
	}
	if !sameArrowSource(f, g) {
		return nil, shapeErr(method, "f and g have different sources")
	}

	cop, err := NewCoproduct(f.Target(), f.EqTarget(), g.Target(), g.EqTarget(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	zs := f.Source().Carrier()
	pairs := make([]core.Pair[core.Sum[X, Y], core.Sum[X, Y]], len(zs))
	for i, z := range zs {
		pairs[i] = core.MakePair(core.Inl[X, Y](f.Apply(z)), core.Inr[X](g.Apply(z)))
	}
	q, err := quotient.Generated(cop.space, cop.eq, pairs, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	i1, err := continuity.Compose(q.Projection(), cop.inl, continuity.WithName("i1"))
	if err != nil {
		return nil, fmt.Errorf("%s: i1: %w", method, err)
	}
	i2, err := continuity.Compose(q.Projection(), cop.inr, continuity.WithName("i2"))
	if err != nil {
		return nil, fmt.Errorf("%s: i2: %w", method, err)
	}

	return &Pushout[Z, X, Y]{f: f, g: g, coproduct: cop, quotient: q, i1: i1, i2: i2}, nil
}

// Space returns the pushout space (X+Y)/~.
func (po *Pushout[Z, X, Y]) Space() *core.Space[quotient.Class[core.Sum[X, Y]]] {
	return po.quotient.Space()
}

// Eq returns the class witness.
func (po *Pushout[Z, X, Y]) Eq() *core.Eq[quotient.Class[core.Sum[X, Y]]] { return po.quotient.Eq() }

// Coproduct returns the ambient coproduct X+Y.
func (po *Pushout[Z, X, Y]) Coproduct() *Coproduct[X, Y] { return po.coproduct }

// Quotient exposes the underlying quotient of X+Y.
func (po *Pushout[Z, X, Y]) Quotient() *quotient.Quotient[core.Sum[X, Y]] { return po.quotient }

// I1 returns i1: X → P.
func (po *Pushout[Z, X, Y]) I1() *continuity.Map[X, quotient.Class[core.Sum[X, Y]]] { return po.i1 }

// I2 returns i2: Y → P.
func (po *Pushout[Z, X, Y]) I2() *continuity.Map[Y, quotient.Class[core.Sum[X, Y]]] { return po.i2 }

// Legs re-verifies i1, i2 and checks the square i1∘f = i2∘g.
func (po *Pushout[Z, X, Y]) Legs() Verdict {
	return NewReport([]Entry[Arrow, Info]{
		arrowEntry(KindPushout, "i1", po.i1),
		arrowEntry(KindPushout, "i2", po.i2),
		commuteEntry(KindPushout, "i1∘f=i2∘g", po.f.Source(), po.Eq(),
			composite(po.i1, po.f), composite(po.i2, po.g)),
	}, nil)
}

// FactorThroughPushout factors the cocone (h1: X → W, h2: Y → W) through
// the pushout.
//
// Implementation:
//   - Stage 1: Check h1∘f = h2∘g over Z; a violation fails the mediator
//     immediately.
//   - Stage 2: Check [h1,h2] is constant on every class, then send each
//     class to [h1,h2] of its representative.
//   - Stage 3: Certify the mediator and check m∘i1 = h1, m∘i2 = h2.
//
// Errors: ErrShapeMismatch when h1, h2 do not start at X and Y or do not
// share a target.
func FactorThroughPushout[Z, X, Y, W any](po *Pushout[Z, X, Y], h1 *continuity.Map[X, W], h2 *continuity.Map[Y, W]) (Factorization[quotient.Class[core.Sum[X, Y]], W], error) {
	const method, name = "FactorThroughPushout", "m"
	var zero Factorization[quotient.Class[core.Sum[X, Y]], W]
	switch {
	case po == nil || h1 == nil || h2 == nil:
		return zero, shapeErr(method, "nil argument")
	case h1.Source() != po.f.Target() || h1.EqSource() != po.f.EqTarget():
		return zero, shapeErr(method, "h1 does not start at the codomain of f")
	case h2.Source() != po.g.Target() || h2.EqSource() != po.g.EqTarget():
		return zero, shapeErr(method, "h2 does not start at the codomain of g")
	case !sameArrowTarget(h1, h2):
		return zero, shapeErr(method, "h1 and h2 have different targets")
	}

	return guarded(KindPushout, name, func() Factorization[quotient.Class[core.Sum[X, Y]], W] {
		f1, f2 := h1.Func(), h2.Func()
		eqW := h1.EqTarget()
		square := commuteEntry(KindPushout, "h1∘f=h2∘g", po.f.Source(), eqW,
			composite(h1, po.f), composite(h2, po.g))
		legs := []Entry[Arrow, Info]{arrowEntry(KindPushout, "h1", h1), arrowEntry(KindPushout, "h2", h2), square}
		if !square.Holds() {
			return failed[quotient.Class[core.Sum[X, Y]], W](KindPushout, name, legs, "cocone (h1, h2) does not commute with f and g.")
		}

		split := func(s core.Sum[X, Y]) W { return core.Case(s, f1, f2) }
		if msg, ok := constantOnClasses(po.quotient, eqW, split); !ok {
			return failed[quotient.Class[core.Sum[X, Y]], W](KindPushout, name, legs, msg)
		}

		m, err := continuity.New(po.Space(), h1.Target(), po.Eq(), eqW,
			func(cl quotient.Class[core.Sum[X, Y]]) W { return split(cl.Representative()) },
			continuity.WithName(name))
		if err != nil {
			return failed[quotient.Class[core.Sum[X, Y]], W](KindPushout, name, legs, fmt.Sprintf("mediator %s: %v", name, err))
		}

		med := Mediator[Arrow, Info](name, true).WithArrow(m)
		if pt, bad := mismatch(h1.Source().Carrier(), eqW, composite(m, po.i1), f1); bad {
			med = med.WithFailure(fmt.Sprintf("%s∘i1 ≠ h1 at %s.", name, h1.Source().Show(pt)))
		} else if pt, bad := mismatch(h2.Source().Carrier(), eqW, composite(m, po.i2), f2); bad {
			med = med.WithFailure(fmt.Sprintf("%s∘i2 ≠ h2 at %s.", name, h2.Source().Show(pt)))
		}
		med = med.WithMetadata(Info{Construction: KindPushout, Checked: po.Space().Size(), Note: m.Witness().Diagnostics().Note})

		return Factorization[quotient.Class[core.Sum[X, Y]], W]{Mediator: m, Report: NewReport(legs, []Entry[Arrow, Info]{med})}
	}), nil
}
