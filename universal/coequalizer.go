package universal

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
	"github.com/katalvlaran/lvtopo/quotient"
)

// Coequalizer is Y collapsed along the equivalence generated by
// f(x) ~ g(x) for a parallel pair f, g: X → Y, with its projection q.
type Coequalizer[X, Y any] struct {
	f, g     *continuity.Map[X, Y]
	quotient *quotient.Quotient[Y]
}

// NewCoequalizer builds the coequalizer of the parallel pair f, g.
//
// Errors: ErrShapeMismatch when f and g are not parallel; quotient and
// builder errors otherwise.
func NewCoequalizer[X, Y any](f, g *continuity.Map[X, Y], opts ...builder.BuilderOption) (*Coequalizer[X, Y], error) {
	const method = "NewCoequalizer"
	if f == nil || g == nil {
		return nil, shapeErr(method, "nil argument")
	}
	if !sameArrowSource(f, g) || !sameArrowTarget(f, g) {
		return nil, shapeErr(method, "f and g are not parallel")
	}

	src := f.Source().Carrier()
	pairs := make([]core.Pair[Y, Y], len(src))
	for i, x := range src {
		pairs[i] = core.MakePair(f.Apply(x), g.Apply(x))
	}
	q, err := quotient.Generated(f.Target(), f.EqTarget(), pairs, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return &Coequalizer[X, Y]{f: f, g: g, quotient: q}, nil
}

// Space returns the class space Y/~.
func (c *Coequalizer[X, Y]) Space() *core.Space[quotient.Class[Y]] { return c.quotient.Space() }

// Eq returns the class witness.
func (c *Coequalizer[X, Y]) Eq() *core.Eq[quotient.Class[Y]] { return c.quotient.Eq() }

// Quotient exposes the underlying quotient.
func (c *Coequalizer[X, Y]) Quotient() *quotient.Quotient[Y] { return c.quotient }

// Projection returns q: Y → Y/~.
func (c *Coequalizer[X, Y]) Projection() *continuity.Map[Y, quotient.Class[Y]] {
	return c.quotient.Projection()
}

// Legs re-verifies q and checks q∘f = q∘g over X.
func (c *Coequalizer[X, Y]) Legs() Verdict {
	q := c.quotient.Projection()
	return NewReport([]Entry[Arrow, Info]{
		arrowEntry(KindCoequalizer, "q", q),
		commuteEntry(KindCoequalizer, "q∘f=q∘g", c.f.Source(), c.Eq(), composite(q, c.f), composite(q, c.g)),
	}, nil)
}

// FactorThroughCoequalizer factors a cofork h: Y → W through the
// coequalizer.
//
// Implementation:
//   - Stage 1: Check h∘f = h∘g over X; a violation fails the mediator
//     immediately.
//   - Stage 2: Check h is constant on every class and send each class to
//     h of its representative.
//   - Stage 3: Certify the mediator and check m∘q = h over Y.
//
// Errors: ErrShapeMismatch when h does not start at Y.
func FactorThroughCoequalizer[X, Y, W any](c *Coequalizer[X, Y], h *continuity.Map[Y, W]) (Factorization[quotient.Class[Y], W], error) {
	const method, name = "FactorThroughCoequalizer", "m"
	var zero Factorization[quotient.Class[Y], W]
	switch {
	case c == nil || h == nil:
		return zero, shapeErr(method, "nil argument")
	case h.Source() != c.f.Target() || h.EqSource() != c.f.EqTarget():
		return zero, shapeErr(method, "h does not start at the codomain of the pair")
	}

	return guarded(KindCoequalizer, name, func() Factorization[quotient.Class[Y], W] {
		hf := h.Func()
		cofork := commuteEntry(KindCoequalizer, "h∘f=h∘g", c.f.Source(), h.EqTarget(),
			composite(h, c.f), composite(h, c.g))
		legs := []Entry[Arrow, Info]{arrowEntry(KindCoequalizer, "h", h), cofork}
		if !cofork.Holds() {
			return failed[quotient.Class[Y], W](KindCoequalizer, name, legs, "cofork h does not commute with f and g.")
		}
		if msg, ok := constantOnClasses(c.quotient, h.EqTarget(), hf); !ok {
			return failed[quotient.Class[Y], W](KindCoequalizer, name, legs, msg)
		}

		m, err := continuity.New(c.Space(), h.Target(), c.Eq(), h.EqTarget(),
			func(cl quotient.Class[Y]) W { return hf(cl.Representative()) },
			continuity.WithName(name))
		if err != nil {
			return failed[quotient.Class[Y], W](KindCoequalizer, name, legs, fmt.Sprintf("mediator %s: %v", name, err))
		}

		med := Mediator[Arrow, Info](name, true).WithArrow(m)
		if pt, bad := mismatch(h.Source().Carrier(), h.EqTarget(), composite(m, c.Projection()), hf); bad {
			med = med.WithFailure(fmt.Sprintf("%s∘q ≠ h at %s.", name, h.Source().Show(pt)))
		}
		med = med.WithMetadata(Info{Construction: KindCoequalizer, Checked: h.Source().Size(), Note: m.Witness().Diagnostics().Note})

		return Factorization[quotient.Class[Y], W]{Mediator: m, Report: NewReport(legs, []Entry[Arrow, Info]{med})}
	}), nil
}

// constantOnClasses reports whether fn takes one value on every class of q.
func constantOnClasses[T, W any](q *quotient.Quotient[T], eq *core.Eq[W], fn func(T) W) (string, bool) {
	for _, cl := range q.Classes() {
		members := cl.Members()
		want := fn(members[0])
		for _, x := range members[1:] {
			if !eq.Equal(fn(x), want) {
				return fmt.Sprintf("class %s is not collapsed: %s and %s disagree.",
					q.Space().Show(cl), q.Source().Show(members[0]), q.Source().Show(x)), false
			}
		}
	}
	return "", true
}
