package universal

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
)

// Pullback is the fiber {(x, y) : f(x) = g(y)} of a cospan f: X → Z,
// g: Y → Z, as a subspace of X×Y, with certified legs p1, p2.
type Pullback[X, Y, Z any] struct {
	f       *continuity.Map[X, Z]
	g       *continuity.Map[Y, Z]
	product *Product[X, Y]
	space   *core.Space[core.Pair[X, Y]]
	p1      *continuity.Map[core.Pair[X, Y], X]
	p2      *continuity.Map[core.Pair[X, Y], Y]
}

// NewPullback builds the pullback of the cospan f, g.
//
// Errors: ErrShapeMismatch when f and g do not share a target; builder
// errors otherwise.
func NewPullback[X, Y, Z any](f *continuity.Map[X, Z], g *continuity.Map[Y, Z], opts ...builder.BuilderOption) (*Pullback[X, Y, Z], error) {
	const method = "NewPullback"
	if f == nil || g == nil {
		return nil, shapeErr(method, "nil argument")
	}
	if !sameArrowTarget(f, g) {
		return nil, shapeErr(method, "f and g have different targets")
	}

	prod, err := NewProduct(f.Source(), f.EqSource(), g.Source(), g.EqSource(), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	eqZ := f.EqTarget()
	fiber := core.Filter(prod.space.Carrier(), func(p core.Pair[X, Y]) bool {
		return eqZ.Equal(f.Apply(p.First), g.Apply(p.Second))
	})
	space, err := builder.Subspace(prod.eq, prod.space, fiber, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	p1, err := continuity.New(space, f.Source(), prod.eq, f.EqSource(), func(p core.Pair[X, Y]) X { return p.First },
		continuity.WithNote(continuity.NoteStructured), continuity.WithName("p1"))
	if err != nil {
		return nil, fmt.Errorf("%s: p1: %w", method, err)
	}
	p2, err := continuity.New(space, g.Source(), prod.eq, g.EqSource(), func(p core.Pair[X, Y]) Y { return p.Second },
		continuity.WithNote(continuity.NoteStructured), continuity.WithName("p2"))
	if err != nil {
		return nil, fmt.Errorf("%s: p2: %w", method, err)
	}

	return &Pullback[X, Y, Z]{f: f, g: g, product: prod, space: space, p1: p1, p2: p2}, nil
}

// Space returns the fiber space.
func (pb *Pullback[X, Y, Z]) Space() *core.Space[core.Pair[X, Y]] { return pb.space }

// Eq returns the pair witness of the fiber.
func (pb *Pullback[X, Y, Z]) Eq() *core.Eq[core.Pair[X, Y]] { return pb.product.eq }

// Product returns the ambient product X×Y.
func (pb *Pullback[X, Y, Z]) Product() *Product[X, Y] { return pb.product }

// P1 returns p1: P → X.
func (pb *Pullback[X, Y, Z]) P1() *continuity.Map[core.Pair[X, Y], X] { return pb.p1 }

// P2 returns p2: P → Y.
func (pb *Pullback[X, Y, Z]) P2() *continuity.Map[core.Pair[X, Y], Y] { return pb.p2 }

// Legs re-verifies p1, p2 and checks the square f∘p1 = g∘p2.
func (pb *Pullback[X, Y, Z]) Legs() Verdict {
	return NewReport([]Entry[Arrow, Info]{
		arrowEntry(KindPullback, "p1", pb.p1),
		arrowEntry(KindPullback, "p2", pb.p2),
		commuteEntry(KindPullback, "f∘p1=g∘p2", pb.space, pb.f.EqTarget(),
			composite(pb.f, pb.p1), composite(pb.g, pb.p2)),
	}, nil)
}

// FactorThroughPullback factors the cone (h1: W → X, h2: W → Y) through
// the pullback: the square f∘h1 = g∘h2 is checked first, then the mediator
// w ↦ (h1(w), h2(w)) is certified and checked against both legs.
//
// Errors: ErrShapeMismatch when h1, h2 do not share a source or do not land
// in X and Y.
func FactorThroughPullback[W, X, Y, Z any](pb *Pullback[X, Y, Z], h1 *continuity.Map[W, X], h2 *continuity.Map[W, Y]) (Factorization[W, core.Pair[X, Y]], error) {
	const method, name = "FactorThroughPullback", "⟨h1,h2⟩"
	var zero Factorization[W, core.Pair[X, Y]]
	switch {
	case pb == nil || h1 == nil || h2 == nil:
		return zero, shapeErr(method, "nil argument")
	case h1.Target() != pb.f.Source() || h1.EqTarget() != pb.f.EqSource():
		return zero, shapeErr(method, "h1 does not land in the domain of f")
	case h2.Target() != pb.g.Source() || h2.EqTarget() != pb.g.EqSource():
		return zero, shapeErr(method, "h2 does not land in the domain of g")
	case !sameArrowSource(h1, h2):
		return zero, shapeErr(method, "h1 and h2 have different sources")
	}

	return guarded(KindPullback, name, func() Factorization[W, core.Pair[X, Y]] {
		f1, f2 := h1.Func(), h2.Func()
		square := commuteEntry(KindPullback, "f∘h1=g∘h2", h1.Source(), pb.f.EqTarget(),
			composite(pb.f, h1), composite(pb.g, h2))
		legs := []Entry[Arrow, Info]{arrowEntry(KindPullback, "h1", h1), arrowEntry(KindPullback, "h2", h2), square}
		if !square.Holds() {
			return failed[W, core.Pair[X, Y]](KindPullback, name, legs, "cone (h1, h2) does not commute with f and g.")
		}

		m, err := continuity.New(h1.Source(), pb.space, h1.EqSource(), pb.Eq(),
			func(w W) core.Pair[X, Y] { return core.MakePair(f1(w), f2(w)) },
			continuity.WithName(name))
		if err != nil {
			return failed[W, core.Pair[X, Y]](KindPullback, name, legs, fmt.Sprintf("mediator %s: %v", name, err))
		}

		med := Mediator[Arrow, Info](name, true).WithArrow(m)
		pts := h1.Source().Carrier()
		if pt, bad := mismatch(pts, h1.EqTarget(), composite(pb.p1, m), f1); bad {
			med = med.WithFailure(fmt.Sprintf("p1∘%s ≠ h1 at %s.", name, h1.Source().Show(pt)))
		} else if pt, bad := mismatch(pts, h2.EqTarget(), composite(pb.p2, m), f2); bad {
			med = med.WithFailure(fmt.Sprintf("p2∘%s ≠ h2 at %s.", name, h1.Source().Show(pt)))
		}
		med = med.WithMetadata(Info{Construction: KindPullback, Checked: len(pts), Note: m.Witness().Diagnostics().Note})

		return Factorization[W, core.Pair[X, Y]]{Mediator: m, Report: NewReport(legs, []Entry[Arrow, Info]{med})}
	}), nil
}
