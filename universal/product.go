package universal

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
)

// Product is X×Y with its certified projections π1, π2.
type Product[X, Y any] struct {
	left  *core.Space[X]
	right *core.Space[Y]
	eqX   *core.Eq[X]
	eqY   *core.Eq[Y]
	space *core.Space[core.Pair[X, Y]]
	eq    *core.Eq[core.Pair[X, Y]]
	proj1 *continuity.Map[core.Pair[X, Y], X]
	proj2 *continuity.Map[core.Pair[X, Y], Y]
}

// NewProduct builds X×Y (builder.Product) and certifies both projections.
func NewProduct[X, Y any](x *core.Space[X], eqX *core.Eq[X], y *core.Space[Y], eqY *core.Eq[Y], opts ...builder.BuilderOption) (*Product[X, Y], error) {
	space, err := builder.Product(eqX, eqY, x, y, opts...)
	if err != nil {
		return nil, err
	}
	eq := core.PairEq(eqX, eqY)

	proj1, err := continuity.New(space, x, eq, eqX, func(p core.Pair[X, Y]) X { return p.First },
		continuity.WithNote(continuity.NoteStructured), continuity.WithName("π1"))
	if err != nil {
		return nil, fmt.Errorf("NewProduct: π1: %w", err)
	}
	proj2, err := continuity.New(space, y, eq, eqY, func(p core.Pair[X, Y]) Y { return p.Second },
		continuity.WithNote(continuity.NoteStructured), continuity.WithName("π2"))
	if err != nil {
		return nil, fmt.Errorf("NewProduct: π2: %w", err)
	}

	return &Product[X, Y]{
		left: x, right: y, eqX: eqX, eqY: eqY,
		space: space, eq: eq, proj1: proj1, proj2: proj2,
	}, nil
}

// Space returns X×Y.
func (p *Product[X, Y]) Space() *core.Space[core.Pair[X, Y]] { return p.space }

// Eq returns the pair witness shared by the space and its projections.
func (p *Product[X, Y]) Eq() *core.Eq[core.Pair[X, Y]] { return p.eq }

// Proj1 returns π1: X×Y → X.
func (p *Product[X, Y]) Proj1() *continuity.Map[core.Pair[X, Y], X] { return p.proj1 }

// Proj2 returns π2: X×Y → Y.
func (p *Product[X, Y]) Proj2() *continuity.Map[core.Pair[X, Y], Y] { return p.proj2 }

// Legs re-verifies both projections.
func (p *Product[X, Y]) Legs() Verdict {
	return NewReport([]Entry[Arrow, Info]{
		arrowEntry(KindProduct, "π1", p.proj1),
		arrowEntry(KindProduct, "π2", p.proj2),
	}, nil)
}

// Pairing factors the cone (f: Z→X, g: Z→Y) through the product.
//
// The mediator ⟨f,g⟩: z ↦ (f(z), g(z)) is built directly, certified, and
// then checked pointwise: π1∘⟨f,g⟩ = f and π2∘⟨f,g⟩ = g over Z. Any
// disagreement fails the mediator entry with the offending point.
//
// Errors: ErrShapeMismatch when f and g do not share a source, or do not
// land in this product's factors (space and witness identity).
func Pairing[Z, X, Y any](p *Product[X, Y], f *continuity.Map[Z, X], g *continuity.Map[Z, Y]) (Factorization[Z, core.Pair[X, Y]], error) {
	const method, name = "Pairing", "⟨f,g⟩"
	var zero Factorization[Z, core.Pair[X, Y]]
	switch {
	case p == nil || f == nil || g == nil:
		return zero, shapeErr(method, "nil argument")
	case f.Target() != p.left || f.EqTarget() != p.eqX:
		return zero, shapeErr(method, "f does not land in the first factor")
	case g.Target() != p.right || g.EqTarget() != p.eqY:
		return zero, shapeErr(method, "g does not land in the second factor")
	case !sameArrowSource(f, g):
		return zero, shapeErr(method, "f and g have different sources")
	}

	return guarded(KindProduct, name, func() Factorization[Z, core.Pair[X, Y]] {
		legs := []Entry[Arrow, Info]{arrowEntry(KindProduct, "f", f), arrowEntry(KindProduct, "g", g)}

		ff, gf := f.Func(), g.Func()
		m, err := continuity.New(f.Source(), p.space, f.EqSource(), p.eq,
			func(z Z) core.Pair[X, Y] { return core.MakePair(ff(z), gf(z)) },
			continuity.WithName(name))
		if err != nil {
			return failed[Z, core.Pair[X, Y]](KindProduct, name, legs, fmt.Sprintf("mediator %s: %v", name, err))
		}

		med := Mediator[Arrow, Info](name, true).WithArrow(m)
		pts := f.Source().Carrier()
		if pt, bad := mismatch(pts, p.eqX, composite(p.proj1, m), ff); bad {
			med = med.WithFailure(fmt.Sprintf("π1∘%s ≠ f at %s.", name, f.Source().Show(pt)))
		} else if pt, bad := mismatch(pts, p.eqY, composite(p.proj2, m), gf); bad {
			med = med.WithFailure(fmt.Sprintf("π2∘%s ≠ g at %s.", name, f.Source().Show(pt)))
		}
		med = med.WithMetadata(Info{Construction: KindProduct, Checked: len(pts), Note: m.Witness().Diagnostics().Note})

		return Factorization[Z, core.Pair[X, Y]]{Mediator: m, Report: NewReport(legs, []Entry[Arrow, Info]{med})}
	}), nil
}

// composite returns outer∘inner as a plain function. Shapes always line up
// inside this package; a mismatch panics and guarded reports it.
func composite[A, B, C any](outer *continuity.Map[B, C], inner *continuity.Map[A, B]) func(A) C {
	gf, err := continuity.Compose(outer, inner)
	if err != nil {
		panic(err)
	}
	return gf.Func()
}
