package universal

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
)

// Coproduct is X+Y with its certified injections ι1, ι2.
type Coproduct[X, Y any] struct {
	left  *core.Space[X]
	right *core.Space[Y]
	eqX   *core.Eq[X]
	eqY   *core.Eq[Y]
	space *core.Space[core.Sum[X, Y]]
	eq    *core.Eq[core.Sum[X, Y]]
	inl   *continuity.Map[X, core.Sum[X, Y]]
	inr   *continuity.Map[Y, core.Sum[X, Y]]
}

// NewCoproduct builds X+Y (builder.Coproduct) and certifies both injections.
func NewCoproduct[X, Y any](x *core.Space[X], eqX *core.Eq[X], y *core.Space[Y], eqY *core.Eq[Y], opts ...builder.BuilderOption) (*Coproduct[X, Y], error) {
	space, err := builder.Coproduct(eqX, eqY, x, y, opts...)
	if err != nil {
		return nil, err
	}
	eq := core.SumEq(eqX, eqY)

	inl, err := continuity.New(x, space, eqX, eq, core.Inl[X, Y],
		continuity.WithNote(continuity.NoteStructured), continuity.WithName("ι1"))
	if err != nil {
		return nil, fmt.Errorf("NewCoproduct: ι1: %w", err)
	}
	inr, err := continuity.New(y, space, eqY, eq, core.Inr[X, Y],
		continuity.WithNote(continuity.NoteStructured), continuity.WithName("ι2"))
	if err != nil {
		return nil, fmt.Errorf("NewCoproduct: ι2: %w", err)
	}

	return &Coproduct[X, Y]{
		left: x, right: y, eqX: eqX, eqY: eqY,
		space: space, eq: eq, inl: inl, inr: inr,
	}, nil
}

// Space returns X+Y.
func (c *Coproduct[X, Y]) Space() *core.Space[core.Sum[X, Y]] { return c.space }

// Eq returns the sum witness shared by the space and its injections.
func (c *Coproduct[X, Y]) Eq() *core.Eq[core.Sum[X, Y]] { return c.eq }

// Inl returns ι1: X → X+Y.
func (c *Coproduct[X, Y]) Inl() *continuity.Map[X, core.Sum[X, Y]] { return c.inl }

// Inr returns ι2: Y → X+Y.
func (c *Coproduct[X, Y]) Inr() *continuity.Map[Y, core.Sum[X, Y]] { return c.inr }

// Legs re-verifies both injections.
func (c *Coproduct[X, Y]) Legs() Verdict {
	return NewReport([]Entry[Arrow, Info]{
		arrowEntry(KindCoproduct, "ι1", c.inl),
		arrowEntry(KindCoproduct, "ι2", c.inr),
	}, nil)
}

// Copairing factors the cocone (f: X→Z, g: Y→Z) through the coproduct.
//
// The mediator [f,g] splits on the summand tag, is certified, and is then
// checked pointwise: [f,g]∘ι1 = f over X and [f,g]∘ι2 = g over Y.
//
// Errors: ErrShapeMismatch when f, g do not start at this coproduct's
// summands or do not share a target.
func Copairing[X, Y, Z any](c *Coproduct[X, Y], f *continuity.Map[X, Z], g *continuity.Map[Y, Z]) (Factorization[core.Sum[X, Y], Z], error) {
	const method, name = "Copairing", "[f,g]"
	var zero Factorization[core.Sum[X, Y], Z]
	switch {
	case c == nil || f == nil || g == nil:
		return zero, shapeErr(method, "nil argument")
	case f.Source() != c.left || f.EqSource() != c.eqX:
		return zero, shapeErr(method, "f does not start at the first summand")
	case g.Source() != c.right || g.EqSource() != c.eqY:
		return zero, shapeErr(method, "g does not start at the second summand")
	case !sameArrowTarget(f, g):
		return zero, shapeErr(method, "f and g have different targets")
	}

	return guarded(KindCoproduct, name, func() Factorization[core.Sum[X, Y], Z] {
		legs := []Entry[Arrow, Info]{arrowEntry(KindCoproduct, "f", f), arrowEntry(KindCoproduct, "g", g)}

		ff, gf := f.Func(), g.Func()
		m, err := continuity.New(c.space, f.Target(), c.eq, f.EqTarget(),
			func(s core.Sum[X, Y]) Z { return core.Case(s, ff, gf) },
			continuity.WithName(name))
		if err != nil {
			return failed[core.Sum[X, Y], Z](KindCoproduct, name, legs, fmt.Sprintf("mediator %s: %v", name, err))
		}

		med := Mediator[Arrow, Info](name, true).WithArrow(m)
		if pt, bad := mismatch(c.left.Carrier(), f.EqTarget(), composite(m, c.inl), ff); bad {
			med = med.WithFailure(fmt.Sprintf("%s∘ι1 ≠ f at %s.", name, c.left.Show(pt)))
		} else if pt, bad := mismatch(c.right.Carrier(), f.EqTarget(), composite(m, c.inr), gf); bad {
			med = med.WithFailure(fmt.Sprintf("%s∘ι2 ≠ g at %s.", name, c.right.Show(pt)))
		}
		med = med.WithMetadata(Info{Construction: KindCoproduct, Checked: c.space.Size(), Note: m.Witness().Diagnostics().Note})

		return Factorization[core.Sum[X, Y], Z]{Mediator: m, Report: NewReport(legs, []Entry[Arrow, Info]{med})}
	}), nil
}
