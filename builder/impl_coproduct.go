package builder

import (
	"github.com/katalvlaran/lvtopo/core"
)

// Coproduct builds the disjoint union X+Y.
//
// Carrier: inl(x) for every x, then inr(y) for every y.
// Opens:   exactly the sets inl(U) ∪ inr(V) for U open in X and V open in Y.
// No closure pass is needed: when X and Y are topologies this family already
// is one, and core.Validate confirms it.
//
// Errors: ErrNilSpace, core.ErrNilEq, core.ErrNotInCarrier (raw factor
// spaces whose opens leave their carrier).
// Complexity: O(kX·kY·(nX+nY)²).
func Coproduct[X, Y any](eqX *core.Eq[X], eqY *core.Eq[Y], x *core.Space[X], y *core.Space[Y], opts ...BuilderOption) (*core.Space[core.Sum[X, Y]], error) {
	if x == nil || y == nil {
		return nil, builderErrorf(MethodCoproduct, ErrNilSpace, "summand")
	}
	if eqX == nil || eqY == nil {
		return nil, builderErrorf(MethodCoproduct, core.ErrNilEq, "summand witness")
	}
	cfg := newBuilderConfig(opts...)
	eq := core.SumEq(eqX, eqY)

	carrier := make([]core.Sum[X, Y], 0, x.Size()+y.Size())
	carrier = append(carrier, liftLeft[X, Y](x.Carrier())...)
	carrier = append(carrier, liftRight[X](y.Carrier())...)
	carrier = core.Dedupe(eq, carrier)

	fam := core.NewFamily(eq, carrier)
	for _, u := range x.Opens() {
		l := liftLeft[X, Y](u)
		for _, v := range y.Opens() {
			if _, err := fam.Add(append(l[:len(l):len(l)], liftRight[X](v)...)); err != nil {
				return nil, builderErrorf(MethodCoproduct, err, "lifted open")
			}
		}
	}

	show := core.WithShow(func(s core.Sum[X, Y]) string {
		return core.Case(s,
			func(a X) string { return "inl(" + x.Show(a) + ")" },
			func(b Y) string { return "inr(" + y.Show(b) + ")" })
	})

	return core.NewSpace(eq, carrier, fam.Sets(), cfg.withDefaultShow(show)...)
}

func liftLeft[X, Y any](xs []X) []core.Sum[X, Y] {
	out := make([]core.Sum[X, Y], len(xs))
	for i, a := range xs {
		out[i] = core.Inl[X, Y](a)
	}
	return out
}

func liftRight[X, Y any](ys []Y) []core.Sum[X, Y] {
	out := make([]core.Sum[X, Y], len(ys))
	for i, b := range ys {
		out[i] = core.Inr[X, Y](b)
	}
	return out
}
