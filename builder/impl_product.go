package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

// Product builds the product space X×Y.
//
// Carrier: every (x, y) in row-major order (x outer, y inner).
// Opens:   every rectangle U×V for U open in X and V open in Y, plus ∅ and
// the carrier, saturated under union and intersection exactly as FromBase.
//
// Points are compared with core.PairEq(eqX, eqY).
//
// Errors: ErrNilSpace, core.ErrNilEq.
// Complexity: O(kX·kY·nX·nY) for the rectangles, then the FromBase closure.
func Product[X, Y any](eqX *core.Eq[X], eqY *core.Eq[Y], x *core.Space[X], y *core.Space[Y], opts ...BuilderOption) (*core.Space[core.Pair[X, Y]], error) {
	if x == nil || y == nil {
		return nil, builderErrorf(MethodProduct, ErrNilSpace, "factor")
	}
	if eqX == nil || eqY == nil {
		return nil, builderErrorf(MethodProduct, core.ErrNilEq, "factor witness")
	}
	cfg := newBuilderConfig(opts...)
	eq := core.PairEq(eqX, eqY)

	xs, ys := x.Carrier(), y.Carrier()
	carrier := make([]core.Pair[X, Y], 0, len(xs)*len(ys))
	for _, a := range xs {
		for _, b := range ys {
			carrier = append(carrier, core.MakePair(a, b))
		}
	}
	carrier = core.Dedupe(eq, carrier)

	rects := make([][]core.Pair[X, Y], 0, x.NumOpens()*y.NumOpens())
	for _, u := range x.Opens() {
		for _, v := range y.Opens() {
			rects = append(rects, rectangle(u, v))
		}
	}
	fam := closeBase(eq, carrier, normalize(eq, carrier, rects))

	show := core.WithShow(func(p core.Pair[X, Y]) string {
		return fmt.Sprintf("(%s, %s)", x.Show(p.First), y.Show(p.Second))
	})

	return core.NewSpace(eq, carrier, fam.Sets(), cfg.withDefaultShow(show)...)
}

func rectangle[X, Y any](u []X, v []Y) []core.Pair[X, Y] {
	out := make([]core.Pair[X, Y], 0, len(u)*len(v))
	for _, a := range u {
		for _, b := range v {
			out = append(out, core.MakePair(a, b))
		}
	}
	return out
}
