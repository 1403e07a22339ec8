package continuity

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/core"
)

// Identity returns the identity map on space. Continuity is immediate; the
// witness records every open as its own preimage (NoteIdentity) and still
// Verifies against the live space.
func Identity[T any](space *core.Space[T], eq *core.Eq[T], opts ...Option) (*Map[T, T], error) {
	id := func(x T) T { return x }
	if err := validateArgs(space, space, eq, eq, id); err != nil {
		return nil, err
	}
	cfg := newConfig(NoteIdentity, opts...)

	opens := space.Opens()
	records := make([]Record[T, T], len(opens))
	for i, u := range opens {
		records[i] = Record[T, T]{Open: u, Preimage: u}
	}

	return &Map[T, T]{
		name:   cfg.name,
		source: space,
		target: space,
		eqS:    eq,
		eqT:    eq,
		fn:     id,
		witness: &Witness[T, T]{
			holds:       true,
			diagnostics: &Diagnostics[T, T]{Preimages: records, Note: cfg.note},
			verify:      verifier(space, space, eq, eq, id),
		},
	}, nil
}

// Compose returns g∘f. The inner target and outer source must be the same
// *core.Space, and the inner target witness the same *core.Eq as the outer
// source witness; otherwise ErrShapeMismatch is returned before any point
// is examined.
//
// A composite of continuous maps is continuous, so no openness check runs:
// the diagnostics hold the composite preimages tagged NoteComposed, and
// Verify re-runs the full check against the live spaces.
func Compose[A, B, C any](g *Map[B, C], f *Map[A, B], opts ...Option) (*Map[A, C], error) {
	if f == nil || g == nil {
		return nil, fmt.Errorf("Compose: nil map: %w", ErrShapeMismatch)
	}
	if f.target != g.source {
		return nil, fmt.Errorf("Compose: inner target is not outer source: %w", ErrShapeMismatch)
	}
	if f.eqT != g.eqS {
		return nil, fmt.Errorf("Compose: inner target witness %q is not outer source witness %q: %w",
			f.eqT.Name(), g.eqS.Name(), ErrShapeMismatch)
	}
	cfg := newConfig(NoteComposed, opts...)
	if cfg.name == "" && f.name != "" && g.name != "" {
		cfg.name = g.name + "∘" + f.name
	}

	gf, ff := g.fn, f.fn
	fn := func(a A) C { return gf(ff(a)) }

	pts := f.source.Carrier()
	opens := g.target.Opens()
	records := make([]Record[A, C], len(opens))
	for i, w := range opens {
		records[i] = Record[A, C]{Open: w, Preimage: core.Preimage(g.eqT, pts, fn, w)}
	}

	return &Map[A, C]{
		name:   cfg.name,
		source: f.source,
		target: g.target,
		eqS:    f.eqS,
		eqT:    g.eqT,
		fn:     fn,
		witness: &Witness[A, C]{
			holds:       f.witness.holds && g.witness.holds,
			diagnostics: &Diagnostics[A, C]{Preimages: records, Note: cfg.note},
			verify:      verifier(f.source, g.target, f.eqS, g.eqT, fn),
		},
	}, nil
}
