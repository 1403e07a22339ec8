package quotient

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
)

// ByRelation collapses source along rel.
//
// Implementation:
//   - Stage 1: Check the four relation laws over the carrier; every
//     violation is reported together in a *RelationLawError.
//   - Stage 2: Partition: pick the first unvisited point, saturate rel from
//     it breadth-first, mark the class visited, repeat.
//   - Stage 3: Give the classes the final topology of x ↦ [x] and certify
//     the projection (continuity.NoteStructured).
//
// opts are forwarded to builder.Final (e.g. builder.WithMaxPowerSet).
//
// Errors: core.ErrNilSpace, core.ErrNilEq, ErrNilRelation, *RelationLawError,
// builder.ErrTooLarge.
// Complexity: O(n³) law checks, O(n²) partition, O(2^c·n²) final topology
// over c classes.
func ByRelation[T any](source *core.Space[T], eq *core.Eq[T], rel func(a, b T) bool, opts ...builder.BuilderOption) (*Quotient[T], error) {
	switch {
	case source == nil:
		return nil, fmt.Errorf("ByRelation: %w", core.ErrNilSpace)
	case eq == nil:
		return nil, fmt.Errorf("ByRelation: %w", core.ErrNilEq)
	case rel == nil:
		return nil, ErrNilRelation
	}

	carrier := source.Carrier()
	if err := checkLaws(source, eq, carrier, rel); err != nil {
		return nil, err
	}

	return assemble(source, eq, partition(carrier, rel), opts...)
}

// Generated collapses source along the smallest equivalence relation that
// identifies each pair in pairs. Classes are computed with union-find over
// carrier indices, so the relation handed to ByRelation is lawful by
// construction.
//
// Errors: core.ErrNilSpace, core.ErrNilEq, core.ErrNotInCarrier (a pair
// mentions a point outside the carrier), builder.ErrTooLarge.
func Generated[T any](source *core.Space[T], eq *core.Eq[T], pairs []core.Pair[T, T], opts ...builder.BuilderOption) (*Quotient[T], error) {
	if source == nil {
		return nil, fmt.Errorf("Generated: %w", core.ErrNilSpace)
	}
	if eq == nil {
		return nil, fmt.Errorf("Generated: %w", core.ErrNilEq)
	}

	carrier := source.Carrier()
	uf := newUnionFind(len(carrier))
	for i, p := range pairs {
		a, b := core.IndexOf(eq, carrier, p.First), core.IndexOf(eq, carrier, p.Second)
		if a < 0 || b < 0 {
			return nil, fmt.Errorf("Generated: pair #%d %s: %w", i, p, core.ErrNotInCarrier)
		}
		uf.union(a, b)
	}
	roots := uf.roots()

	rel := func(x, y T) bool {
		i, j := core.IndexOf(eq, carrier, x), core.IndexOf(eq, carrier, y)
		if i < 0 || j < 0 {
			return eq.Equal(x, y)
		}
		return roots[i] == roots[j]
	}

	return ByRelation(source, eq, rel, opts...)
}

// checkLaws tests every law over the carrier, keeping one counterexample
// per violated law.
func checkLaws[T any](space *core.Space[T], eq *core.Eq[T], c []T, rel func(a, b T) bool) error {
	var lawErr RelationLawError
	fail := func(law Law, format string, args ...any) {
		if slices.Contains(lawErr.Laws, law) {
			return
		}
		lawErr.Laws = append(lawErr.Laws, law)
		lawErr.Details = append(lawErr.Details, law.String()+": "+fmt.Sprintf(format, args...))
	}

	for _, x := range c {
		if !rel(x, x) {
			fail(LawReflexivity, "%s ≁ %s", space.Show(x), space.Show(x))
		}
	}
	for _, x := range c {
		for _, y := range c {
			if rel(x, y) && !rel(y, x) {
				fail(LawSymmetry, "%s ~ %s but not %s ~ %s", space.Show(x), space.Show(y), space.Show(y), space.Show(x))
			}
			if eq.Equal(x, y) && !rel(x, y) {
				fail(LawAmbientAgreement, "%s = %s but %s ≁ %s", space.Show(x), space.Show(y), space.Show(x), space.Show(y))
			}
			if !rel(x, y) {
				continue
			}
			for _, z := range c {
				if rel(y, z) && !rel(x, z) {
					fail(LawTransitivity, "%s ~ %s ~ %s but %s ≁ %s",
						space.Show(x), space.Show(y), space.Show(z), space.Show(x), space.Show(z))
				}
			}
		}
	}

	if len(lawErr.Laws) > 0 {
		slices.Sort(lawErr.Laws)
		return &lawErr
	}
	return nil
}

// partition splits the carrier into classes by breadth-first saturation.
// Each class lists its points in carrier order; classes appear in order of
// their first point.
func partition[T any](c []T, rel func(a, b T) bool) []Class[T] {
	visited := make([]bool, len(c))
	var classes []Class[T]

	for seed := range c {
		if visited[seed] {
			continue
		}
		queue := []int{seed}
		visited[seed] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v := range c {
				if !visited[v] && rel(c[u], c[v]) {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		slices.Sort(queue)
		members := make([]T, len(queue))
		for i, idx := range queue {
			members[i] = c[idx]
		}
		classes = append(classes, Class[T]{members: members})
	}

	return classes
}

// assemble builds the class space and the projection.
func assemble[T any](source *core.Space[T], eq *core.Eq[T], classes []Class[T], opts ...builder.BuilderOption) (*Quotient[T], error) {
	ceq := ClassEq(eq)
	classOf := func(x T) Class[T] {
		for _, cl := range classes {
			if core.Contains(eq, cl.members, x) {
				return cl
			}
		}
		return Class[T]{members: []T{x}}
	}

	show := core.WithShow(func(cl Class[T]) string { return source.ShowSet(cl.members) })
	all := append([]builder.BuilderOption{builder.WithSpaceOption(show)}, opts...)
	space, err := builder.Final(ceq, classes, []builder.FinalLeg[Class[T]]{builder.From(source, eq, classOf)}, all...)
	if err != nil {
		return nil, fmt.Errorf("quotient: %w", err)
	}

	proj, err := continuity.New(source, space, eq, ceq, classOf,
		continuity.WithNote(continuity.NoteStructured), continuity.WithName("π"))
	if err != nil {
		return nil, fmt.Errorf("quotient: projection: %w", err)
	}

	return &Quotient[T]{
		source:     source,
		eqSource:   eq,
		space:      space,
		eq:         ceq,
		classes:    classes,
		projection: proj,
	}, nil
}
