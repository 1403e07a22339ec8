// Package builder provides the topology generators of lvtopo: every way of
// producing a core.Space from a primitive description.
//
// The package offers the following key components:
//
//   - Elementary topologies:
//     – Discrete:    every subset open (2^n opens, bit-mask enumeration).
//     – Indiscrete:  {∅, carrier}.
//   - Generated topologies:
//     – FromBase:    ∅, carrier and the base, saturated under ∪ and ∩.
//     – FromSubbase: finite-intersection closure first, then FromBase.
//   - Structural spaces:
//     – Product:     rectangles U×V saturated as in FromBase.
//     – Coproduct:   inl(U) ∪ inr(V); already a topology.
//     – Subspace:    U ∩ S for a subset S.
//   - Induced topologies:
//     – Initial:     coarsest topology making maps into targets continuous
//     (legs built with Into).
//     – Final:       finest topology making maps from sources continuous
//     (legs built with From); exponential in the carrier size.
//   - Configuration primitives:
//     – BuilderOption, WithMaxPowerSet, WithSpaceOption.
//
// Guarantees:
//
//   - Duplicate carrier points are removed under the caller's witness before
//     any generator runs; an empty carrier yields the single open ∅.
//   - Every generator output satisfies core.Validate (Final double-checks and
//     reports core.ErrAxiomViolation otherwise).
//   - Errors are prefixed with the constructor name (MethodX constants) and
//     wrap the package or core sentinel; match them with errors.Is.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//
// Example:
//
//	eq := core.Comparable[string]()
//	s, err := builder.FromSubbase(eq, []string{"a", "b", "c"},
//		[][]string{{"a", "b"}, {"b", "c"}})
//	// opens: {}, {a,b,c}, {a,b}, {b,c}, {b}
package builder
