// Package core provides the finite topological space model shared by every
// other lvtopo package.
//
// A Space[T] is an explicit finite carrier plus an explicit finite family of
// open subsets. Nothing about T is assumed: every comparison of points goes
// through a caller-supplied equality witness (*Eq[T]), so carriers may hold
// structurally rich values whose sameness is domain-defined.
//
// What lives here:
//
//   - Eq[T]            – equality witness; identity of the *Eq value matters
//     for shape checks in continuity and universal.
//   - Pair[A,B], Sum[A,B] – compound points for products and coproducts,
//     with PairEq / SumEq lifting witnesses.
//   - Space[T]         – carrier + opens, optional display function (WithShow).
//   - Family[T]        – deduplicated subset family over a fixed carrier,
//     with closure under union/intersection (the fixed-point
//     engine behind builder.FromBase).
//   - Validate / Check – the topology axiom checker.
//   - Separation and closure queries: IsT0, IsT1, IsHausdorff, Closure,
//     Interior, ClosedSets, IsConnected.
//
// Invariants:
//
//   - NewSpace deduplicates the carrier under the witness and rejects opens
//     with points outside the carrier (ErrNotInCarrier).
//   - The topology axioms are a checkable property, not a maintained
//     invariant: Raw builds arbitrary pairs for Validate to judge.
//   - Spaces are immutable after construction; accessors return copies.
//
// Complexity:
//
//	Validate is O(k²·n/64) over k opens and n carrier points once opens are
//	encoded as membership masks. Everything in lvtopo targets carriers of
//	tens of points, not millions.
//
// Errors:
//
//	ErrNilSpace       – nil *Space passed where a space is required.
//	ErrNilEq          – nil equality witness.
//	ErrNotInCarrier   – a subset mentions a point outside the carrier.
//	ErrAxiomViolation – Check found a broken topology axiom.
package core
