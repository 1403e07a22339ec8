// Package lvtopo is a finite-model engine for point-set topology: spaces are
// an explicit carrier plus an explicit list of opens, and every construction
// is a direct, terminating computation over those sets.
//
// What is in the box?
//
//   - Space model: carriers compared through caller-supplied equality
//     witnesses, an axiom checker, separation and closure queries
//   - Generators: discrete, indiscrete, base, subbase, product, coproduct,
//     subspace, initial and final topologies
//   - Continuity: certification with full failure records, identity,
//     composition with re-verifiable witnesses
//   - Quotients: by an equivalence relation or by generated identifications
//   - Universal properties: product, coproduct, equalizer, coequalizer,
//     pullback and pushout, all reporting through one generic Report
//   - Registry: batch verification with logs, metrics, traces and summaries
//   - Space files: YAML descriptors validated before anything is built
//
// Layout:
//
//	core/        — Space, Eq, Pair, Sum, set helpers, Validate, IsHausdorff…
//	builder/     — Discrete, Indiscrete, FromBase, FromSubbase, Product, Initial, Final…
//	continuity/  — Certify, New, Identity, Compose, Witness
//	quotient/    — ByRelation, Generated, Class
//	universal/   — Report, NewProduct/Pairing … NewPushout/FactorThroughPushout
//	registry/    — Registry, RunAll, Summary (JSON, YAML, table)
//	spacefile/   — Decode, Load, Encode, Describe
//	examples/    — runnable scenarios
//
// Quick example:
//
//	eq := core.Comparable[string]()
//	s, _ := builder.Discrete(eq, []string{"Depot", "Hub"})
//	fmt.Println(s.NumOpens(), core.IsHausdorff(eq, s)) // 4 true
//
// All algorithms favour complete enumeration over speed: carriers of tens of
// points, not millions. Power-set enumeration is capped (builder.DefaultMaxPowerSet).
//
//	go get github.com/katalvlaran/lvtopo
package lvtopo
