// Package universal verifies universal-property constructions over finite
// spaces: products, coproducts, equalizers, coequalizers, pullbacks and
// pushouts.
//
// Every construction is single-shot: New* builds the limiting or colimiting
// space (through builder and quotient) and certifies its canonical legs;
// an optional factorization call takes a competing cone or cocone, builds
// the unique mediating map pointwise, certifies it, and checks that it
// reproduces every supplied leg.
//
// Outcomes are reported in one shape, Report[A, M] (report.go), shared by all
// six constructions as Verdict = Report[Arrow, Info]:
//
//	fz, err := universal.Pairing(prod, f, g)
//	if err != nil { /* arrows do not line up: ErrShapeMismatch */ }
//	if !fz.Report.Holds() {
//		fmt.Println(fz.Report.Failures())
//	}
//
// Error policy:
//
//   - Building a space may fail hard (bad input): New* return errors.
//   - Arrows whose spaces or witnesses do not coincide by pointer identity
//     are rejected immediately with ErrShapeMismatch.
//   - Anything else that goes wrong while factoring, including a panic in a
//     caller-supplied function, becomes a failing mediator entry. Factoring
//     never panics, so it is safe inside property loops fed with malformed
//     cones.
package universal
