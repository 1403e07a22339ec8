// Package continuity certifies maps between finite spaces.
//
// A map f: A → B between core.Space values is continuous when the preimage
// of every open of B is open in A. Certify decides this and returns a
// Witness: a verdict, every violating (open, preimage) pair, a Verify
// operation that re-runs the check against the live spaces, and a
// diagnostic table of all preimages tagged with a provenance note.
//
// Map bundles source, target, both equality witnesses, the function and its
// witness. New refuses non-continuous functions with *NotContinuousError,
// which carries the full witness:
//
//	m, err := continuity.New(src, dst, eqA, eqB, f)
//	var nc *continuity.NotContinuousError[int, int]
//	if errors.As(err, &nc) {
//		for _, r := range nc.Witness.Failures() { ... }
//	}
//
// Identity and Compose build maps without re-deciding continuity, yet their
// witnesses still Verify against the live spaces. Compose requires the inner
// target and the outer source to be the same *core.Space and the same
// *core.Eq (pointer identity); otherwise it returns ErrShapeMismatch before
// looking at any points.
package continuity
