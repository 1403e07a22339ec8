package core

import "fmt"

// Validate reports whether space satisfies the topology axioms under eq:
//
//	(a) ∅ and the whole carrier are listed opens (as sets);
//	(b) the union and intersection of any two listed opens is listed;
//	(c) every open's points lie in the carrier.
//
// Pure predicate; see Check for the reason behind a false result.
//
// Complexity: O(k·n²) to encode k opens over n points, then O(k²·n/64).
func Validate[T any](eq *Eq[T], space *Space[T]) bool {
	return Check(eq, space) == nil
}

// Check is Validate with a diagnosis. It returns nil for a valid topology,
// otherwise an error wrapping ErrAxiomViolation (and ErrNotInCarrier for
// stray points) that names the first broken axiom found.
func Check[T any](eq *Eq[T], space *Space[T]) error {
	if space == nil {
		return ErrNilSpace
	}
	if eq == nil {
		return ErrNilEq
	}

	fam := NewFamily(eq, space.carrier)
	for i, open := range space.opens {
		if _, err := fam.Add(open); err != nil {
			return fmt.Errorf("%w: open #%d %s: %w", ErrAxiomViolation, i, space.ShowSet(open), err)
		}
	}
	if !fam.HasEmpty() {
		return fmt.Errorf("%w: empty set is not open", ErrAxiomViolation)
	}
	if !fam.HasCarrier() {
		return fmt.Errorf("%w: carrier is not open", ErrAxiomViolation)
	}
	if ok, i, j := fam.ClosedUnderUnionIntersection(); !ok {
		return fmt.Errorf("%w: opens %s and %s are not closed under union/intersection",
			ErrAxiomViolation, space.ShowSet(fam.Set(i)), space.ShowSet(fam.Set(j)))
	}

	return nil
}
