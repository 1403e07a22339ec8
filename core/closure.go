package core

// IsOpen reports whether subset is listed as open (as a set).
func IsOpen[T any](eq *Eq[T], space *Space[T], subset []T) bool {
	for _, u := range space.opens {
		if SameSet(eq, u, subset) {
			return true
		}
	}
	return false
}

// IsClosed reports whether the complement of subset is open.
func IsClosed[T any](eq *Eq[T], space *Space[T], subset []T) bool {
	return IsOpen(eq, space, Difference(eq, space.carrier, subset))
}

// ClosedSets returns the complements of the listed opens, in the same order.
func ClosedSets[T any](eq *Eq[T], space *Space[T]) [][]T {
	out := make([][]T, len(space.opens))
	for i, u := range space.opens {
		out[i] = Difference(eq, space.carrier, u)
	}
	return out
}

// Interior returns the largest open contained in subset: the union of every
// listed open inside it. Points are returned in carrier order.
func Interior[T any](eq *Eq[T], space *Space[T], subset []T) []T {
	var acc []T
	for _, u := range space.opens {
		if SubsetOf(eq, u, subset) {
			acc = Union(eq, acc, u)
		}
	}
	return Filter(space.carrier, func(x T) bool { return Contains(eq, acc, x) })
}

// Closure returns the smallest closed set containing subset: the carrier
// minus every open disjoint from subset. Points are returned in carrier order.
func Closure[T any](eq *Eq[T], space *Space[T], subset []T) []T {
	var outside []T
	for _, u := range space.opens {
		if Disjoint(eq, u, subset) {
			outside = Union(eq, outside, u)
		}
	}
	return Filter(space.carrier, func(x T) bool { return !Contains(eq, outside, x) })
}

// IsConnected reports whether the carrier cannot be split into two disjoint
// non-empty opens. The empty space counts as connected.
func IsConnected[T any](eq *Eq[T], space *Space[T]) bool {
	for _, u := range space.opens {
		if len(Dedupe(eq, u)) == 0 || SameSet(eq, u, space.carrier) {
			continue
		}
		if IsOpen(eq, space, Difference(eq, space.carrier, u)) {
			return false
		}
	}
	return true
}
