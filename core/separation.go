package core

// Separation axioms. Each query walks pairs of distinct carrier points and
// searches the listed opens for a witness; they assume a valid topology.

// IsT0 reports whether for every two distinct points some open contains
// exactly one of them (Kolmogorov).
//
// Complexity: O(n²·k·n).
func IsT0[T any](eq *Eq[T], space *Space[T]) bool {
	c := space.carrier
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			if eq.Equal(c[i], c[j]) {
				continue
			}
			if !separatesOneWay(eq, space, c[i], c[j]) && !separatesOneWay(eq, space, c[j], c[i]) {
				return false
			}
		}
	}
	return true
}

// IsT1 reports whether for every ordered pair of distinct points x, y some
// open contains x but not y (Fréchet).
func IsT1[T any](eq *Eq[T], space *Space[T]) bool {
	c := space.carrier
	for i := range c {
		for j := range c {
			if i == j || eq.Equal(c[i], c[j]) {
				continue
			}
			if !separatesOneWay(eq, space, c[i], c[j]) {
				return false
			}
		}
	}
	return true
}

// IsHausdorff reports whether every two distinct points have disjoint open
// neighbourhoods.
//
// Complexity: O(n²·k²·n).
func IsHausdorff[T any](eq *Eq[T], space *Space[T]) bool {
	c := space.carrier
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			if eq.Equal(c[i], c[j]) {
				continue
			}
			if !separatedByDisjointOpens(eq, space, c[i], c[j]) {
				return false
			}
		}
	}
	return true
}

func separatesOneWay[T any](eq *Eq[T], space *Space[T], in, out T) bool {
	for _, u := range space.opens {
		if Contains(eq, u, in) && !Contains(eq, u, out) {
			return true
		}
	}
	return false
}

func separatedByDisjointOpens[T any](eq *Eq[T], space *Space[T], x, y T) bool {
	for _, u := range space.opens {
		if !Contains(eq, u, x) {
			continue
		}
		for _, v := range space.opens {
			if Contains(eq, v, y) && Disjoint(eq, u, v) {
				return true
			}
		}
	}
	return false
}
