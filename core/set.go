package core

// Set helpers over plain slices. Every comparison routes through eq; order of
// the result follows the first argument.

// IndexOf returns the index of the first element of set equal to x, or -1.
func IndexOf[T any](eq *Eq[T], set []T, x T) int {
	for i, y := range set {
		if eq.Equal(x, y) {
			return i
		}
	}
	return -1
}

// Contains reports whether x is in set.
func Contains[T any](eq *Eq[T], set []T, x T) bool {
	return IndexOf(eq, set, x) >= 0
}

// Dedupe returns xs with later duplicates removed. The result is never nil.
func Dedupe[T any](eq *Eq[T], xs []T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if !Contains(eq, out, x) {
			out = append(out, x)
		}
	}
	return out
}

// SubsetOf reports whether every element of a lies in b.
func SubsetOf[T any](eq *Eq[T], a, b []T) bool {
	for _, x := range a {
		if !Contains(eq, b, x) {
			return false
		}
	}
	return true
}

// SameSet reports set equality, ignoring order and multiplicity.
func SameSet[T any](eq *Eq[T], a, b []T) bool {
	return SubsetOf(eq, a, b) && SubsetOf(eq, b, a)
}

// Union returns a ∪ b, deduplicated.
func Union[T any](eq *Eq[T], a, b []T) []T {
	out := Dedupe(eq, a)
	for _, x := range b {
		if !Contains(eq, out, x) {
			out = append(out, x)
		}
	}
	return out
}

// Intersect returns a ∩ b, deduplicated.
func Intersect[T any](eq *Eq[T], a, b []T) []T {
	out := make([]T, 0)
	for _, x := range a {
		if Contains(eq, b, x) && !Contains(eq, out, x) {
			out = append(out, x)
		}
	}
	return out
}

// Difference returns a \ b, deduplicated.
func Difference[T any](eq *Eq[T], a, b []T) []T {
	out := make([]T, 0)
	for _, x := range a {
		if !Contains(eq, b, x) && !Contains(eq, out, x) {
			out = append(out, x)
		}
	}
	return out
}

// Disjoint reports whether a and b share no element.
func Disjoint[T any](eq *Eq[T], a, b []T) bool {
	for _, x := range a {
		if Contains(eq, b, x) {
			return false
		}
	}
	return true
}

// Filter keeps the elements of xs satisfying keep, preserving order.
func Filter[T any](xs []T, keep func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// Preimage returns the points of domain whose image under fn lies in subset,
// preserving domain order. Membership in subset is decided by eqT.
func Preimage[S, T any](eqT *Eq[T], domain []S, fn func(S) T, subset []T) []S {
	return Filter(domain, func(s S) bool { return Contains(eqT, subset, fn(s)) })
}

// Image returns fn applied to every element of xs, deduplicated under eqT.
func Image[S, T any](eqT *Eq[T], xs []S, fn func(S) T) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if y := fn(x); !Contains(eqT, out, y) {
			out = append(out, y)
		}
	}
	return out
}
