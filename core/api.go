// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Space constructors and read-only accessors.
// Policy:
//   - Accessors return copies; a *Space is never mutated after construction.
//   - Every constructor documents how it treats duplicates and stray points.

package core

import (
	"fmt"
	"slices"
)

// NewSpace builds a Space from an explicit carrier and opens.
//
// Implementation:
//   - Stage 1: Deduplicate the carrier under eq, keeping first occurrences.
//   - Stage 2: Rewrite each open in carrier order with carrier representatives,
//     rejecting any point the carrier lacks.
//   - Stage 3: Drop opens that repeat an earlier open as a set.
//
// The topology axioms are NOT checked here; call Validate for that.
//
// Errors:
//   - ErrNilEq if eq is nil.
//   - ErrNotInCarrier (wrapped with the open's index) for stray points.
//
// Complexity: O(n² + k·n) with n carrier points and k opens.
func NewSpace[T any](eq *Eq[T], carrier []T, opens [][]T, opts ...SpaceOption) (*Space[T], error) {
	if eq == nil {
		return nil, ErrNilEq
	}
	base := Dedupe(eq, carrier)
	fam := NewFamily(eq, base)
	for i, open := range opens {
		if _, err := fam.Add(open); err != nil {
			return nil, fmt.Errorf("NewSpace: open #%d: %w", i, err)
		}
	}

	return newSpace(base, fam.Sets(), opts...), nil
}

// Raw builds a Space without any normalization or membership checks.
// It exists so arbitrary carrier/opens pairs can be handed to Validate.
func Raw[T any](carrier []T, opens [][]T, opts ...SpaceOption) *Space[T] {
	cp := make([][]T, len(opens))
	for i, o := range opens {
		cp[i] = slices.Clone(o)
	}

	return newSpace(slices.Clone(carrier), cp, opts...)
}

// newSpace assembles the value; callers hand over ownership of both slices.
func newSpace[T any](carrier []T, opens [][]T, opts ...SpaceOption) *Space[T] {
	cfg := spaceConfig{show: func(v any) string { return fmt.Sprint(v) }}
	for _, opt := range opts {
		opt(&cfg)
	}
	if carrier == nil {
		carrier = []T{}
	}

	return &Space[T]{carrier: carrier, opens: opens, show: cfg.show}
}

// Carrier returns a copy of the carrier in its representative order.
func (s *Space[T]) Carrier() []T {
	return slices.Clone(s.carrier)
}

// Opens returns a deep copy of the open-set list.
func (s *Space[T]) Opens() [][]T {
	out := make([][]T, len(s.opens))
	for i, o := range s.opens {
		out[i] = slices.Clone(o)
	}

	return out
}

// Size returns the number of carrier points.
func (s *Space[T]) Size() int { return len(s.carrier) }

// NumOpens returns the number of listed open sets.
func (s *Space[T]) NumOpens() int { return len(s.opens) }

// Point returns the i-th carrier point.
func (s *Space[T]) Point(i int) T { return s.carrier[i] }

// Open returns a copy of the i-th open set.
func (s *Space[T]) Open(i int) []T { return slices.Clone(s.opens[i]) }

// Show renders a point with the space's display function.
func (s *Space[T]) Show(x T) string {
	return s.show(x)
}

// ShowSet renders a subset as "{a, b, c}" with the display function.
func (s *Space[T]) ShowSet(set []T) string {
	out := "{"
	for i, x := range set {
		if i > 0 {
			out += ", "
		}
		out += s.show(x)
	}

	return out + "}"
}

// ShowOption returns a SpaceOption reproducing this space's display
// function, so derived spaces can inherit it.
func (s *Space[T]) ShowOption() SpaceOption {
	show := s.show
	return func(c *spaceConfig) { c.show = show }
}
