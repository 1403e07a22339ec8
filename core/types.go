// SPDX-License-Identifier: MIT
// Package: lvtopo/core
//
// types.go — sentinel errors, equality witnesses, compound point types and
// the Space value.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core operations.
var (
	// ErrNilSpace indicates a nil *Space was supplied.
	ErrNilSpace = errors.New("core: space is nil")

	// ErrNilEq indicates a nil equality witness was supplied.
	ErrNilEq = errors.New("core: equality witness is nil")

	// ErrNotInCarrier indicates a subset contains a point the carrier lacks.
	ErrNotInCarrier = errors.New("core: point not in carrier")

	// ErrAxiomViolation indicates a candidate topology breaks an axiom.
	ErrAxiomViolation = errors.New("core: topology axiom violated")
)

// Eq is an equality witness for values of type T.
//
// Two values are the same point if and only if Equal says so. The pointer
// identity of an *Eq is meaningful: composition and factorization compare
// witnesses by pointer to decide whether two arrows line up.
type Eq[T any] struct {
	name  string
	equal func(a, b T) bool
}

// NewEq wraps equal as a named equality witness.
// Panics on nil equal: a witness without a comparator is a programmer error.
func NewEq[T any](name string, equal func(a, b T) bool) *Eq[T] {
	if equal == nil {
		panic("core: NewEq(nil)")
	}
	return &Eq[T]{name: name, equal: equal}
}

// Comparable returns a witness backed by Go's == operator.
// Each call returns a fresh witness (distinct pointer identity).
func Comparable[T comparable]() *Eq[T] {
	return NewEq(fmt.Sprintf("==[%T]", *new(T)), func(a, b T) bool { return a == b })
}

// Equal reports whether a and b are the same point under this witness.
func (e *Eq[T]) Equal(a, b T) bool {
	return e.equal(a, b)
}

// Name returns the witness label used in diagnostics.
func (e *Eq[T]) Name() string {
	return e.name
}

// Pair is a point of a product carrier.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair builds Pair{a, b}.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// String renders the pair as "(a, b)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// PairEq lifts component witnesses to pairs: equal iff both components are.
func PairEq[A, B any](ea *Eq[A], eb *Eq[B]) *Eq[Pair[A, B]] {
	return NewEq(ea.Name()+"×"+eb.Name(), func(p, q Pair[A, B]) bool {
		return ea.Equal(p.First, q.First) && eb.Equal(p.Second, q.Second)
	})
}

// Side tags which summand a Sum value lives in.
type Side uint8

const (
	// Left marks values injected from the first summand.
	Left Side = iota
	// Right marks values injected from the second summand.
	Right
)

// String returns "inl" or "inr".
func (s Side) String() string {
	if s == Left {
		return "inl"
	}
	return "inr"
}

// Sum is a point of a coproduct carrier: a tagged disjoint union.
type Sum[A, B any] struct {
	side  Side
	left  A
	right B
}

// Inl injects a into the left summand.
func Inl[A, B any](a A) Sum[A, B] {
	return Sum[A, B]{side: Left, left: a}
}

// Inr injects b into the right summand.
func Inr[A, B any](b B) Sum[A, B] {
	return Sum[A, B]{side: Right, right: b}
}

// Side reports the summand tag.
func (s Sum[A, B]) Side() Side { return s.side }

// Left returns the left payload and true when s is a left injection.
func (s Sum[A, B]) Left() (A, bool) {
	return s.left, s.side == Left
}

// Right returns the right payload and true when s is a right injection.
func (s Sum[A, B]) Right() (B, bool) {
	return s.right, s.side == Right
}

// String renders "inl(a)" or "inr(b)".
func (s Sum[A, B]) String() string {
	if s.side == Left {
		return fmt.Sprintf("inl(%v)", s.left)
	}
	return fmt.Sprintf("inr(%v)", s.right)
}

// Case eliminates a Sum by dispatching to onLeft or onRight.
func Case[A, B, C any](s Sum[A, B], onLeft func(A) C, onRight func(B) C) C {
	if s.side == Left {
		return onLeft(s.left)
	}
	return onRight(s.right)
}

// SumEq lifts summand witnesses: equal iff same tag and equal payloads.
func SumEq[A, B any](ea *Eq[A], eb *Eq[B]) *Eq[Sum[A, B]] {
	return NewEq(ea.Name()+"+"+eb.Name(), func(p, q Sum[A, B]) bool {
		if p.side != q.side {
			return false
		}
		if p.side == Left {
			return ea.Equal(p.left, q.left)
		}
		return eb.Equal(p.right, q.right)
	})
}

// SpaceOption configures a Space at construction.
type SpaceOption func(*spaceConfig)

type spaceConfig struct {
	show func(any) string
}

// WithShow sets the display function used in diagnostics.
// It never affects semantics. Panics on nil.
func WithShow[T any](show func(T) string) SpaceOption {
	if show == nil {
		panic("core: WithShow(nil)")
	}
	return func(c *spaceConfig) {
		c.show = func(v any) string {
			if t, ok := v.(T); ok {
				return show(t)
			}
			return fmt.Sprint(v)
		}
	}
}

// Space is a finite topological space candidate: a carrier with a fixed
// representative ordering, and a list of open subsets.
//
// Whether the opens satisfy the topology axioms is decided by Validate.
type Space[T any] struct {
	carrier []T
	opens   [][]T
	show    func(any) string
}
