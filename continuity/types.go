// SPDX-License-Identifier: MIT
// Package: lvtopo/continuity
//
// types.go — errors, witness records and the Map value.

package continuity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvtopo/core"
)

// Sentinel errors for continuity operations.
var (
	// ErrNotContinuous indicates some open's preimage is not open.
	// Returned errors are *NotContinuousError values wrapping it.
	ErrNotContinuous = errors.New("continuity: map is not continuous")

	// ErrShapeMismatch indicates arrows whose spaces or witnesses do not
	// line up by identity.
	ErrShapeMismatch = errors.New("continuity: shape mismatch")

	// ErrNilFunc indicates a nil underlying function.
	ErrNilFunc = errors.New("continuity: function is nil")
)

// Provenance notes attached to witness diagnostics.
const (
	// NoteDirect marks a witness computed by the full preimage check.
	NoteDirect = "computed directly"
	// NoteStructured marks a witness for a structural arrow (projection,
	// injection, inclusion, quotient map) of a universal construction.
	NoteStructured = "via structured verification"
	// NoteComposed marks a witness derived from two composed witnesses.
	NoteComposed = "derived by composition"
	// NoteIdentity marks the witness of an identity map.
	NoteIdentity = "identity"
)

// Record pairs an open of the target with its preimage in the source.
type Record[A, B any] struct {
	Open     []B
	Preimage []A
}

// Diagnostics is the optional payload of a Witness: every open with its
// preimage, and a note on how the witness was obtained.
type Diagnostics[A, B any] struct {
	Preimages []Record[A, B]
	Note      string
}

// Witness is the outcome of a continuity check.
type Witness[A, B any] struct {
	holds       bool
	failures    []Record[A, B]
	diagnostics *Diagnostics[A, B]
	verify      func() bool
}

// Holds reports the verdict recorded at construction.
func (w *Witness[A, B]) Holds() bool { return w.holds }

// Failures returns every violating (open, preimage) pair; empty when Holds.
func (w *Witness[A, B]) Failures() []Record[A, B] { return slices.Clone(w.failures) }

// Diagnostics returns the preimage table and provenance note, or nil.
func (w *Witness[A, B]) Diagnostics() *Diagnostics[A, B] { return w.diagnostics }

// Verify re-runs the continuity check against the live spaces.
func (w *Witness[A, B]) Verify() bool {
	if w.verify == nil {
		return w.holds
	}
	return w.verify()
}

// NotContinuousError carries the failed witness of a rejected map.
type NotContinuousError[A, B any] struct {
	Witness *Witness[A, B]

	source *core.Space[A]
	target *core.Space[B]
}

// Error lists the first violation and the total count.
func (e *NotContinuousError[A, B]) Error() string {
	n := len(e.Witness.failures)
	if n == 0 {
		return ErrNotContinuous.Error()
	}
	first := e.Witness.failures[0]
	return fmt.Sprintf("%s: preimage %s of open %s is not open (%d violation(s))",
		ErrNotContinuous, e.source.ShowSet(first.Preimage), e.target.ShowSet(first.Open), n)
}

// Unwrap exposes ErrNotContinuous to errors.Is.
func (e *NotContinuousError[A, B]) Unwrap() error { return ErrNotContinuous }

// Map is a certified continuous map. It is immutable once constructed.
type Map[A, B any] struct {
	name    string
	source  *core.Space[A]
	target  *core.Space[B]
	eqS     *core.Eq[A]
	eqT     *core.Eq[B]
	fn      func(A) B
	witness *Witness[A, B]
}

// Name returns the label given with WithName, or "".
func (m *Map[A, B]) Name() string { return m.name }

// Source returns the domain space.
func (m *Map[A, B]) Source() *core.Space[A] { return m.source }

// Target returns the codomain space.
func (m *Map[A, B]) Target() *core.Space[B] { return m.target }

// EqSource returns the domain witness.
func (m *Map[A, B]) EqSource() *core.Eq[A] { return m.eqS }

// EqTarget returns the codomain witness.
func (m *Map[A, B]) EqTarget() *core.Eq[B] { return m.eqT }

// Apply evaluates the underlying function.
func (m *Map[A, B]) Apply(a A) B { return m.fn(a) }

// Func returns the underlying function.
func (m *Map[A, B]) Func() func(A) B { return m.fn }

// Witness returns the continuity witness.
func (m *Map[A, B]) Witness() *Witness[A, B] { return m.witness }

// Holds reports the witness verdict.
func (m *Map[A, B]) Holds() bool { return m.witness.Holds() }

// Verify re-checks the witness against the live spaces.
func (m *Map[A, B]) Verify() bool { return m.witness.Verify() }

// FailureReasons renders every witness failure as text.
func (m *Map[A, B]) FailureReasons() []string {
	out := make([]string, 0, len(m.witness.failures))
	for _, r := range m.witness.failures {
		out = append(out, fmt.Sprintf("open %s has non-open preimage %s",
			m.target.ShowSet(r.Open), m.source.ShowSet(r.Preimage)))
	}
	return out
}
