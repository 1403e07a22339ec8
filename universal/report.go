// SPDX-License-Identifier: MIT
// Package: lvtopo/universal
//
// report.go — the construction-agnostic verdict model.
//
// A Report collects legs (cone/cocone arrows) and mediators (candidate
// factoring arrows). Each Entry carries its own verdict, optional failure
// text, optional arrow and optional metadata. Reports are built once by
// NewReport and never mutated afterwards.

package universal

import "slices"

// Role distinguishes legs from mediators in failure text.
type Role string

const (
	// RoleLeg marks a cone/cocone leg.
	RoleLeg Role = "leg"
	// RoleMediator marks a candidate factoring arrow.
	RoleMediator Role = "mediator"
)

// Entry is one leg or mediator verdict. A is the arrow type, M the metadata
// type. Build with Leg or Mediator and refine with the With* methods.
type Entry[A, M any] struct {
	role        Role
	name        string
	holds       bool
	failure     string
	arrow       A
	hasArrow    bool
	metadata    M
	hasMetadata bool
}

// Leg starts a leg entry with the given verdict.
func Leg[A, M any](name string, holds bool) Entry[A, M] {
	return Entry[A, M]{role: RoleLeg, name: name, holds: holds}
}

// Mediator starts a mediator entry with the given verdict.
func Mediator[A, M any](name string, holds bool) Entry[A, M] {
	return Entry[A, M]{role: RoleMediator, name: name, holds: holds}
}

// WithArrow attaches the underlying arrow.
func (e Entry[A, M]) WithArrow(a A) Entry[A, M] {
	e.arrow, e.hasArrow = a, true
	return e
}

// WithMetadata attaches a metadata payload.
func (e Entry[A, M]) WithMetadata(m M) Entry[A, M] {
	e.metadata, e.hasMetadata = m, true
	return e
}

// WithFailure records failure text and marks the entry as failing.
func (e Entry[A, M]) WithFailure(msg string) Entry[A, M] {
	e.failure, e.holds = msg, false
	return e
}

// Role returns RoleLeg or RoleMediator.
func (e Entry[A, M]) Role() Role { return e.role }

// Name returns the entry label.
func (e Entry[A, M]) Name() string { return e.name }

// Holds returns the entry verdict.
func (e Entry[A, M]) Holds() bool { return e.holds }

// Failure returns the explicit failure text, or "".
func (e Entry[A, M]) Failure() string { return e.failure }

// Arrow returns the attached arrow, if any.
func (e Entry[A, M]) Arrow() (A, bool) { return e.arrow, e.hasArrow }

// Metadata returns the attached payload, if any.
func (e Entry[A, M]) Metadata() (M, bool) { return e.metadata, e.hasMetadata }

// reason is the failure line for a failing entry.
func (e Entry[A, M]) reason() string {
	if e.failure != "" {
		return e.failure
	}
	return string(e.role) + " " + e.name + " failed."
}

// Report aggregates legs and mediators into one verdict.
type Report[A, M any] struct {
	legs      []Entry[A, M]
	mediators []Entry[A, M]
	holds     bool
	failures  []string
}

// NewReport builds a report. Holds is the conjunction of every entry;
// Failures lists, legs first then mediators, each failing entry's explicit
// text or "<role> <name> failed.".
func NewReport[A, M any](legs, mediators []Entry[A, M]) Report[A, M] {
	r := Report[A, M]{
		legs:      slices.Clone(legs),
		mediators: slices.Clone(mediators),
		holds:     true,
	}
	for _, e := range slices.Concat(legs, mediators) {
		if !e.holds {
			r.holds = false
			r.failures = append(r.failures, e.reason())
		}
	}
	return r
}

// Holds reports whether every leg and mediator holds.
func (r Report[A, M]) Holds() bool { return r.holds }

// Failures returns the flattened failure lines.
func (r Report[A, M]) Failures() []string { return slices.Clone(r.failures) }

// Legs returns the leg entries.
func (r Report[A, M]) Legs() []Entry[A, M] { return slices.Clone(r.legs) }

// Mediators returns the mediator entries.
func (r Report[A, M]) Mediators() []Entry[A, M] { return slices.Clone(r.mediators) }

// Leg looks a leg up by name.
func (r Report[A, M]) Leg(name string) (Entry[A, M], bool) { return find(r.legs, name) }

// Mediator looks a mediator up by name.
func (r Report[A, M]) Mediator(name string) (Entry[A, M], bool) { return find(r.mediators, name) }

// Verify returns Holds; reports are immutable, so there is nothing to redo.
func (r Report[A, M]) Verify() bool { return r.holds }

// FailureReasons is Failures under the registry's naming.
func (r Report[A, M]) FailureReasons() []string { return r.Failures() }

func find[A, M any](es []Entry[A, M], name string) (Entry[A, M], bool) {
	for _, e := range es {
		if e.name == name {
			return e, true
		}
	}
	return Entry[A, M]{}, false
}
