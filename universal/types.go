package universal

import (
	"fmt"

	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
)

// ErrShapeMismatch indicates arrows that do not share spaces or witnesses
// where a construction needs them to. It wraps continuity.ErrShapeMismatch.
var ErrShapeMismatch = fmt.Errorf("universal: %w", continuity.ErrShapeMismatch)

// Arrow is the type-erased view of a certified map stored in report
// entries. *continuity.Map satisfies it.
type Arrow interface {
	Name() string
	Holds() bool
	Verify() bool
	FailureReasons() []string
}

// Kind names a universal construction.
type Kind string

// Construction kinds.
const (
	KindProduct     Kind = "product"
	KindCoproduct   Kind = "coproduct"
	KindEqualizer   Kind = "equalizer"
	KindCoequalizer Kind = "coequalizer"
	KindPullback    Kind = "pullback"
	KindPushout     Kind = "pushout"
)

// Info is the metadata payload attached to every entry.
type Info struct {
	// Construction is the kind of universal property checked.
	Construction Kind
	// Checked is the number of points compared pointwise for this entry.
	Checked int
	// Note carries the witness provenance or a short remark.
	Note string
}

// Verdict is the report type produced by every construction.
type Verdict = Report[Arrow, Info]

// Factorization is the outcome of factoring a cone or cocone: the mediator
// (nil when it could not be built) and the report judging it.
type Factorization[S, T any] struct {
	Mediator *continuity.Map[S, T]
	Report   Verdict
}

// shapeErr builds a shape mismatch error with method context.
func shapeErr(method, what string) error {
	return fmt.Errorf("%s: %s: %w", method, what, ErrShapeMismatch)
}

// arrowEntry turns a certified map into a leg entry, re-verifying it.
func arrowEntry[S, T any](kind Kind, name string, m *continuity.Map[S, T]) Entry[Arrow, Info] {
	info := Info{Construction: kind, Checked: m.Source().Size()}
	if d := m.Witness().Diagnostics(); d != nil {
		info.Note = d.Note
	}
	e := Leg[Arrow, Info](name, m.Holds() && m.Verify()).WithArrow(m).WithMetadata(info)
	if !e.Holds() {
		e = e.WithFailure(fmt.Sprintf("leg %s is not continuous.", name))
	}
	return e
}

// mismatch returns the first point of pts where got and want disagree.
func mismatch[S, T any](pts []S, eq *core.Eq[T], got, want func(S) T) (S, bool) {
	for _, p := range pts {
		if !eq.Equal(got(p), want(p)) {
			return p, true
		}
	}
	var zero S
	return zero, false
}

// commuteEntry checks two parallel composites pointwise and reports the
// result as a leg named name.
func commuteEntry[S, T any](kind Kind, name string, src *core.Space[S], eq *core.Eq[T], lhs, rhs func(S) T) Entry[Arrow, Info] {
	pts := src.Carrier()
	e := Leg[Arrow, Info](name, true).WithMetadata(Info{Construction: kind, Checked: len(pts)})
	if p, bad := mismatch(pts, eq, lhs, rhs); bad {
		e = e.WithFailure(fmt.Sprintf("leg %s does not commute at %s.", name, src.Show(p)))
	}
	return e
}

// failed builds a factorization whose single mediator entry failed.
func failed[S, T any](kind Kind, name string, legs []Entry[Arrow, Info], msg string) Factorization[S, T] {
	med := Mediator[Arrow, Info](name, false).WithFailure(msg).WithMetadata(Info{Construction: kind})
	return Factorization[S, T]{Report: NewReport(legs, []Entry[Arrow, Info]{med})}
}

// guarded runs a factorization body, turning a panic from caller code into
// a failing mediator entry.
func guarded[S, T any](kind Kind, name string, body func() Factorization[S, T]) (out Factorization[S, T]) {
	defer func() {
		if r := recover(); r != nil {
			out = failed[S, T](kind, name, nil, fmt.Sprintf("mediator %s aborted: %v", name, r))
		}
	}()
	return body()
}

// sameArrowSource reports whether two arrows share source and source witness.
func sameArrowSource[S, A, B any](f *continuity.Map[S, A], g *continuity.Map[S, B]) bool {
	return f.Source() == g.Source() && f.EqSource() == g.EqSource()
}

// sameArrowTarget reports whether two arrows share target and target witness.
func sameArrowTarget[A, B, T any](f *continuity.Map[A, T], g *continuity.Map[B, T]) bool {
	return f.Target() == g.Target() && f.EqTarget() == g.EqTarget()
}
