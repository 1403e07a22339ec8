package quotient

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
)

// Sentinel errors for quotient construction.
var (
	// ErrRelationLaw indicates the supplied relation is not an equivalence
	// consistent with the carrier equality. Returned as *RelationLawError.
	ErrRelationLaw = errors.New("quotient: relation is not a valid equivalence")

	// ErrNilRelation indicates a nil relation function.
	ErrNilRelation = errors.New("quotient: relation is nil")
)

// Law names one requirement on a quotient relation.
type Law int

const (
	// LawReflexivity: x ~ x for every point.
	LawReflexivity Law = iota
	// LawSymmetry: x ~ y implies y ~ x.
	LawSymmetry
	// LawTransitivity: x ~ y and y ~ z imply x ~ z.
	LawTransitivity
	// LawAmbientAgreement: points equal under the carrier witness are related.
	LawAmbientAgreement
)

// String returns the law's name.
func (l Law) String() string {
	switch l {
	case LawReflexivity:
		return "reflexivity"
	case LawSymmetry:
		return "symmetry"
	case LawTransitivity:
		return "transitivity"
	case LawAmbientAgreement:
		return "ambient-agreement"
	default:
		return "unknown"
	}
}

// RelationLawError lists every violated law with one counterexample each.
type RelationLawError struct {
	Laws    []Law
	Details []string
}

// Error joins the violated laws and their counterexamples.
func (e *RelationLawError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRelationLaw, strings.Join(e.Details, "; "))
}

// Unwrap exposes ErrRelationLaw to errors.Is.
func (e *RelationLawError) Unwrap() error { return ErrRelationLaw }

// Violates reports whether law is among the violations.
func (e *RelationLawError) Violates(law Law) bool {
	return slices.Contains(e.Laws, law)
}

// Class is one equivalence class: the points reachable from a seed under
// the relation, in source carrier order.
type Class[T any] struct {
	members []T
}

// Members returns a copy of the class points.
func (c Class[T]) Members() []T { return slices.Clone(c.members) }

// Len returns the number of points in the class.
func (c Class[T]) Len() int { return len(c.members) }

// Representative returns the first member in carrier order.
// Classes built by this package are never empty.
func (c Class[T]) Representative() T { return c.members[0] }

// String renders "[a b c]".
func (c Class[T]) String() string { return fmt.Sprint(c.members) }

// ClassEq compares classes as sets under eq.
func ClassEq[T any](eq *core.Eq[T]) *core.Eq[Class[T]] {
	return core.NewEq("class["+eq.Name()+"]", func(a, b Class[T]) bool {
		return core.SameSet(eq, a.members, b.members)
	})
}

// Quotient is the result of collapsing a space: the class space, its
// witness, the classes, and the certified projection.
type Quotient[T any] struct {
	source     *core.Space[T]
	eqSource   *core.Eq[T]
	space      *core.Space[Class[T]]
	eq         *core.Eq[Class[T]]
	classes    []Class[T]
	projection *continuity.Map[T, Class[T]]
}

// Source returns the collapsed space.
func (q *Quotient[T]) Source() *core.Space[T] { return q.source }

// EqSource returns the source witness.
func (q *Quotient[T]) EqSource() *core.Eq[T] { return q.eqSource }

// Space returns the quotient space over classes.
func (q *Quotient[T]) Space() *core.Space[Class[T]] { return q.space }

// Eq returns the class witness shared by Space and Projection.
func (q *Quotient[T]) Eq() *core.Eq[Class[T]] { return q.eq }

// Classes returns the partition in discovery order.
func (q *Quotient[T]) Classes() []Class[T] { return slices.Clone(q.classes) }

// Projection returns the certified map x ↦ [x].
func (q *Quotient[T]) Projection() *continuity.Map[T, Class[T]] { return q.projection }

// ClassOf returns the class holding x.
func (q *Quotient[T]) ClassOf(x T) (Class[T], bool) {
	for _, c := range q.classes {
		if core.Contains(q.eqSource, c.members, x) {
			return c, true
		}
	}
	return Class[T]{}, false
}
