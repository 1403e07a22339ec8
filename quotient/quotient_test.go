package quotient_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
	"github.com/katalvlaran/lvtopo/quotient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func members[T any](cs []quotient.Class[T]) [][]T {
	out := make([][]T, len(cs))
	for i, c := range cs {
		out[i] = c.Members()
	}
	return out
}

func TestByRelation_Parity(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	src, err := builder.Discrete(eq, []int{1, 2, 3, 4})
	require.NoError(t, err)

	q, err := quotient.ByRelation(src, eq, func(a, b int) bool { return a%2 == b%2 })
	require.NoError(t, err)

	assert.Equal(t, [][]int{{1, 3}, {2, 4}}, members(q.Classes()))
	assert.Equal(t, 4, q.Space().NumOpens(), "discrete source gives a discrete quotient")
	assert.True(t, core.Validate(q.Eq(), q.Space()))
	assert.Same(t, src, q.Source())
	assert.Same(t, eq, q.EqSource())

	cl, ok := q.ClassOf(4)
	require.True(t, ok)
	assert.Equal(t, []int{2, 4}, cl.Members())
	assert.Equal(t, 2, cl.Representative())
	assert.Equal(t, 2, cl.Len())
	assert.Equal(t, "[2 4]", cl.String())
	_, ok = q.ClassOf(9)
	assert.False(t, ok)

	proj := q.Projection()
	assert.True(t, proj.Holds())
	assert.True(t, proj.Verify())
	assert.Equal(t, "π", proj.Name())
	assert.Equal(t, continuity.NoteStructured, proj.Witness().Diagnostics().Note)
	assert.True(t, q.Eq().Equal(proj.Apply(3), q.Classes()[0]))
	assert.Equal(t, "{2, 4}", q.Space().Show(cl))
}

// TestByRelation_FinalTopology collapses a non-open pair: only classes whose
// preimage is open survive as opens.
func TestByRelation_FinalTopology(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[string]()
	src, err := builder.FromBase(eq, []string{"a", "b", "c"}, [][]string{{"a"}})
	require.NoError(t, err)

	q, err := quotient.ByRelation(src, eq, func(x, y string) bool {
		return x == y || (x != "a" && y != "a")
	})
	require.NoError(t, err)

	classes := q.Classes()
	assert.Equal(t, [][]string{{"a"}, {"b", "c"}}, members(classes))
	assert.Equal(t, 3, q.Space().NumOpens())
	assert.True(t, core.IsOpen(q.Eq(), q.Space(), []quotient.Class[string]{classes[0]}))
	assert.False(t, core.IsOpen(q.Eq(), q.Space(), []quotient.Class[string]{classes[1]}))
}

func TestByRelation_LawViolations(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	src, err := builder.Discrete(eq, []int{1, 2, 3})
	require.NoError(t, err)

	tests := []struct {
		name string
		rel  func(a, b int) bool
		want []quotient.Law
	}{
		{
			name: "empty relation",
			rel:  func(a, b int) bool { return false },
			want: []quotient.Law{quotient.LawReflexivity, quotient.LawAmbientAgreement},
		},
		{
			name: "order is not symmetric",
			rel:  func(a, b int) bool { return a <= b },
			want: []quotient.Law{quotient.LawSymmetry},
		},
		{
			name: "neighbours are not transitive",
			rel:  func(a, b int) bool { return a-b <= 1 && b-a <= 1 },
			want: []quotient.Law{quotient.LawTransitivity},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := quotient.ByRelation(src, eq, tc.rel)
			require.Error(t, err)
			assert.True(t, errors.Is(err, quotient.ErrRelationLaw))

			var lawErr *quotient.RelationLawError
			require.True(t, errors.As(err, &lawErr))
			assert.Equal(t, tc.want, lawErr.Laws)
			assert.Len(t, lawErr.Details, len(tc.want))
			for _, law := range tc.want {
				assert.True(t, lawErr.Violates(law))
				assert.Contains(t, err.Error(), law.String())
			}
		})
	}
}

// TestByRelation_AmbientAgreement uses a witness coarser than the relation.
func TestByRelation_AmbientAgreement(t *testing.T) {
	t.Parallel()
	mod2 := core.NewEq("mod2", func(a, b int) bool { return a%2 == b%2 })
	src := core.Raw([]int{0, 1, 2}, [][]int{{}, {0, 1, 2}})

	_, err := quotient.ByRelation(src, mod2, func(a, b int) bool { return a == b })
	var lawErr *quotient.RelationLawError
	require.True(t, errors.As(err, &lawErr))
	assert.Equal(t, []quotient.Law{quotient.LawAmbientAgreement}, lawErr.Laws)
	assert.Equal(t, "ambient-agreement: 0 = 2 but 0 ≁ 2", lawErr.Details[0])
}

func TestByRelation_BadArguments(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	src, err := builder.Discrete(eq, []int{1})
	require.NoError(t, err)

	_, err = quotient.ByRelation(src, eq, nil)
	assert.ErrorIs(t, err, quotient.ErrNilRelation)
	_, err = quotient.ByRelation(nil, eq, func(a, b int) bool { return true })
	assert.ErrorIs(t, err, core.ErrNilSpace)
	_, err = quotient.ByRelation(src, nil, func(a, b int) bool { return true })
	assert.ErrorIs(t, err, core.ErrNilEq)
}

func TestGenerated(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	src, err := builder.Discrete(eq, []int{1, 2, 3, 4, 5})
	require.NoError(t, err)

	q, err := quotient.Generated(src, eq, []core.Pair[int, int]{
		core.MakePair(3, 2),
		core.MakePair(1, 2),
		core.MakePair(5, 5),
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4}, {5}}, members(q.Classes()))
	assert.True(t, q.Projection().Holds())

	none, err := quotient.Generated(src, eq, nil)
	require.NoError(t, err)
	assert.Len(t, none.Classes(), 5, "no identifications: singleton classes")

	_, err = quotient.Generated(src, eq, []core.Pair[int, int]{core.MakePair(1, 9)})
	assert.ErrorIs(t, err, core.ErrNotInCarrier)
}

func TestGenerated_TooManyClasses(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	src, err := builder.Discrete(eq, []int{1, 2, 3, 4})
	require.NoError(t, err)

	_, err = quotient.Generated(src, eq, nil, builder.WithMaxPowerSet(3))
	assert.ErrorIs(t, err, builder.ErrTooLarge)

	q, err := quotient.Generated(src, eq, []core.Pair[int, int]{core.MakePair(1, 2)}, builder.WithMaxPowerSet(3))
	require.NoError(t, err)
	assert.Len(t, q.Classes(), 3)
}

func TestClassEq(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	src, err := builder.Discrete(eq, []int{1, 2, 3})
	require.NoError(t, err)
	q, err := quotient.Generated(src, eq, []core.Pair[int, int]{core.MakePair(1, 3)})
	require.NoError(t, err)

	a, _ := q.ClassOf(1)
	b, _ := q.ClassOf(3)
	c, _ := q.ClassOf(2)
	assert.True(t, q.Eq().Equal(a, b))
	assert.False(t, q.Eq().Equal(a, c))
	assert.Equal(t, "class[==[int]]", q.Eq().Name())
}
