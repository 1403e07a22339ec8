package continuity_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture holds the two-point spaces shared by most tests. All spaces share
// one witness so arrows between them compose.
type fixture struct {
	eq         *core.Eq[int]
	sierpinski *core.Space[int]
	discrete   *core.Space[int]
	indiscrete *core.Space[int]
}

func newFixture(t testing.TB) fixture {
	t.Helper()
	eq := core.Comparable[int]()
	s, err := builder.FromBase(eq, []int{0, 1}, [][]int{{1}})
	require.NoError(t, err)
	d, err := builder.Discrete(eq, []int{0, 1})
	require.NoError(t, err)
	i, err := builder.Indiscrete(eq, []int{0, 1})
	require.NoError(t, err)
	return fixture{eq: eq, sierpinski: s, discrete: d, indiscrete: i}
}

func id(x int) int { return x }

// TestCertify_SierpinskiToDiscrete VERIFIES that the identity from the
// Sierpiński space into the discrete space is rejected with the exact
// offending open {0} and its preimage {0}.
func TestCertify_SierpinskiToDiscrete(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	w, err := continuity.Certify(f.sierpinski, f.discrete, f.eq, f.eq, id)
	require.Error(t, err)
	assert.True(t, errors.Is(err, continuity.ErrNotContinuous))
	require.NotNil(t, w)
	assert.False(t, w.Holds())
	assert.False(t, w.Verify())
	assert.Equal(t, []continuity.Record[int, int]{{Open: []int{0}, Preimage: []int{0}}}, w.Failures())

	var nc *continuity.NotContinuousError[int, int]
	require.True(t, errors.As(err, &nc))
	assert.Same(t, w, nc.Witness)
	assert.Equal(t, "continuity: map is not continuous: preimage {0} of open {0} is not open (1 violation(s))", err.Error())

	m, err := continuity.New(f.sierpinski, f.discrete, f.eq, f.eq, id)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, continuity.ErrNotContinuous)
}

func TestCertify_CollectsEveryFailure(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	src, err := builder.Indiscrete(eq, []int{0, 1, 2})
	require.NoError(t, err)
	dst, err := builder.Discrete(eq, []int{0, 1, 2})
	require.NoError(t, err)

	w, err := continuity.Certify(src, dst, eq, eq, id)
	require.Error(t, err)
	// Every proper non-empty subset fails: 2^3 - 2.
	assert.Len(t, w.Failures(), 6)
}

func TestCertify_Continuous(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	w, err := continuity.Certify(f.discrete, f.sierpinski, f.eq, f.eq, id)
	require.NoError(t, err)
	assert.True(t, w.Holds())
	assert.True(t, w.Verify())
	assert.Empty(t, w.Failures())

	d := w.Diagnostics()
	require.NotNil(t, d)
	assert.Equal(t, continuity.NoteDirect, d.Note)
	assert.Len(t, d.Preimages, f.sierpinski.NumOpens())

	// Anything into an indiscrete space is continuous.
	_, err = continuity.Certify(f.sierpinski, f.indiscrete, f.eq, f.eq, func(x int) int { return 1 - x })
	assert.NoError(t, err)
}

func TestCertify_BadArguments(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := continuity.Certify(nil, f.discrete, f.eq, f.eq, id)
	assert.ErrorIs(t, err, core.ErrNilSpace)
	_, err = continuity.Certify(f.discrete, f.discrete, nil, f.eq, id)
	assert.ErrorIs(t, err, core.ErrNilEq)
	_, err = continuity.Certify(f.discrete, f.discrete, f.eq, f.eq, nil)
	assert.ErrorIs(t, err, continuity.ErrNilFunc)
}

func TestMap_Accessors(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	flip := func(x int) int { return 1 - x }
	m, err := continuity.New(f.discrete, f.indiscrete, f.eq, f.eq, flip,
		continuity.WithName("flip"), continuity.WithNote("hand-checked"))
	require.NoError(t, err)

	assert.Equal(t, "flip", m.Name())
	assert.Same(t, f.discrete, m.Source())
	assert.Same(t, f.indiscrete, m.Target())
	assert.Same(t, f.eq, m.EqSource())
	assert.Same(t, f.eq, m.EqTarget())
	assert.Equal(t, 0, m.Apply(1))
	assert.Equal(t, 1, m.Func()(0))
	assert.True(t, m.Holds())
	assert.True(t, m.Verify())
	assert.Empty(t, m.FailureReasons())
	assert.Equal(t, "hand-checked", m.Witness().Diagnostics().Note)
}

func TestIdentity(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	m, err := continuity.Identity(f.sierpinski, f.eq)
	require.NoError(t, err)
	assert.True(t, m.Holds())
	assert.True(t, m.Verify())
	assert.Equal(t, continuity.NoteIdentity, m.Witness().Diagnostics().Note)
	for _, r := range m.Witness().Diagnostics().Preimages {
		assert.Equal(t, r.Open, r.Preimage)
	}

	_, err = continuity.Identity[int](nil, f.eq)
	assert.ErrorIs(t, err, core.ErrNilSpace)
}

func TestCompose(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	// discrete → sierpinski → discrete via the identity then a constant.
	fm, err := continuity.New(f.discrete, f.sierpinski, f.eq, f.eq, id, continuity.WithName("f"))
	require.NoError(t, err)
	gm, err := continuity.New(f.sierpinski, f.discrete, f.eq, f.eq, func(int) int { return 0 }, continuity.WithName("g"))
	require.NoError(t, err)

	gf, err := continuity.Compose(gm, fm)
	require.NoError(t, err)
	assert.Equal(t, "g∘f", gf.Name())
	assert.True(t, gf.Holds())
	assert.True(t, gf.Verify())
	assert.Equal(t, continuity.NoteComposed, gf.Witness().Diagnostics().Note)
	assert.Same(t, f.discrete, gf.Source())
	assert.Same(t, f.discrete, gf.Target())
	assert.Equal(t, 0, gf.Apply(1))

	named, err := continuity.Compose(gm, fm, continuity.WithName("const"))
	require.NoError(t, err)
	assert.Equal(t, "const", named.Name())
}

func TestCompose_ShapeMismatch(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	other := newFixture(t)

	fm, err := continuity.Identity(f.sierpinski, f.eq)
	require.NoError(t, err)

	// Same points, different space value.
	gm, err := continuity.Identity(other.sierpinski, f.eq)
	require.NoError(t, err)
	_, err = continuity.Compose(gm, fm)
	assert.ErrorIs(t, err, continuity.ErrShapeMismatch)

	// Same space value, different witness.
	hm, err := continuity.Identity(f.sierpinski, core.Comparable[int]())
	require.NoError(t, err)
	_, err = continuity.Compose(hm, fm)
	assert.ErrorIs(t, err, continuity.ErrShapeMismatch)

	_, err = continuity.Compose[int, int, int](nil, fm)
	assert.ErrorIs(t, err, continuity.ErrShapeMismatch)
}

// TestCompose_PreservesContinuity is the property: whenever f: A→B and
// g: B→A certify, g∘f certifies and verifies. Spaces and functions are drawn
// from a seeded generator.
func TestCompose_PreservesContinuity(t *testing.T) {
	t.Parallel()
	eq := core.Comparable[int]()
	rng := rand.New(rand.NewPCG(2024, 7))

	randomSpace := func(n int) *core.Space[int] {
		carrier := make([]int, n)
		for i := range carrier {
			carrier[i] = i
		}
		var base [][]int
		for k := rng.IntN(4); k > 0; k-- {
			base = append(base, core.Filter(carrier, func(int) bool { return rng.IntN(2) == 0 }))
		}
		s, err := builder.FromBase(eq, carrier, base)
		require.NoError(t, err)
		return s
	}
	randomFunc := func(from, to int) func(int) int {
		table := make([]int, from)
		for i := range table {
			table[i] = rng.IntN(to)
		}
		return func(x int) int { return table[x] }
	}

	composed := 0
	for round := 0; round < 300; round++ {
		na, nb := 1+rng.IntN(4), 1+rng.IntN(4)
		a, b := randomSpace(na), randomSpace(nb)
		fm, errF := continuity.New(a, b, eq, eq, randomFunc(na, nb))
		gm, errG := continuity.New(b, a, eq, eq, randomFunc(nb, na))
		if errF != nil || errG != nil {
			continue
		}
		gf, err := continuity.Compose(gm, fm)
		require.NoError(t, err)
		require.True(t, gf.Holds(), "round %d", round)
		require.True(t, gf.Verify(), "round %d", round)

		direct, err := continuity.Certify(a, a, eq, eq, gf.Func())
		require.NoError(t, err, "round %d: direct certification disagrees", round)
		require.True(t, direct.Holds())
		composed++
	}
	assert.Positive(t, composed, "the generator never produced a continuous pair")
}
