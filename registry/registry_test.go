package registry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

// stub is a Checkable with canned answers.
type stub struct {
	holds, verified bool
	reasons         []string
	verifies        int
}

func (s *stub) Holds() bool              { return s.holds }
func (s *stub) Verify() bool             { s.verifies++; return s.verified }
func (s *stub) FailureReasons() []string { return s.reasons }

func passing() *stub { return &stub{holds: true, verified: true} }

func TestRegister(t *testing.T) {
	t.Parallel()
	r := New()

	_, err := r.Register("", passing())
	assert.ErrorIs(t, err, ErrEmptyName)
	_, err = r.Register("x", nil)
	assert.ErrorIs(t, err, ErrNilCheckable)
	assert.Zero(t, r.Len())

	a, err := r.Register("dup", passing())
	require.NoError(t, err)
	b, err := r.Register("dup", passing())
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, a)
	assert.NotEqual(t, a, b, "duplicate names get distinct IDs")

	entries := r.List()
	require.Len(t, entries, 2)
	assert.Equal(t, a, entries[0].ID)
	assert.Equal(t, b, entries[1].ID)

	r.Clear()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.List())
}

func TestRunAll(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	reg := prometheus.NewRegistry()
	r := New(
		WithLogger(slog.New(slog.NewTextHandler(&logs, nil))),
		WithRegisterer(reg),
		WithTracer(noop.NewTracerProvider().Tracer("test")),
		WithNamespace("test"),
	)

	good := passing()
	stale := &stub{holds: true, verified: false, reasons: []string{"open {a} lost its preimage"}}
	bad := &stub{holds: false, verified: false, reasons: []string{"leg f failed."}}
	_, err := r.Register("good", good)
	require.NoError(t, err)
	_, err = r.Register("stale", stale)
	require.NoError(t, err)
	_, err = r.Register("bad", bad)
	require.NoError(t, err)
	assert.Equal(t, 3.0, testutil.ToFloat64(r.metrics.entries))

	results, err := r.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []string{"good", "stale", "bad"}, []string{results[0].Name, results[1].Name, results[2].Name})
	assert.True(t, results[0].Passed())
	assert.True(t, results[1].Holds)
	assert.False(t, results[1].Verified)
	assert.False(t, results[1].Passed())
	assert.Equal(t, []string{"leg f failed."}, results[2].Failures)
	assert.Equal(t, 1, good.verifies)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.metrics.checks.WithLabelValues(outcomePass)))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.metrics.checks.WithLabelValues(outcomeFail)))
	n, err := testutil.GatherAndCount(reg, "test_registry_checks_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := logs.String()
	assert.Contains(t, out, "registry run complete")
	assert.Contains(t, out, "failed=2")
	assert.Contains(t, out, "name=stale")
	assert.Contains(t, out, "component=registry")
}

func TestRunAll_Cancelled(t *testing.T) {
	t.Parallel()
	r := New()
	for _, name := range []string{"a", "b"} {
		_, err := r.Register(name, passing())
		require.NoError(t, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := r.RunAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, results)

	_, err = r.Summarize(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunAll_Empty(t *testing.T) {
	t.Parallel()
	s, err := New().Summarize(context.Background())
	require.NoError(t, err)
	assert.True(t, s.OK())
	assert.Zero(t, s.Total)
}

func TestOptions_PanicOnInvalid(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { WithLogger(nil) })
	assert.Panics(t, func() { WithRegisterer(nil) })
	assert.Panics(t, func() { WithTracer(nil) })
	assert.Panics(t, func() { WithNamespace("") })
}
