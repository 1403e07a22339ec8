package registry

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Registry is an ordered, append-only list of named checkables.
type Registry struct {
	mu      sync.Mutex
	entries []Entry

	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	cfg := newConfig(opts...)
	return &Registry{
		logger:  cfg.logger.With(slog.String("component", "registry")),
		tracer:  cfg.tracer,
		metrics: newMetrics(cfg.registerer, cfg.namespace),
	}
}

// Register appends c under name and returns its ID. Names need not be
// unique; IDs are.
//
// Errors: ErrEmptyName, ErrNilCheckable.
func (r *Registry) Register(name string, c Checkable) (uuid.UUID, error) {
	if name == "" {
		return uuid.Nil, ErrEmptyName
	}
	if c == nil {
		return uuid.Nil, fmt.Errorf("Register %q: %w", name, ErrNilCheckable)
	}

	id := uuid.New()
	r.mu.Lock()
	r.entries = append(r.entries, Entry{ID: id, Name: name, Check: c})
	n := len(r.entries)
	r.mu.Unlock()

	r.metrics.entries.Set(float64(n))
	r.logger.Debug("entry registered", slog.String("name", name), slog.String("id", id.String()))
	return id, nil
}

// Clear drops every entry.
func (r *Registry) Clear() {
	r.mu.Lock()
	n := len(r.entries)
	r.entries = nil
	r.mu.Unlock()

	r.metrics.entries.Set(0)
	r.logger.Debug("registry cleared", slog.Int("dropped", n))
}

// List returns the entries in registration order.
func (r *Registry) List() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.entries)
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// RunAll checks every entry in registration order: the recorded verdict,
// a fresh Verify, and the failure reasons. A cancelled ctx stops the pass
// between entries; the results gathered so far are returned with ctx.Err().
func (r *Registry) RunAll(ctx context.Context) ([]Result, error) {
	entries := r.List()

	ctx, span := r.tracer.Start(ctx, "registry.RunAll",
		trace.WithAttributes(attribute.Int("registry.entries", len(entries))),
	)
	defer span.End()

	start := time.Now()
	results := make([]Result, 0, len(entries))
	failed := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "context canceled")
			return results, err
		}
		res := r.check(ctx, e)
		if !res.Passed() {
			failed++
		}
		results = append(results, res)
	}
	elapsed := time.Since(start)
	r.metrics.runDuration.Observe(elapsed.Seconds())

	span.SetAttributes(attribute.Int("registry.failed", failed))
	if failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d of %d entries failed", failed, len(entries)))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	r.logger.Info("registry run complete",
		slog.Int("total", len(entries)),
		slog.Int("failed", failed),
		slog.Duration("duration", elapsed),
	)

	return results, nil
}

// Summarize runs every entry and folds the results into a Summary.
func (r *Registry) Summarize(ctx context.Context) (Summary, error) {
	results, err := r.RunAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	return NewSummary(results), nil
}

func (r *Registry) check(ctx context.Context, e Entry) Result {
	_, span := r.tracer.Start(ctx, "registry.check",
		trace.WithAttributes(
			attribute.String("registry.entry.name", e.Name),
			attribute.String("registry.entry.id", e.ID.String()),
		),
	)
	defer span.End()

	start := time.Now()
	res := Result{
		ID:       e.ID,
		Name:     e.Name,
		Holds:    e.Check.Holds(),
		Verified: e.Check.Verify(),
		Failures: e.Check.FailureReasons(),
	}
	res.Duration = time.Since(start)

	passed := res.Passed()
	r.metrics.record(passed)
	span.SetAttributes(attribute.Bool("registry.entry.passed", passed))
	if passed {
		span.SetStatus(codes.Ok, "")
		return res
	}

	span.SetStatus(codes.Error, "check failed")
	r.logger.Warn("entry failed",
		slog.String("name", e.Name),
		slog.Bool("holds", res.Holds),
		slog.Bool("verified", res.Verified),
		slog.Any("failures", res.Failures),
	)
	return res
}
