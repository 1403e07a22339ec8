package registry

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "lvtopo"

// tracerName identifies spans emitted by this package.
const tracerName = "lvtopo/registry"

// Option configures a Registry.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	tracer     trace.Tracer
	namespace  string
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer:    otel.Tracer(tracerName),
		namespace: DefaultNamespace,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes registry logs to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("registry: WithLogger(nil)")
	}
	return func(c *config) { c.logger = logger }
}

// WithRegisterer registers the registry metrics on reg. Panics on nil.
func WithRegisterer(reg prometheus.Registerer) Option {
	if reg == nil {
		panic("registry: WithRegisterer(nil)")
	}
	return func(c *config) { c.registerer = reg }
}

// WithTracer replaces the global OpenTelemetry tracer. Panics on nil.
func WithTracer(tracer trace.Tracer) Option {
	if tracer == nil {
		panic("registry: WithTracer(nil)")
	}
	return func(c *config) { c.tracer = tracer }
}

// WithNamespace sets the metric namespace. Panics on an empty string.
func WithNamespace(ns string) Option {
	if ns == "" {
		panic("registry: WithNamespace(\"\")")
	}
	return func(c *config) { c.namespace = ns }
}
