package continuity

// Option configures Certify, New, Identity and Compose.
type Option func(*config)

type config struct {
	note string
	name string
}

func newConfig(defaultNote string, opts ...Option) config {
	cfg := config{note: defaultNote}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNote overrides the provenance note recorded in witness diagnostics.
func WithNote(note string) Option {
	return func(c *config) { c.note = note }
}

// WithName labels the resulting map (used by registries and reports).
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}
