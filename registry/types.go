package registry

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyName indicates a registration without a name.
	ErrEmptyName = errors.New("registry: empty name")

	// ErrNilCheckable indicates a registration without a value to check.
	ErrNilCheckable = errors.New("registry: nil checkable")
)

// Checkable is anything carrying a continuity-style verdict.
// *continuity.Map and universal.Report satisfy it.
type Checkable interface {
	// Holds returns the verdict recorded at construction.
	Holds() bool
	// Verify re-runs the check against live values.
	Verify() bool
	// FailureReasons lists human-readable failures; empty when passing.
	FailureReasons() []string
}

// Entry is one registered value.
type Entry struct {
	ID    uuid.UUID
	Name  string
	Check Checkable
}

// Result is the outcome of checking one entry.
type Result struct {
	ID       uuid.UUID     `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Holds    bool          `json:"holds" yaml:"holds"`
	Verified bool          `json:"verified" yaml:"verified"`
	Failures []string      `json:"failures,omitempty" yaml:"failures,omitempty"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Passed reports whether both the recorded verdict and the re-check hold.
func (r Result) Passed() bool { return r.Holds && r.Verified }
