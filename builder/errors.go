// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX); core sentinels (core.ErrNilEq,
//     core.ErrNotInCarrier, core.ErrAxiomViolation) pass through wrapped.
//   • Every returned error is prefixed with the constructor name, e.g.
//     "Final: ...", via builderErrorf.
//   • Constructors MUST NOT panic on input; option constructors may.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooLarge indicates that a constructor enumerating the power set of the
// carrier (Discrete, Final) was handed more points than the configured
// limit (see WithMaxPowerSet, DefaultMaxPowerSet).
// Usage: if errors.Is(err, ErrTooLarge) { /* shrink the carrier */ }.
var ErrTooLarge = errors.New("builder: carrier too large for power-set enumeration")

// ErrNilSpace indicates a nil factor/target/source space.
var ErrNilSpace = errors.New("builder: space is nil")

// ErrNilLeg indicates a nil leg in an Initial/Final family.
var ErrNilLeg = errors.New("builder: leg is nil")

// builderErrorf wraps err with the given method context.
// The result reads "<Method>: <formatted message>: <err>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, err)
}
