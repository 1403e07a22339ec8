// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • maxPowerSet = DefaultMaxPowerSet
//   • spaceOpts   = none (core's fmt.Sprint display)

package builder

import "github.com/katalvlaran/lvtopo/core"

// builderConfig aggregates all knobs used by generators.
type builderConfig struct {
	maxPowerSet int
	spaceOpts   []core.SpaceOption
}

// newBuilderConfig constructs a config with defaults and applies options in
// order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxPowerSet: DefaultMaxPowerSet}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// withDefaultShow returns the space options with fallback prepended, so an
// explicit WithSpaceOption still wins.
func (c builderConfig) withDefaultShow(fallback core.SpaceOption) []core.SpaceOption {
	out := make([]core.SpaceOption, 0, len(c.spaceOpts)+1)
	out = append(out, fallback)
	return append(out, c.spaceOpts...)
}
