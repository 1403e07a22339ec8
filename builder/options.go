// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package builder

import "github.com/katalvlaran/lvtopo/core"

// BuilderOption customizes a generator by mutating a builderConfig before
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithMaxPowerSet sets the largest carrier that Discrete and Final will
// enumerate. Panics unless 0 ≤ n ≤ HardMaxPowerSet.
func WithMaxPowerSet(n int) BuilderOption {
	if n < 0 || n > HardMaxPowerSet {
		panic("builder: WithMaxPowerSet(n) out of [0,63]")
	}
	return func(c *builderConfig) {
		c.maxPowerSet = n
	}
}

// WithSpaceOption forwards a core.SpaceOption (e.g. core.WithShow) to the
// produced space. Panics on nil.
func WithSpaceOption(opt core.SpaceOption) BuilderOption {
	if opt == nil {
		panic("builder: WithSpaceOption(nil)")
	}
	return func(c *builderConfig) {
		c.spaceOpts = append(c.spaceOpts, opt)
	}
}
