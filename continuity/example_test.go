package continuity_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvtopo/builder"
	"github.com/katalvlaran/lvtopo/continuity"
	"github.com/katalvlaran/lvtopo/core"
)

// ExampleCertify inspects every violation of a rejected map.
func ExampleCertify() {
	eq := core.Comparable[int]()
	sierpinski, _ := builder.FromBase(eq, []int{0, 1}, [][]int{{1}})
	discrete, _ := builder.Discrete(eq, []int{0, 1})

	_, err := continuity.Certify(sierpinski, discrete, eq, eq, func(x int) int { return x })

	var nc *continuity.NotContinuousError[int, int]
	if errors.As(err, &nc) {
		for _, r := range nc.Witness.Failures() {
			fmt.Printf("open %v has preimage %v\n", r.Open, r.Preimage)
		}
	}

	// Output:
	// open [0] has preimage [0]
}

// ExampleCompose chains two certified maps.
func ExampleCompose() {
	eq := core.Comparable[string]()
	fine, _ := builder.Discrete(eq, []string{"x", "y"})
	coarse, _ := builder.Indiscrete(eq, []string{"x", "y"})

	f, _ := continuity.New(fine, coarse, eq, eq, func(s string) string { return s }, continuity.WithName("f"))
	g, _ := continuity.Identity(coarse, eq, continuity.WithName("id"))
	gf, _ := continuity.Compose(g, f)

	fmt.Println(gf.Name(), gf.Holds(), gf.Verify())
	fmt.Println(gf.Witness().Diagnostics().Note)

	// Output:
	// id∘f true true
	// derived by composition
}
