package spacefile_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvtopo/core"
	"github.com/katalvlaran/lvtopo/spacefile"
)

func ExampleDecode() {
	doc, err := spacefile.Decode(strings.NewReader(`
spaces:
  - name: path
    kind: base
    carrier: [left, mid, right]
    base: [[left], [right]]
`))
	if err != nil {
		fmt.Println(err)
		return
	}
	spaces, _ := doc.Build()
	path := spaces["path"]
	fmt.Println(path.NumOpens(), core.IsConnected(spacefile.Eq(), path))
	fmt.Println(core.Closure(spacefile.Eq(), path, []string{"left"}))

	// Output:
	// 5 true
	// [left mid]
}
