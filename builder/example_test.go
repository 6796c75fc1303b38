// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/slotgraph/builder"
	"github.com/katalvlaran/slotgraph/core"
)

// ExampleBuild builds a wheel and inspects its hub.
func ExampleBuild() {
	g := core.NewSimpleListGraph[string, int]()
	ids, err := builder.Build[string, int](g,
		func(i int) string { return fmt.Sprintf("w%d", i) },
		nil, nil,
		builder.Wheel(5))
	if err != nil {
		fmt.Println(err)
		return
	}
	hub, _ := g.GetNode(ids[0])
	deg, _ := g.Degree(ids[0])
	fmt.Println(g.NodeCount(), g.EdgeCount(), hub, deg)
	// Output: 5 8 w0 4
}

// ExampleRandomSparse shows that a stochastic constructor needs an RNG.
func ExampleRandomSparse() {
	g := core.NewSimpleMapGraph[int, int]()
	_, err := builder.Build[int, int](g, nil, nil, nil, builder.RandomSparse(4, 0.5))
	fmt.Println(err)
	// Output: Build: RandomSparse: builder: rng is required
}
