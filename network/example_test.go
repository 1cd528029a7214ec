package network_test

import (
	"fmt"

	"github.com/katalvlaran/sirnet/network"
)

// ExampleGenerate builds a complete graph K4; p=1 needs no RNG.
func ExampleGenerate() {
	nw, err := network.Generate(4, 1)
	if err != nil {
		panic(err)
	}
	nb, _ := nw.Neighbors(0)
	fmt.Println("edges:", nw.EdgeCount())
	fmt.Println("neighbours of 0:", nb)
	// Output:
	// edges: 6
	// neighbours of 0: [1 2 3]
}
