package raggo_test

import (
	"fmt"

	"github.com/hupe1980/raggo"
)

func ExampleArrayOfArrays() {
	// An adjacency list with explicit per-row capacities.
	adjacency, _ := raggo.New[int](0, 0)
	_ = adjacency.ResizeFromCapacities([]int{2, 0, 3})

	adjacency.EmplaceBack(0, 10)
	adjacency.EmplaceBack(0, 20)
	adjacency.EmplaceBack(2, 1)
	adjacency.EmplaceBack(2, 2)

	fmt.Println(adjacency.Sub(0))
	fmt.Println(adjacency.SizeOfArray(1))
	fmt.Println(adjacency.Sub(2))

	adjacency.EraseFromArray(0, 0, 1)
	fmt.Println(adjacency.Sub(0))
	// Output:
	// [10 20]
	// 0
	// [1 2]
	// [20]
}

func ExampleArrayOfArrays_Compress() {
	aoa, _ := raggo.New[int](2, 10)
	aoa.AppendToArray(0, 1, 2)
	aoa.EmplaceBack(1, 3)

	aoa.Compress()
	fmt.Println(aoa.CapacityOfArray(0), aoa.CapacityOfArray(1), aoa.ValueCapacity())
	// Output:
	// 2 1 3
}
