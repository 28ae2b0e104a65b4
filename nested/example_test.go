package nested_test

import (
	"fmt"

	"github.com/katalvlaran/arrkit/nested"
)

func ExampleFlatten() {
	fmt.Println(nested.Flatten([]any{1, []any{2, []any{3, 4}}, 5}))
	// Output:
	// [1 2 3 4 5]
}

// ExampleAt reads a single cell from a decoded 3-D voxel block.
func ExampleAt() {
	block, _ := nested.Zeros(3, 2)
	v, err := nested.At(block, 1, 0, 1)
	fmt.Println(v, err)
	// Output:
	// 0 <nil>
}
