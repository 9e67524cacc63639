package hrep_test

import (
	"fmt"

	"github.com/katalvlaran/polyq/hrep"
)

// ExampleBox builds the half-space model of the sup-norm unit ball in ℝ²:
// two rows per axis, upper bound first.
func ExampleBox() {
	sys, err := hrep.Box(hrep.BoxSpec{Center: []float64{0, 0}, Radius: 1})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for i := 0; i < sys.Rows(); i++ {
		fmt.Printf("%v ≤ %g\n", sys.A.RawRowView(i), sys.B.AtVec(i))
	}
	// Output:
	// [1 0] ≤ 1
	// [-1 0] ≤ 1
	// [0 1] ≤ 1
	// [0 -1] ≤ 1
}
