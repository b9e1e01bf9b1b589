package matrix_test

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/rbfn/matrix"
)

// ExampleMatVec multiplies a 2×2 matrix by a vector.
func ExampleMatVec() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	y, _ := matrix.MatVec(m, []float64{1, 1})
	fmt.Println(y)
	// Output:
	// [3 7]
}

// ExampleDense_MarshalJSON shows the array record written for a Dense.
func ExampleDense_MarshalJSON() {
	m, _ := matrix.NewDenseFromRows([][]float64{{1, 2}})
	raw, _ := json.Marshal(m)
	fmt.Println(string(raw))
	// Output:
	// {"py/object":"numpy.ndarray","dtype":"float64","values":[[1,2]]}
}
