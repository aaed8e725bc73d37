package mi_test

import (
	"fmt"

	"github.com/katalvlaran/infotheo/mi"
)

// ExampleMutualInformation demonstrates raw MI between two label vectors.
//
// Scenario:
//
//	Two clusterings of the same 17 items. The labelings partially agree,
//	so they share a moderate amount of information.
func ExampleMutualInformation() {
	a := []int{1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3}
	b := []int{1, 1, 1, 1, 2, 1, 2, 2, 2, 2, 3, 1, 3, 3, 3, 2, 2}

	v, err := mi.MutualInformation(a, b, mi.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("MI=%.5f\n", v)
	// Output:
	// MI=0.41022
}

// ExampleMatrix demonstrates a pairwise matrix over a three-variable
// dataset: columns 0 and 1 are identical, column 2 is constant.
func ExampleMatrix() {
	data := [][]string{
		{"a", "a", "x"},
		{"a", "a", "x"},
		{"b", "b", "x"},
		{"b", "b", "x"},
	}

	mat, err := mi.Matrix(data, mi.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("H(0)=%.6f\n", mat.At(0, 0))
	fmt.Printf("MI(0,1)=%.6f\n", mat.At(0, 1))
	fmt.Printf("MI(0,2)=%.6f\n", mat.At(0, 2))
	// Output:
	// H(0)=0.693147
	// MI(0,1)=0.693147
	// MI(0,2)=0.000000
}

// ExampleContingency demonstrates MI from an already-known joint
// distribution, bypassing sampling entirely.
func ExampleContingency() {
	// Perfectly dependent binary variables.
	joint := [][]float64{
		{0.5, 0.0},
		{0.0, 0.5},
	}

	fmt.Printf("MI=%.6f\n", mi.Contingency(joint, false))
	fmt.Printf("NMI=%.6f\n", mi.Contingency(joint, true))
	// Output:
	// MI=0.693147
	// NMI=1.000000
}
