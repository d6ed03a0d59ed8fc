// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/cofactor/matrix"
)

// ExampleDense_CofactorMatrix replays the reference 3×3 scenario.
func ExampleDense_CofactorMatrix() {
	m, _ := matrix.NewDense(3, 3)
	values := [3][3]float64{{1, 2, 3}, {0, 4, 5}, {1, 0, 6}}
	for i, row := range values {
		for j, v := range row {
			p, _ := m.Ref(i, j) // writable accessor: m(i,j) = v
			*p = v
		}
	}

	d, _ := m.Determinant()
	cof, _ := m.CofactorMatrix()
	fmt.Println("det =", d)
	for i := 0; i < cof.Rows(); i++ {
		row := make([]float64, cof.Cols())
		for j := range row {
			row[j], _ = cof.At(i, j)
		}
		fmt.Println(row)
	}

	// Output:
	// det = 22
	// [24 5 -4]
	// [-12 3 2]
	// [-2 -5 4]
}

// ExampleDense_Inverse shows adjugate / determinant on a 2×2 matrix.
func ExampleDense_Inverse() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
	inv, _ := m.Inverse()
	a, _ := inv.At(0, 0)
	b, _ := inv.At(0, 1)
	c, _ := inv.At(1, 0)
	d, _ := inv.At(1, 1)
	fmt.Println(a, b)
	fmt.Println(c, d)

	id, _ := matrix.Identity(2)
	prod, _ := inv.Mul(m)
	fmt.Println("inverse * m == I:", prod.Equal(id))

	// Output:
	// -2 1
	// 1.5 -0.5
	// inverse * m == I: true
}

// ExampleDense_Inverse_singular shows the error surface for singular input.
func ExampleDense_Inverse_singular() {
	m, _ := matrix.FromRows([][]float64{{1, 2}, {2, 4}})
	_, err := m.Inverse()
	fmt.Println(err)

	// Output:
	// Inverse: matrix: invalid dimensions: matrix: singular matrix
}
