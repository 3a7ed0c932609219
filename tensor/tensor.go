// Package tensor provides the dense complex-matrix primitives the simulator
// engine composes gate operators from: Kronecker product, matrix addition,
// and row-vector by matrix multiplication.
package tensor

// Matrix is a dense, rectangular matrix of complex doubles, stored row-major.
// All matrices used by this package are square in practice, but the kernel
// itself does not assume that.
type Matrix [][]complex128

// New allocates a zero-filled rows x cols matrix.
func New(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]complex128, cols)
	}
	return m
}

// Kron computes the Kronecker product A⊗B, where B has dimensions m×n:
//
//	(A⊗B)[i*m+p, j*n+q] = A[i,j] * B[p,q]
func Kron(a, b Matrix) Matrix {
	aHeight, aWidth := len(a), len(a[0])
	bHeight, bWidth := len(b), len(b[0])

	result := New(aHeight*bHeight, aWidth*bWidth)
	for y := range result {
		i, p := y/bHeight, y%bHeight
		for x := range result[y] {
			j, q := x/bWidth, x%bWidth
			result[y][x] = a[i][j] * b[p][q]
		}
	}
	return result
}

// Add computes the element-wise sum of two equal-shape matrices.
func Add(a, b Matrix) Matrix {
	height, width := len(a), len(a[0])
	result := New(height, width)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			result[y][x] = a[y][x] + b[y][x]
		}
	}
	return result
}

// VecMatMul multiplies a row vector by a matrix: result[y] = Σₓ vec[x]*m[y][x].
func VecMatMul(vec []complex128, m Matrix) []complex128 {
	size := len(vec)
	result := make([]complex128, size)
	for y := 0; y < size; y++ {
		var sum complex128
		row := m[y]
		for x := 0; x < size; x++ {
			sum += vec[x] * row[x]
		}
		result[y] = sum
	}
	return result
}
