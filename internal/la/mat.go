package la

import (
	"fmt"
	"math"
)

// Mat is a fixed-size matrix of float32 stored row-major.
type Mat struct {
	rows, cols int
	data       []float32
}

// NewMat creates a zero matrix of the given size.
func NewMat(rows, cols int) *Mat {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("la: matrix dimensions must be positive, got %dx%d", rows, cols))
	}
	return &Mat{rows: rows, cols: cols, data: make([]float32, rows*cols)}
}

// MatFromSlice creates a matrix from row-major data. The slice is copied.
func MatFromSlice(rows, cols int, data []float32) *Mat {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("la: MatFromSlice needs %d elements for %dx%d, got %d",
			rows*cols, rows, cols, len(data)))
	}
	m := NewMat(rows, cols)
	copy(m.data, data)
	return m
}

// Identity creates the n×n identity matrix.
func Identity(n int) *Mat {
	m := NewMat(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Mat) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Mat) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Mat) At(i, j int) float32 { return m.data[i*m.cols+j] }

// Set assigns the element at row i, column j.
func (m *Mat) Set(i, j int, x float32) { m.data[i*m.cols+j] = x }

// Data returns the row-major backing slice. Mutations are visible to the
// matrix; callers that poke values in place rely on this.
func (m *Mat) Data() []float32 { return m.data }

// Clone returns a copy of the matrix.
func (m *Mat) Clone() *Mat {
	return MatFromSlice(m.rows, m.cols, m.data)
}

// Sum returns the total of all elements.
func (m *Mat) Sum() float32 {
	var s float32
	for _, x := range m.data {
		s += x
	}
	return s
}

// Map applies f to every element, producing a new matrix.
func (m *Mat) Map(f func(float32) float32) *Mat {
	r := NewMat(m.rows, m.cols)
	for i, x := range m.data {
		r.data[i] = f(x)
	}
	return r
}

// Add returns m + o element-wise.
func (m *Mat) Add(o *Mat) *Mat {
	m.checkShape(o, "Add")
	r := NewMat(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] + o.data[i]
	}
	return r
}

// Sub returns m - o element-wise.
func (m *Mat) Sub(o *Mat) *Mat {
	m.checkShape(o, "Sub")
	r := NewMat(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] - o.data[i]
	}
	return r
}

// Mul returns the Hadamard product m ⊙ o.
func (m *Mat) Mul(o *Mat) *Mat {
	m.checkShape(o, "Mul")
	r := NewMat(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] * o.data[i]
	}
	return r
}

// Div returns m / o element-wise.
func (m *Mat) Div(o *Mat) *Mat {
	m.checkShape(o, "Div")
	r := NewMat(m.rows, m.cols)
	for i := range m.data {
		r.data[i] = m.data[i] / o.data[i]
	}
	return r
}

// Scale returns m * s.
func (m *Mat) Scale(s float32) *Mat {
	return m.Map(func(x float32) float32 { return x * s })
}

// AddScalar returns m + s element-wise.
func (m *Mat) AddScalar(s float32) *Mat {
	return m.Map(func(x float32) float32 { return x + s })
}

// Pow returns m raised element-wise to the scalar exponent p.
func (m *Mat) Pow(p float32) *Mat {
	return m.Map(func(x float32) float32 { return powf(x, p) })
}

// Transpose returns the transposed matrix.
func (m *Mat) Transpose() *Mat {
	r := NewMat(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			r.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return r
}

// MulVec returns the matrix-vector product m · v.
func (m *Mat) MulVec(v Vec) Vec {
	if m.cols != len(v) {
		panic(fmt.Sprintf("la: MulVec shape mismatch: %dx%d · %d", m.rows, m.cols, len(v)))
	}
	r := NewVec(m.rows)
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		var s float32
		for j, x := range row {
			s += x * v[j]
		}
		r[i] = s
	}
	return r
}

// Outer returns the outer product a ⊗ b, a len(a)×len(b) matrix.
func Outer(a, b Vec) *Mat {
	r := NewMat(len(a), len(b))
	for i, x := range a {
		for j, y := range b {
			r.data[i*len(b)+j] = x * y
		}
	}
	return r
}

func (m *Mat) checkShape(o *Mat, op string) {
	if m.rows != o.rows || m.cols != o.cols {
		panic(fmt.Sprintf("la: Mat.%s shape mismatch: %dx%d vs %dx%d",
			op, m.rows, m.cols, o.rows, o.cols))
	}
}

func powf(x, p float32) float32 {
	return float32(math.Pow(float64(x), float64(p)))
}
