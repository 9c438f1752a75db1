package game

import "fmt"

// Matrix is a fixed-size grid of small integers stored row by row.
type Matrix struct {
	width  int
	height int
	values []int
}

func NewMatrix(width, height, fill int) *Matrix {
	m := &Matrix{
		width:  width,
		height: height,
		values: make([]int, width*height),
	}
	if fill != 0 {
		for i := range m.values {
			m.values[i] = fill
		}
	}
	return m
}

func (m *Matrix) Width() int {
	return m.width
}

func (m *Matrix) Height() int {
	return m.height
}

// Get returns the value at (x, y). Callers bounds-check first.
func (m *Matrix) Get(x, y int) int {
	return m.values[m.index(x, y)]
}

// Set stores v at (x, y). It panics when the coordinate is outside the matrix.
func (m *Matrix) Set(x, y, v int) {
	m.values[m.index(x, y)] = v
}

func (m *Matrix) Copy() *Matrix {
	clone := &Matrix{width: m.width, height: m.height}
	clone.values = make([]int, len(m.values))
	copy(clone.values, m.values)
	return clone
}

// Max returns the largest stored value.
func (m *Matrix) Max() int {
	best := m.values[0]
	for _, v := range m.values[1:] {
		if v > best {
			best = v
		}
	}
	return best
}

// Rows returns the matrix as a [y][x] slice, used by the JSON projection.
func (m *Matrix) Rows() [][]int {
	rows := make([][]int, m.height)
	for y := 0; y < m.height; y++ {
		rows[y] = append([]int(nil), m.values[y*m.width:(y+1)*m.width]...)
	}
	return rows
}

func (m *Matrix) index(x, y int) int {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		panic(fmt.Sprintf("matrix: (%d,%d) outside %dx%d", x, y, m.width, m.height))
	}
	return y*m.width + x
}
