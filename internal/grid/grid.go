package grid

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when a buffer does not hold rows*cols elements.
var ErrLengthMismatch = errors.New("buffer length does not match shape")

// Grid is a single-channel 2D buffer stored contiguously in row-major order.
// Cell (r, c) lives at offset r*Cols + c.
type Grid[T Float] struct {
	shape Shape
	data  []T
}

// New creates a zero-filled grid with the given extents.
func New[T Float](rows, cols int) (*Grid[T], error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Grid[T]{
		shape: shape,
		data:  make([]T, shape.NumElements()),
	}, nil
}

// FromSlice wraps data as a rows x cols grid. The grid takes ownership of data;
// the caller must not modify it afterwards.
func FromSlice[T Float](rows, cols int, data []T) (*Grid[T], error) {
	shape := Shape{Rows: rows, Cols: cols}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("%w: %d elements for shape %s", ErrLengthMismatch, len(data), shape)
	}
	return &Grid[T]{shape: shape, data: data}, nil
}

// FromRows builds a grid from nested rows. All rows must have the same length.
func FromRows[T Float](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return New[T](0, 0)
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrLengthMismatch, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return FromSlice(len(rows), cols, data)
}

// Full creates a grid with every cell set to v.
func Full[T Float](rows, cols int, v T) (*Grid[T], error) {
	g, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = v
	}
	return g, nil
}

// Sequential creates a grid whose cells hold their own row-major offset:
//
//	Sequential(2, 3) = [[0, 1, 2],
//	                    [3, 4, 5]]
func Sequential[T Float](rows, cols int) (*Grid[T], error) {
	g, err := New[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		g.data[i] = T(i)
	}
	return g, nil
}

// Shape returns the grid extents.
func (g *Grid[T]) Shape() Shape {
	return g.shape
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int {
	return g.shape.Rows
}

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int {
	return g.shape.Cols
}

// NumElements returns the total number of cells.
func (g *Grid[T]) NumElements() int {
	return len(g.data)
}

// Data returns the underlying row-major buffer.
// WARNING: Direct access to underlying memory. Use with caution.
func (g *Grid[T]) Data() []T {
	return g.data
}

// At returns the value at (r, c).
// Panics if the index is out of range.
func (g *Grid[T]) At(r, c int) T {
	g.checkIndex(r, c)
	return g.data[g.shape.Offset(r, c)]
}

// Set stores v at (r, c).
// Panics if the index is out of range.
func (g *Grid[T]) Set(r, c int, v T) {
	g.checkIndex(r, c)
	g.data[g.shape.Offset(r, c)] = v
}

// Row returns row r as a sub-slice of the buffer (no copy).
func (g *Grid[T]) Row(r int) []T {
	if r < 0 || r >= g.shape.Rows {
		panic(fmt.Sprintf("grid: row %d out of range for shape %s", r, g.shape))
	}
	start := r * g.shape.Cols
	return g.data[start : start+g.shape.Cols]
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	return &Grid[T]{
		shape: g.shape,
		data:  append([]T(nil), g.data...),
	}
}

// Equal reports whether two grids have the same shape and identical cells.
func (g *Grid[T]) Equal(other *Grid[T]) bool {
	if g.shape != other.shape {
		return false
	}
	for i := range g.data {
		if g.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// ToRows copies the grid into nested rows.
func (g *Grid[T]) ToRows() [][]T {
	rows := make([][]T, g.shape.Rows)
	for r := range rows {
		rows[r] = append([]T(nil), g.Row(r)...)
	}
	return rows
}

func (g *Grid[T]) checkIndex(r, c int) {
	if r < 0 || r >= g.shape.Rows || c < 0 || c >= g.shape.Cols {
		panic(fmt.Sprintf("grid: index (%d, %d) out of range for shape %s", r, c, g.shape))
	}
}
