package grid

import "fmt"

// Shape represents the dimensions of a 2D grid.
type Shape struct {
	Rows int
	Cols int
}

// NumElements returns the total number of cells in the grid.
func (s Shape) NumElements() int {
	return s.Rows * s.Cols
}

// Validate checks that neither extent is negative.
// Zero-sized shapes are valid and describe an empty grid.
func (s Shape) Validate() error {
	if s.Rows < 0 {
		return fmt.Errorf("invalid rows: %d (must be >= 0)", s.Rows)
	}
	if s.Cols < 0 {
		return fmt.Errorf("invalid cols: %d (must be >= 0)", s.Cols)
	}
	return nil
}

// Empty reports whether the shape holds no cells.
func (s Shape) Empty() bool {
	return s.Rows == 0 || s.Cols == 0
}

// Offset returns the row-major offset of cell (r, c).
func (s Shape) Offset(r, c int) int {
	return r*s.Cols + c
}

// String returns the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}
