package grid

import "gonum.org/v1/gonum/mat"

// FromDense copies a gonum matrix into a float64 grid.
func FromDense(m mat.Matrix) *Grid[float64] {
	rows, cols := m.Dims()
	g := &Grid[float64]{
		shape: Shape{Rows: rows, Cols: cols},
		data:  make([]float64, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.data[r*cols+c] = m.At(r, c)
		}
	}
	return g
}

// ToDense copies the grid into a gonum dense matrix.
// Returns nil for an empty grid, since gonum does not represent zero-sized matrices.
func ToDense[T Float](g *Grid[T]) *mat.Dense {
	if g.shape.Empty() {
		return nil
	}
	data := make([]float64, len(g.data))
	for i, v := range g.data {
		data[i] = float64(v)
	}
	return mat.NewDense(g.shape.Rows, g.shape.Cols, data)
}
