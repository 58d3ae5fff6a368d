package pool

import (
	"math"

	"github.com/born-ml/maxpool/internal/grid"
)

// MaxPool performs 2D max pooling over a single-channel grid.
//
// Each output cell (r, c) holds the maximum of the input window with origin
// (r*stride, c*stride) and side KernelSize. Samples that fall outside the
// input are skipped rather than treated as zero. A window with no in-range
// samples yields -Inf.
//
// If the computed output shape has a non-positive axis the result is an
// empty grid, not an error.
//
// Example (4x3 input, 2x2 pool, stride=2, Any padding):
//
//	Input: [[0, 1, 2],     Output: [[4, 5],
//	        [3, 4, 5],              [10, 11]]
//	        [6, 7, 8],
//	        [9, 10, 11]]
func MaxPool[T grid.Float](input *grid.Grid[T], cfg Config) (*grid.Grid[T], error) {
	if input == nil {
		return nil, invalidDims("input", nil)
	}
	return MaxPoolSlice(input.Data(), input.Rows(), input.Cols(), cfg)
}

// MaxPoolSlice is MaxPool over a raw row-major buffer of inRows x inCols values.
// The input is only read.
func MaxPoolSlice[T grid.Float](input []T, inRows, inCols int, cfg Config) (*grid.Grid[T], error) {
	// All validation happens before the output is allocated.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if inRows <= 0 {
		return nil, invalidDims("rows", inRows)
	}
	if inCols <= 0 {
		return nil, invalidDims("cols", inCols)
	}
	if len(input) != inRows*inCols {
		return nil, invalidDims("input length", len(input))
	}

	dims, err := cfg.OutputDims(inRows, inCols)
	if err != nil {
		return nil, err
	}
	if dims.Empty() {
		return grid.New[T](max(dims.Rows, 0), max(dims.Cols, 0))
	}

	output, err := grid.New[T](dims.Rows, dims.Cols)
	if err != nil {
		return nil, err
	}
	maxpoolPlane(output.Data(), input, inRows, inCols, dims, cfg.KernelSize, cfg.Stride)
	return output, nil
}

// maxpoolPlane fills out (dims.Rows x dims.Cols) from in (inRows x inCols).
func maxpoolPlane[T grid.Float](out, in []T, inRows, inCols int, dims Dims, kernelSize, stride int) {
	negInf := T(math.Inf(-1))

	for outR := 0; outR < dims.Rows; outR++ {
		hStart, hEnd := clipWindow(outR*stride, kernelSize, inRows)
		outRow := out[outR*dims.Cols : (outR+1)*dims.Cols]

		for outC := range outRow {
			wStart, wEnd := clipWindow(outC*stride, kernelSize, inCols)

			maxVal := negInf
			for h := hStart; h < hEnd; h++ {
				// Pre-slice the in-range part of the window row.
				rowStart := h * inCols
				for _, val := range in[rowStart+wStart : rowStart+wEnd] {
					if val > maxVal {
						maxVal = val
					}
				}
			}
			outRow[outC] = maxVal
		}
	}
}

// clipWindow returns the in-range part [start, end) of a window of size k
// beginning at start, for an axis of extent n. Returns (n, n) when nothing is in range.
func clipWindow(start, k, n int) (int, int) {
	if start >= n {
		return n, n
	}
	// Compare against the remaining extent so start+k cannot overflow.
	if k >= n-start {
		return start, n
	}
	return start, start + k
}
