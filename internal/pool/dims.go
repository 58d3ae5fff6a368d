package pool

import (
	"fmt"
	"math"
)

// Dims is the output shape produced by OutputDims.
// Either axis may be zero or negative under Valid padding when the kernel
// is larger than the input; such a result means there are no windows.
type Dims struct {
	Rows int
	Cols int
}

// Empty reports whether the result holds no windows.
func (d Dims) Empty() bool {
	return d.Rows <= 0 || d.Cols <= 0
}

// NumElements returns the number of output cells, 0 when Empty.
func (d Dims) NumElements() int {
	if d.Empty() {
		return 0
	}
	return d.Rows * d.Cols
}

// String returns the dims as "RxC".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}

// OutputDims computes the pooled output shape.
//
// For each axis, with n the input extent:
//
//	Any:   out = ceil(n / stride)
//	Valid: out = ceil((n - kernelSize + 1) / stride)
//
// Valid results are returned as computed, including zero or negative values.
//
// Example (4x3 input, stride=2, kernel=2):
//
//	Any:   2x2
//	Valid: 2x1
func OutputDims(inRows, inCols, stride, kernelSize int, padding Padding) (Dims, error) {
	if err := (Config{Stride: stride, KernelSize: kernelSize, Padding: padding}).Validate(); err != nil {
		return Dims{}, err
	}

	switch padding {
	case Any:
		return Dims{
			Rows: ceilDiv(inRows, stride),
			Cols: ceilDiv(inCols, stride),
		}, nil
	case Valid:
		return Dims{
			Rows: ceilDiv(inRows-kernelSize+1, stride),
			Cols: ceilDiv(inCols-kernelSize+1, stride),
		}, nil
	default:
		return Dims{}, invalidConfig("padding", int(padding))
	}
}

// ceilDiv rounds the real quotient n/d up. d must be positive.
func ceilDiv(n, d int) int {
	return int(math.Ceil(float64(n) / float64(d)))
}
