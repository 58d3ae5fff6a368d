// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package pool

import (
	"github.com/born-ml/maxpool/internal/grid"
	internalpool "github.com/born-ml/maxpool/internal/pool"
)

// Padding selects how windows at the input edge are treated.
type Padding = internalpool.Padding

// Supported padding policies.
const (
	Any   = internalpool.Any
	Valid = internalpool.Valid
)

// Config describes the pooling window.
type Config = internalpool.Config

// Dims is an output shape computed by OutputDims.
type Dims = internalpool.Dims

// ConfigError describes a rejected argument.
type ConfigError = internalpool.ConfigError

// Float is the constraint for grid element types.
type Float = grid.Float

// Grid is an owned row-major 2D buffer.
type Grid[T Float] = grid.Grid[T]

// Shape is the extent of a Grid.
type Shape = grid.Shape

// Errors returned by OutputDims and MaxPool.
var (
	ErrInvalidConfiguration = internalpool.ErrInvalidConfiguration
	ErrInvalidDimensions    = internalpool.ErrInvalidDimensions
)

// ParsePadding parses "any" or "valid" (case-insensitive).
func ParsePadding(s string) (Padding, error) {
	return internalpool.ParsePadding(s)
}

// DefaultConfig returns a 2x2 window with stride 2 and Any padding.
func DefaultConfig() Config {
	return internalpool.DefaultConfig()
}

// OutputDims computes the pooled output shape for an inRows x inCols input.
//
// Example:
//
//	dims, _ := pool.OutputDims(4, 3, 1, 2, pool.Valid) // 3x2
func OutputDims(inRows, inCols, stride, kernelSize int, padding Padding) (Dims, error) {
	return internalpool.OutputDims(inRows, inCols, stride, kernelSize, padding)
}

// MaxPool performs max pooling over input and returns a newly allocated grid.
func MaxPool[T Float](input *Grid[T], cfg Config) (*Grid[T], error) {
	return internalpool.MaxPool(input, cfg)
}

// MaxPoolSlice performs max pooling over a row-major buffer of inRows x inCols values.
func MaxPoolSlice[T Float](input []T, inRows, inCols int, cfg Config) (*Grid[T], error) {
	return internalpool.MaxPoolSlice(input, inRows, inCols, cfg)
}

// NewGrid creates a zero-filled rows x cols grid.
func NewGrid[T Float](rows, cols int) (*Grid[T], error) {
	return grid.New[T](rows, cols)
}

// GridFromSlice wraps a row-major buffer. The grid takes ownership of data.
func GridFromSlice[T Float](rows, cols int, data []T) (*Grid[T], error) {
	return grid.FromSlice(rows, cols, data)
}

// GridFromRows builds a grid from nested rows of equal length.
func GridFromRows[T Float](rows [][]T) (*Grid[T], error) {
	return grid.FromRows(rows)
}

// Sequential creates a grid whose cells hold their own row-major offset.
func Sequential[T Float](rows, cols int) (*Grid[T], error) {
	return grid.Sequential[T](rows, cols)
}
