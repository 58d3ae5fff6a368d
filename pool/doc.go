// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package pool provides single-channel 2D max pooling.
//
// # Overview
//
// A pooling run takes a row-major grid and a Config (stride, square kernel
// size, padding policy) and produces a smaller grid where each cell holds the
// maximum of its input window:
//
//	input, _ := pool.Sequential[float64](4, 3)
//	out, err := pool.MaxPool(input, pool.Config{Stride: 2, KernelSize: 2, Padding: pool.Any})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// out = [[4, 5], [10, 11]]
//
// # Padding Policies
//
//   - Any: windows may hang past the input edge. Out-of-range samples are
//     skipped, never treated as zero. out = ceil(in / stride).
//   - Valid: only windows that fit inside the input. out = ceil((in - kernel + 1) / stride).
//
// Under Valid padding a kernel larger than the input yields an empty grid
// rather than an error. OutputDims reports such shapes as computed, which may
// be zero or negative.
//
// # Errors
//
// Both OutputDims and MaxPool fail with ErrInvalidConfiguration for an
// unknown padding policy. MaxPool fails with ErrInvalidDimensions for
// non-positive extents, stride or kernel size. Use errors.Is to test them.
package pool
