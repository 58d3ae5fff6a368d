package pool

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputDims(t *testing.T) {
	tests := []struct {
		name               string
		inRows, inCols     int
		stride, kernel     int
		padding            Padding
		wantRows, wantCols int
	}{
		{"any 4x3 s2 k2", 4, 3, 2, 2, Any, 2, 2},
		{"valid 4x3 s1 k2", 4, 3, 1, 2, Valid, 3, 2},
		{"valid 2x2 s3 k2", 2, 2, 3, 2, Valid, 1, 1},
		{"any ignores kernel", 5, 7, 3, 100, Any, 2, 3},
		{"valid 4x3 s2 k2", 4, 3, 2, 2, Valid, 2, 1},
		{"valid kernel equals input", 3, 3, 1, 3, Valid, 1, 1},
		{"valid kernel one past input", 2, 2, 1, 3, Valid, 0, 0},
		{"valid kernel far past input", 2, 2, 1, 5, Valid, -2, -2},
		{"valid mixed axes", 5, 2, 1, 3, Valid, 3, 0},
		{"stride one", 3, 4, 1, 1, Any, 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims, err := OutputDims(tt.inRows, tt.inCols, tt.stride, tt.kernel, tt.padding)
			require.NoError(t, err)
			assert.Equal(t, Dims{Rows: tt.wantRows, Cols: tt.wantCols}, dims)
		})
	}
}

// TestOutputDims_MatchesFormula checks both axes against the real-valued ceiling formula.
func TestOutputDims_MatchesFormula(t *testing.T) {
	formula := func(n, stride, kernel int, padding Padding) int {
		if padding == Valid {
			n = n - kernel + 1
		}
		return int(math.Ceil(float64(n) / float64(stride)))
	}

	for _, padding := range []Padding{Any, Valid} {
		for stride := 1; stride <= 4; stride++ {
			for kernel := 1; kernel <= 4; kernel++ {
				for rows := 1; rows <= 9; rows++ {
					cols := 10 - rows
					dims, err := OutputDims(rows, cols, stride, kernel, padding)
					require.NoError(t, err)
					assert.Equal(t, formula(rows, stride, kernel, padding), dims.Rows)
					assert.Equal(t, formula(cols, stride, kernel, padding), dims.Cols)
				}
			}
		}
	}
}

func TestOutputDims_Idempotent(t *testing.T) {
	first, err := OutputDims(17, 11, 3, 4, Valid)
	require.NoError(t, err)
	second, err := OutputDims(17, 11, 3, 4, Valid)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOutputDims_Monotonic(t *testing.T) {
	for _, padding := range []Padding{Any, Valid} {
		for stride := 1; stride <= 3; stride++ {
			for kernel := 1; kernel <= 4; kernel++ {
				prev, err := OutputDims(1, 1, stride, kernel, padding)
				require.NoError(t, err)
				for n := 2; n <= 20; n++ {
					dims, err := OutputDims(n, n, stride, kernel, padding)
					require.NoError(t, err)
					assert.GreaterOrEqual(t, dims.Rows, prev.Rows, "padding=%s stride=%d kernel=%d n=%d", padding, stride, kernel, n)
					assert.GreaterOrEqual(t, dims.Cols, prev.Cols, "padding=%s stride=%d kernel=%d n=%d", padding, stride, kernel, n)
					prev = dims
				}
			}
		}
	}
}

func TestOutputDims_InvalidPadding(t *testing.T) {
	for _, p := range []Padding{-1, 2, 42} {
		_, err := OutputDims(4, 3, 2, 2, p)
		require.ErrorIs(t, err, ErrInvalidConfiguration, "padding %d", int(p))

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, "padding", cfgErr.Field)
	}
}

func TestOutputDims_NonPositiveStrideOrKernel(t *testing.T) {
	_, err := OutputDims(4, 3, 0, 2, Any)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = OutputDims(4, 3, 2, -1, Valid)
	require.ErrorIs(t, err, ErrInvalidDimensions)

	// Padding is checked before anything else.
	_, err = OutputDims(4, 3, 0, 0, Padding(7))
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestDims_Empty(t *testing.T) {
	assert.False(t, Dims{Rows: 1, Cols: 1}.Empty())
	assert.True(t, Dims{Rows: 0, Cols: 3}.Empty())
	assert.True(t, Dims{Rows: 3, Cols: -1}.Empty())
	assert.Equal(t, 0, Dims{Rows: -2, Cols: -2}.NumElements())
	assert.Equal(t, 6, Dims{Rows: 2, Cols: 3}.NumElements())
}

func TestParsePadding(t *testing.T) {
	p, err := ParsePadding("any")
	require.NoError(t, err)
	assert.Equal(t, Any, p)

	p, err = ParsePadding(" VALID ")
	require.NoError(t, err)
	assert.Equal(t, Valid, p)

	_, err = ParsePadding("same")
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestPadding_Text(t *testing.T) {
	text, err := Valid.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "valid", string(text))

	var p Padding
	require.NoError(t, p.UnmarshalText([]byte("Any")))
	assert.Equal(t, Any, p)

	_, err = Padding(5).MarshalText()
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	assert.Equal(t, "Padding(5)", Padding(5).String())
}
