package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/born-ml/maxpool/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("matrix")
	require.NoError(t, err)
	assert.Equal(t, Matrix, f)

	_, err = ParseFormat("csv")
	require.Error(t, err)
}

func TestGrid_Table(t *testing.T) {
	g, err := grid.FromRows([][]float64{{4, 5}, {10, 11.5}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, "output", g, Table))

	out := buf.String()
	assert.Contains(t, out, "output (2x2)")
	for _, want := range []string{"4", "5", "10", "11.5"} {
		assert.Contains(t, out, want)
	}
}

func TestGrid_Matrix(t *testing.T) {
	g, err := grid.Sequential[float32](2, 2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, "input", g, Matrix))

	out := buf.String()
	assert.Contains(t, out, "input (2x2)")
	assert.Contains(t, out, "3")
}

func TestGrid_Empty(t *testing.T) {
	g, err := grid.New[float64](3, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Grid(&buf, "output", g, Table))
	assert.Equal(t, "output (3x0)\n  <empty>\n", buf.String())
}

func TestGrid_UnknownFormat(t *testing.T) {
	g, err := grid.New[float64](1, 1)
	require.NoError(t, err)
	require.Error(t, Grid(&bytes.Buffer{}, "x", g, Format("html")))
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "0.1", formatValue(float32(0.1)))
	assert.Equal(t, "0.1", formatValue(0.1))
	assert.Equal(t, "-Inf", formatValue(math.Inf(-1)))
}
