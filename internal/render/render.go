// Package render writes grids for display.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/maxpool/internal/grid"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/mat"
)

// Format selects the display layout.
type Format string

// Supported formats.
const (
	Table  Format = "table"
	Matrix Format = "matrix"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case Table, Matrix:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want table or matrix)", s)
	}
}

// Grid writes g to w using the given format, preceded by a title line.
// Empty grids are reported by shape only.
func Grid[T grid.Float](w io.Writer, title string, g *grid.Grid[T], format Format) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", title, g.Shape()); err != nil {
		return err
	}
	if g.Shape().Empty() {
		_, err := fmt.Fprintln(w, "  <empty>")
		return err
	}

	switch format {
	case Table:
		return writeTable(w, g)
	case Matrix:
		_, err := fmt.Fprintf(w, "%v\n", mat.Formatted(grid.ToDense(g), mat.Squeeze()))
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeTable[T grid.Float](w io.Writer, g *grid.Grid[T]) error {
	header := make([]string, g.Cols()+1)
	for c := 0; c < g.Cols(); c++ {
		header[c+1] = strconv.Itoa(c)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetBorder(false)

	for r := 0; r < g.Rows(); r++ {
		line := make([]string, 0, g.Cols()+1)
		line = append(line, strconv.Itoa(r))
		for _, v := range g.Row(r) {
			line = append(line, formatValue(v))
		}
		table.Append(line)
	}
	table.Render()
	return nil
}

func formatValue[T grid.Float](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	default:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	}
}
