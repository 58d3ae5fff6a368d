// Package config loads pooling jobs from YAML files and the environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/maxpool/internal/grid"
	"github.com/born-ml/maxpool/internal/pool"
	"gopkg.in/yaml.v3"
)

// Job describes one pooling run: the input grid and the window configuration.
//
// Example file:
//
//	rows: 4
//	cols: 3
//	stride: 2
//	kernel: 2
//	padding: any
//	data:
//	  - [0, 1, 2]
//	  - [3, 4, 5]
//	  - [6, 7, 8]
//	  - [9, 10, 11]
//
// When data is omitted the input is the Sequential grid of rows x cols.
// When data is given, rows and cols may be omitted; if present they must
// match the data.
type Job struct {
	Rows   int         `yaml:"rows"`
	Cols   int         `yaml:"cols"`
	Data   [][]float64 `yaml:"data,omitempty"`
	Pool   pool.Config `yaml:",inline"`
	Format string      `yaml:"format,omitempty"`
}

// DefaultJob returns the 4x3 demo job with a 2x2 window, stride 2 and Any padding.
func DefaultJob() Job {
	return Job{
		Rows:   4,
		Cols:   3,
		Pool:   pool.DefaultConfig(),
		Format: Format(),
	}
}

// Load reads a job file. Fields missing from the file keep their DefaultJob values.
func Load(path string) (Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return Job{}, fmt.Errorf("failed to open job file: %w", err)
	}
	defer f.Close()

	job, err := Decode(f)
	if err != nil {
		return Job{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	slog.Debug("loaded job", "path", path, "rows", job.Rows, "cols", job.Cols,
		"stride", job.Pool.Stride, "kernel", job.Pool.KernelSize, "padding", job.Pool.Padding)
	return job, nil
}

// Decode parses a YAML job document. Unknown keys are rejected.
func Decode(r io.Reader) (Job, error) {
	doc, err := io.ReadAll(r)
	if err != nil {
		return Job{}, fmt.Errorf("failed to read job: %w", err)
	}

	job := DefaultJob()
	dec := yaml.NewDecoder(bytes.NewReader(doc))
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil && !errors.Is(err, io.EOF) {
		return Job{}, fmt.Errorf("failed to decode job: %w", err)
	}
	if len(job.Data) == 0 {
		return job, nil
	}

	// Extents given next to data must agree with it.
	var extents struct {
		Rows *int `yaml:"rows"`
		Cols *int `yaml:"cols"`
	}
	if err := yaml.Unmarshal(doc, &extents); err != nil {
		return Job{}, fmt.Errorf("failed to decode job: %w", err)
	}
	rows, cols := len(job.Data), len(job.Data[0])
	if extents.Rows != nil && *extents.Rows != rows {
		return Job{}, fmt.Errorf("%w: rows = %d but data has %d rows", pool.ErrInvalidDimensions, *extents.Rows, rows)
	}
	if extents.Cols != nil && *extents.Cols != cols {
		return Job{}, fmt.Errorf("%w: cols = %d but data has %d columns", pool.ErrInvalidDimensions, *extents.Cols, cols)
	}
	job.Rows, job.Cols = rows, cols
	return job, nil
}

// Encode writes the job as YAML.
func (j Job) Encode(w io.Writer) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(j); err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode job: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Grid builds the input grid for the job.
func (j Job) Grid() (*grid.Grid[float64], error) {
	if len(j.Data) > 0 {
		g, err := grid.FromRows(j.Data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", pool.ErrInvalidDimensions, err)
		}
		return g, nil
	}
	if j.Rows <= 0 || j.Cols <= 0 {
		return nil, fmt.Errorf("%w: input shape %dx%d", pool.ErrInvalidDimensions, j.Rows, j.Cols)
	}
	return grid.Sequential[float64](j.Rows, j.Cols)
}
