// Package pool implements single-channel 2D max pooling and its output
// dimension arithmetic.
package pool

// Config describes a square pooling window applied with the same stride on both axes.
type Config struct {
	Stride     int     `yaml:"stride"`
	KernelSize int     `yaml:"kernel"`
	Padding    Padding `yaml:"padding"`
}

// DefaultConfig returns a 2x2 window with stride 2 and Any padding.
func DefaultConfig() Config {
	return Config{
		Stride:     2,
		KernelSize: 2,
		Padding:    Any,
	}
}

// Validate checks the padding policy first, then stride and kernel size.
func (c Config) Validate() error {
	if !c.Padding.IsValid() {
		return invalidConfig("padding", int(c.Padding))
	}
	if c.Stride <= 0 {
		return invalidDims("stride", c.Stride)
	}
	if c.KernelSize <= 0 {
		return invalidDims("kernel size", c.KernelSize)
	}
	return nil
}

// OutputDims computes the output shape for an inRows x inCols input.
func (c Config) OutputDims(inRows, inCols int) (Dims, error) {
	return OutputDims(inRows, inCols, c.Stride, c.KernelSize, c.Padding)
}
