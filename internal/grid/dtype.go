// Package grid provides the owned row-major 2D buffer used by the pooling engine.
package grid

// Float is a constraint for supported grid element types.
type Float interface {
	~float32 | ~float64
}
