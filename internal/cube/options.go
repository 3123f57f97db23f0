package cube

import (
	"fmt"

	"github.com/chewxy/math32"
)

// DefaultSpacing is the distance between neighbouring cubie centres.
const DefaultSpacing float32 = 1.1

// DefaultTolerance is the layer membership tolerance.
const DefaultTolerance float32 = 0.5

// Option configures a Cube.
type Option func(*config)

type config struct {
	spacing   float32
	tolerance float32
}

func defaultConfig() *config {
	return &config{
		spacing:   DefaultSpacing,
		tolerance: DefaultTolerance,
	}
}

func (c *config) validate() error {
	if !(c.spacing > 0) || math32.IsInf(c.spacing, 1) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpacing, c.spacing)
	}
	// Anything wider than half the spacing lets a single origin match two
	// neighbouring layers.
	if !(c.tolerance > 0 && c.tolerance < c.spacing/2) {
		return fmt.Errorf("%w: got %v with spacing %v", ErrInvalidTolerance, c.tolerance, c.spacing)
	}
	return nil
}

// WithSpacing sets the distance between neighbouring cubie centres.
func WithSpacing(spacing float32) Option {
	return func(c *config) {
		c.spacing = spacing
	}
}

// WithTolerance sets how far a cubie coordinate may sit from the layer
// origin and still count as part of the layer.
func WithTolerance(tolerance float32) Option {
	return func(c *config) {
		c.tolerance = tolerance
	}
}
