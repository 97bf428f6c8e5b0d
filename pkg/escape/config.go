package escape

import (
	"github.com/pkg/errors"
)

const (
	DefaultWidth         = 1000
	DefaultHeight        = 1000
	DefaultMaxIterations = 300
	DefaultEscapeRadius  = 10.0
	DefaultPower         = 2.0
)

// Config is everything one evaluation needs.
type Config struct {
	Region Region

	// MaxIterations caps the number of steps taken per point.
	MaxIterations int

	// EscapeRadius is the magnitude past which a point has diverged.
	EscapeRadius float64

	// Power is the exponent of the recurrence. It need not be an integer.
	Power float64

	// C is the constant of the Julia set to draw. Zero draws the Mandelbrot set.
	C complex128
}

// DefaultConfig is the full Mandelbrot set at 1000x1000.
func DefaultConfig() Config {
	return Config{
		Region:        Full.WithResolution(DefaultWidth, DefaultHeight),
		MaxIterations: DefaultMaxIterations,
		EscapeRadius:  DefaultEscapeRadius,
		Power:         DefaultPower,
	}
}

// Validate reports settings Evaluate cannot produce a meaningful map for.
// Evaluate does not call it.
func (c Config) Validate() error {
	switch {
	case c.Region.Width <= 0 || c.Region.Height <= 0:
		return errors.Errorf("resolution must be positive, got %dx%d", c.Region.Width, c.Region.Height)
	case c.MaxIterations <= 0:
		return errors.Errorf("max iterations must be positive, got %d", c.MaxIterations)
	case !(c.EscapeRadius > 0):
		return errors.Errorf("escape radius must be positive, got %v", c.EscapeRadius)
	case !(c.Power > 0):
		return errors.Errorf("power must be positive, got %v", c.Power)
	}
	return nil
}
