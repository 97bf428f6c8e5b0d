// Package zoom derives a sequence of narrower views from a starting region.
package zoom

import (
	"github.com/willbeason/escape-fractal/pkg/escape"
)

const (
	DefaultLevels = 10
	DefaultFactor = 12000.0

	// Zoom frames are rendered smaller than the main view by default.
	DefaultWidth  = 500
	DefaultHeight = 500
)

// DefaultCenter sits on a spiral near Seahorse Valley.
var DefaultCenter = complex(-0.793191078177363, 0.16093721735804)

type Config struct {
	Center complex128
	Levels int
	Factor float64

	// Width and Height are the resolution every frame is sampled at.
	Width, Height int
}

func Default() Config {
	return Config{
		Center: DefaultCenter,
		Levels: DefaultLevels,
		Factor: DefaultFactor,
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// A Frame is one view of the sequence.
type Frame struct {
	Level  int
	Scale  float64
	Region escape.Region
}

// Scale is the fraction of the starting region's extent kept at a level.
func Scale(level int, factor float64) float64 {
	return float64(level) / factor
}

// Shrink moves every bound of r towards center by scale: each bound becomes
// (bound - center)*scale + center. Resolution is unchanged.
func Shrink(r escape.Region, center complex128, scale float64) escape.Region {
	cr, ci := real(center), imag(center)

	r.RealMin = (r.RealMin-cr)*scale + cr
	r.RealMax = (r.RealMax-cr)*scale + cr
	r.ImagMin = (r.ImagMin-ci)*scale + ci
	r.ImagMax = (r.ImagMax-ci)*scale + ci

	return r
}

// At returns frame level of the sequence. Level 0 is the starting view itself,
// unscaled and at its own resolution.
func At(r escape.Region, cfg Config, level int) Frame {
	if level == 0 {
		return Frame{Level: 0, Scale: 1, Region: r}
	}

	scale := Scale(level, cfg.Factor)
	return Frame{
		Level:  level,
		Scale:  scale,
		Region: Shrink(r, cfg.Center, scale).WithResolution(cfg.Width, cfg.Height),
	}
}

// Sequence returns levels 1 through cfg.Levels. Frames share nothing and may be
// evaluated in any order.
func Sequence(r escape.Region, cfg Config) []Frame {
	if cfg.Levels <= 0 {
		return nil
	}

	frames := make([]Frame, cfg.Levels)
	for i := range frames {
		frames[i] = At(r, cfg, i+1)
	}
	return frames
}
