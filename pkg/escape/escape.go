// Package escape computes escape-time maps of Mandelbrot and Julia sets.
package escape

import (
	"math"
	"math/cmplx"

	"github.com/willbeason/escape-fractal/pkg/transforms"
)

// Map is the result of one evaluation.
//
// Cells are stored row-major with one row per imaginary sample and one column
// per real sample, so row 0 is ImagMin and column 0 is RealMin.
type Map struct {
	Width, Height int

	// Values holds -k for a cell that escaped on iteration k and 0 for a cell
	// that never escaped. A cell that escaped on iteration 0 also holds 0; use
	// Escaped to tell the two apart.
	Values []float64

	// Escaped records which cells left the escape radius.
	Escaped []bool
}

func (m *Map) At(row, col int) float64 {
	return m.Values[row*m.Width+col]
}

func (m *Map) EscapedAt(row, col int) bool {
	return m.Escaped[row*m.Width+col]
}

// Rows copies the map into a slice of rows.
func (m *Map) Rows() [][]float64 {
	rows := make([][]float64, m.Height)
	for j := range rows {
		rows[j] = append([]float64(nil), m.Values[j*m.Width:(j+1)*m.Width]...)
	}
	return rows
}

// Count is the number of cells that escaped.
func (m *Map) Count() int {
	n := 0
	for _, e := range m.Escaped {
		if e {
			n++
		}
	}
	return n
}

// Bounds returns the smallest and largest values in the map. An empty map
// returns zeros.
func (m *Map) Bounds() (float64, float64) {
	if len(m.Values) == 0 {
		return 0, 0
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range m.Values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

// Evaluate iterates every sample point of cfg.Region and records the first
// iteration on which it left cfg.EscapeRadius.
//
// Once a point escapes it is dropped from the active set and never updated or
// tested again. Evaluate does no validation beyond treating a non-positive
// resolution as an empty grid.
func Evaluate(cfg Config) *Map {
	r := cfg.Region
	w, h := max(r.Width, 0), max(r.Height, 0)

	m := &Map{
		Width:   w,
		Height:  h,
		Values:  make([]float64, w*h),
		Escaped: make([]bool, w*h),
	}

	family := transforms.For(cfg.Power, cfg.C)

	z := make([]complex128, w*h)
	c := make([]complex128, w*h)
	active := make([]int, 0, w*h)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			idx := j*w + i
			z[idx], c[idx] = family.Start(r.Point(i, j))
			active = append(active, idx)
		}
	}

	for k := 0; k < cfg.MaxIterations && len(active) > 0; k++ {
		// Compact the active set in place as points escape.
		remaining := active[:0]
		for _, idx := range active {
			z[idx] = family.Next(z[idx], c[idx])
			if cmplx.Abs(z[idx]) > cfg.EscapeRadius {
				m.Escaped[idx] = true
				m.Values[idx] = -float64(k)
				continue
			}
			remaining = append(remaining, idx)
		}
		active = remaining
	}

	return m
}
