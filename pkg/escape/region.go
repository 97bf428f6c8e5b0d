package escape

// Region is a rectangle of the complex plane sampled on an evenly spaced grid.
//
// Both bounds are sampled: a Width of 3 over [-1, 1] samples -1, 0 and 1. A
// resolution of 1 samples the minimum bound only.
type Region struct {
	RealMin, RealMax float64
	ImagMin, ImagMax float64

	// Width and Height are the horizontal and vertical resolutions.
	Width, Height int
}

// Real is the real part of the i-th column.
func (r Region) Real(i int) float64 {
	return linspace(r.RealMin, r.RealMax, r.Width, i)
}

// Imag is the imaginary part of the j-th row.
func (r Region) Imag(j int) float64 {
	return linspace(r.ImagMin, r.ImagMax, r.Height, j)
}

// Point is the sample at column i, row j.
func (r Region) Point(i, j int) complex128 {
	return complex(r.Real(i), r.Imag(j))
}

func (r Region) Center() complex128 {
	return complex(0.5*(r.RealMin+r.RealMax), 0.5*(r.ImagMin+r.ImagMax))
}

// WithResolution returns the same bounds sampled at a different resolution.
func (r Region) WithResolution(width, height int) Region {
	r.Width = width
	r.Height = height
	return r
}

func linspace(lo, hi float64, n, i int) float64 {
	if n <= 1 {
		return lo
	}
	step := (hi - lo) / float64(n-1)
	return lo + float64(i)*step
}
