package transforms

import (
	"math"
	"math/cmplx"
)

// maxIntPower bounds the exponents computed by repeated squaring.
const maxIntPower = 64

// A Family is an escape-time recurrence z <- z^N + c.
//
// Start returns the initial iterate and the constant added to it for a sample
// point. Next advances one step.
type Family interface {
	Start(p complex128) (z complex128, c complex128)
	Next(z complex128, c complex128) complex128
}

// For picks the family a constant selects: zero is the Mandelbrot set, anything
// else is the Julia set of that constant.
func For(power float64, c complex128) Family {
	if c == 0 {
		return MandelbrotN{N: power}
	}
	return JuliaN{N: power, C: c}
}

// Pow raises z to a real power. Positive integer powers are multiplied out so
// the common z^2 case stays exact and fast.
func Pow(z complex128, n float64) complex128 {
	if n == 2 {
		return z * z
	}

	if n >= 1 && n <= maxIntPower && n == math.Trunc(n) {
		k := int(n)
		result := complex(1, 0)
		for k > 0 {
			if k&1 == 1 {
				result *= z
			}
			z *= z
			k >>= 1
		}
		return result
	}

	if z == 0 && n > 0 {
		return 0
	}
	return cmplx.Pow(z, complex(n, 0))
}
