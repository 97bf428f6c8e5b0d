package transforms

import (
	"math/cmplx"
	"testing"
)

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		z    complex128
		n    float64
	}{
		{name: "square", z: complex(0.3, -1.2), n: 2},
		{name: "cube", z: complex(-0.5, 0.25), n: 3},
		{name: "fifth", z: complex(1.1, 0.4), n: 5},
		{name: "first", z: complex(2, 3), n: 1},
		{name: "fractional", z: complex(0.7, 0.2), n: 2.5},
		{name: "large integer", z: complex(0.99, 0.01), n: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pow(tt.z, tt.n)
			want := cmplx.Pow(tt.z, complex(tt.n, 0))
			if cmplx.Abs(got-want) > 1e-9*(1+cmplx.Abs(want)) {
				t.Errorf("Pow(%v, %v) = %v, want %v", tt.z, tt.n, got, want)
			}
		})
	}
}

func TestPowZero(t *testing.T) {
	for _, n := range []float64{1, 2, 3, 2.5, 0.5} {
		if got := Pow(0, n); got != 0 {
			t.Errorf("Pow(0, %v) = %v, want 0", n, got)
		}
	}
}

func TestFor(t *testing.T) {
	if _, ok := For(2, 0).(MandelbrotN); !ok {
		t.Errorf("For(2, 0) = %T, want MandelbrotN", For(2, 0))
	}

	c := complex(-0.4, 0.6)
	j, ok := For(2, c).(JuliaN)
	if !ok {
		t.Fatalf("For(2, %v) = %T, want JuliaN", c, For(2, c))
	}
	if j.C != c || j.N != 2 {
		t.Errorf("For(2, %v) = %+v", c, j)
	}
}

func TestMandelbrotStart(t *testing.T) {
	m := MandelbrotN{N: 2}
	p1, p2 := complex(-1, 0.5), complex(0.25, -0.1)

	z1, c1 := m.Start(p1)
	z2, c2 := m.Start(p2)

	if z1 != 0 || z2 != 0 {
		t.Errorf("Start() z = %v, %v, want 0", z1, z2)
	}
	if c1 != p1 || c2 != p2 {
		t.Errorf("Start() c = %v, %v, want the sample points %v, %v", c1, c2, p1, p2)
	}
}

func TestJuliaSharesConstant(t *testing.T) {
	j := JuliaN{N: 2, C: complex(-0.4, 0.6)}
	p1, p2 := complex(-1, 0.5), complex(0.25, -0.1)

	z1, c1 := j.Start(p1)
	z2, c2 := j.Start(p2)

	if z1 != p1 || z2 != p2 {
		t.Errorf("Start() z = %v, %v, want the sample points %v, %v", z1, z2, p1, p2)
	}
	if c1 != c2 || c1 != j.C {
		t.Errorf("Start() c = %v, %v, want both %v", c1, c2, j.C)
	}

	if got, want := j.Next(z1, c1), p1*p1+j.C; got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
}
