package escape

import (
	"testing"
)

func TestRegionSamples(t *testing.T) {
	r := Region{RealMin: -2.5, RealMax: 1.5, ImagMin: -2, ImagMax: 2, Width: 5, Height: 3}

	wantReal := []float64{-2.5, -1.5, -0.5, 0.5, 1.5}
	for i, want := range wantReal {
		if got := r.Real(i); got != want {
			t.Errorf("Real(%d) = %v, want %v", i, got, want)
		}
	}

	wantImag := []float64{-2, 0, 2}
	for j, want := range wantImag {
		if got := r.Imag(j); got != want {
			t.Errorf("Imag(%d) = %v, want %v", j, got, want)
		}
	}

	if got, want := r.Point(3, 0), complex(0.5, -2); got != want {
		t.Errorf("Point(3, 0) = %v, want %v", got, want)
	}
}

func TestRegionSingleSample(t *testing.T) {
	r := Region{RealMin: -1, RealMax: 1, ImagMin: 3, ImagMax: 4, Width: 1, Height: 1}
	if got, want := r.Point(0, 0), complex(-1, 3); got != want {
		t.Errorf("Point(0, 0) = %v, want %v", got, want)
	}
}

func TestRegionCenter(t *testing.T) {
	if got, want := Full.Center(), complex(-0.5, 0); got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestRegions(t *testing.T) {
	names := RegionNames()
	if len(names) != len(Regions) {
		t.Fatalf("RegionNames() has %d names, want %d", len(names), len(Regions))
	}

	for _, name := range names {
		r := Regions[name]
		if !(r.RealMin < r.RealMax) || !(r.ImagMin < r.ImagMax) {
			t.Errorf("region %q has inverted bounds: %+v", name, r)
		}
	}
	if Regions["full"] != Full {
		t.Errorf("Regions[full] = %+v, want %+v", Regions["full"], Full)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "default", modify: func(*Config) {}},
		{name: "zero width", modify: func(c *Config) { c.Region.Width = 0 }, wantErr: true},
		{name: "negative height", modify: func(c *Config) { c.Region.Height = -1 }, wantErr: true},
		{name: "zero iterations", modify: func(c *Config) { c.MaxIterations = 0 }, wantErr: true},
		{name: "zero radius", modify: func(c *Config) { c.EscapeRadius = 0 }, wantErr: true},
		{name: "negative power", modify: func(c *Config) { c.Power = -2 }, wantErr: true},
		{name: "fractional power", modify: func(c *Config) { c.Power = 2.5 }},
		{name: "julia", modify: func(c *Config) { c.C = complex(-0.4, 0.6) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
