package escape

import (
	"sort"
)

// Full is the classic view of the whole Mandelbrot set.
var Full = Region{
	RealMin: -2.5,
	RealMax: 1.5,
	ImagMin: -2,
	ImagMax: 2,
}

// Regions holds well known landmarks of the Mandelbrot set by name. Resolution
// is left unset; callers pick it with WithResolution.
var Regions = map[string]Region{
	"full": Full,

	// Dense filaments and repeating "seahorse" curls.
	"seahorse-valley": {RealMin: -0.8, RealMax: -0.7, ImagMin: 0.05, ImagMax: 0.15},

	// Large bulb with trunk-like tendrils.
	"elephant-valley": {RealMin: -1.85, RealMax: -1.75, ImagMin: -0.10, ImagMax: -0.02},

	// Small copy of the set with tight spiral arms.
	"spiral-minibrot": {RealMin: -0.7435, RealMax: -0.7420, ImagMin: 0.1310, ImagMax: 0.1325},

	"triple-spiral": {RealMin: -0.7480, RealMax: -0.7450, ImagMin: 0.0950, ImagMax: 0.0980},

	"valley-of-the-dragon": {RealMin: -0.7400, RealMax: -0.7350, ImagMin: 0.1800, ImagMax: 0.1850},

	// Self-similar copy inside a spiral arm.
	"minibrot-in-mini-spiral": {RealMin: -1.7390, RealMax: -1.7375, ImagMin: -0.0235, ImagMax: -0.0220},
}

// RegionNames lists the keys of Regions in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(Regions))
	for name := range Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
