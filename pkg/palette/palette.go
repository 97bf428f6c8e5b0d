// Package palette builds the colour maps escape maps are drawn with.
package palette

import (
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// A Palette maps positions in [0, 1] to colours by table lookup.
type Palette []color.RGBA

// At returns the colour for x. Values outside [0, 1] are clipped and NaN maps
// to the first entry.
func (p Palette) At(x float64) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 0xff}
	}
	if math.IsNaN(x) || x <= 0 {
		return p[0]
	}

	i := int(x * float64(len(p)))
	if i >= len(p) {
		i = len(p) - 1
	}
	return p[i]
}

// A Stop pins Color to Pos along a Ramp.
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Ramp samples n evenly spaced entries from the piecewise-linear blend of
// stops. Stops are sorted by position; positions before the first stop or past
// the last take that stop's colour.
func Ramp(stops []Stop, n int) Palette {
	if n <= 0 || len(stops) == 0 {
		return nil
	}

	sorted := append([]Stop(nil), stops...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })

	p := make(Palette, n)
	for k := range p {
		x := 0.0
		if n > 1 {
			x = float64(k) / float64(n-1)
		}
		p[k] = rgba(blend(sorted, x))
	}
	return p
}

func blend(stops []Stop, x float64) colorful.Color {
	if x <= stops[0].Pos {
		return stops[0].Color
	}

	for s := 1; s < len(stops); s++ {
		lo, hi := stops[s-1], stops[s]
		if x > hi.Pos {
			continue
		}
		if hi.Pos == lo.Pos {
			return hi.Color
		}
		return lo.Color.BlendRgb(hi.Color, (x-lo.Pos)/(hi.Pos-lo.Pos))
	}

	return stops[len(stops)-1].Color
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

const (
	customStops   = 20
	customEntries = 2048
	flagEntries   = 256
	grayEntries   = 256
)

var customColors = []string{"#ffff88", "#000000", "#ffaa00"}

// Custom cycles pale yellow, black and orange over 20 stops bunched towards
// the top of the range, so slow-escaping points get narrow bands.
func Custom() Palette {
	stops := make([]Stop, customStops)
	for i := range stops {
		v := float64(i) / float64(customStops-1)
		stops[i] = Stop{
			Pos:   1 - math.Pow(1-v, 4),
			Color: hex(customColors[i%len(customColors)]),
		}
	}
	return Ramp(stops, customEntries)
}

// Flag repeats red, white, blue and black many times across the range.
func Flag() Palette {
	p := make(Palette, flagEntries)
	for k := range p {
		x := float64(k) / float64(flagEntries-1)
		c := colorful.Color{
			R: 0.75*math.Sin((x*31.5+0.25)*math.Pi) + 0.5,
			G: math.Sin(x * 31.5 * math.Pi),
			B: 0.75*math.Sin((x*31.5-0.25)*math.Pi) + 0.5,
		}
		p[k] = rgba(c)
	}
	return p
}

func Gray() Palette {
	return Ramp([]Stop{
		{Pos: 0, Color: colorful.Color{}},
		{Pos: 1, Color: colorful.Color{R: 1, G: 1, B: 1}},
	}, grayEntries)
}

var byName = map[string]func() Palette{
	"custom": Custom,
	"flag":   Flag,
	"gray":   Gray,
}

// Names lists the palettes ByName knows.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ByName(name string) (Palette, error) {
	build, ok := byName[name]
	if !ok {
		return nil, errors.Errorf("unknown palette %q, want one of %v", name, Names())
	}
	return build(), nil
}
