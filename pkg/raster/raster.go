// Package raster turns escape maps into images and writes them to disk.
package raster

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"
)

// Image colours m with p. Values are stretched linearly between the map's
// smallest and largest value; a map holding a single value uses the first
// palette entry throughout. Row 0 of the map is the top row of the image.
func Image(m *escape.Map, p palette.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))

	lo, hi := m.Bounds()
	span := hi - lo

	for row := 0; row < m.Height; row++ {
		for col := 0; col < m.Width; col++ {
			x := 0.0
			if span > 0 {
				x = (m.At(row, col) - lo) / span
			}
			img.SetRGBA(col, row, p.At(x))
		}
	}

	return img
}

// Resize scales img with nearest-neighbour sampling so that its longer side is
// size pixels. Pixels stay crisp, one block per cell. A non-positive size
// returns img unchanged.
func Resize(img *image.RGBA, size int) *image.RGBA {
	b := img.Bounds()
	if size <= 0 || b.Empty() {
		return img
	}

	w, h := size, size
	if b.Dx() > b.Dy() {
		h = max(1, size*b.Dy()/b.Dx())
	} else if b.Dy() > b.Dx() {
		w = max(1, size*b.Dx()/b.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

const labelMargin = 4

// Label writes text in the lower-left corner of img, white over a black
// shadow so it reads on any palette.
func Label(img *image.RGBA, text string) {
	face := basicfont.Face7x13
	b := img.Bounds()
	dot := fixed.P(b.Min.X+labelMargin, b.Max.Y-labelMargin-face.Descent)

	for _, layer := range []struct {
		c      color.Color
		offset fixed.Point26_6
	}{
		{c: color.Black, offset: fixed.P(1, 1)},
		{c: color.White},
	} {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(layer.c),
			Face: face,
			Dot:  dot.Add(layer.offset),
		}
		d.DrawString(text)
	}
}

type encoder func(io.Writer, image.Image) error

var encoders = map[string]encoder{
	".png": png.Encode,
	".jpg": func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	},
	".bmp": bmp.Encode,
	".tif": func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	},
}

func init() {
	encoders[".jpeg"] = encoders[".jpg"]
	encoders[".tiff"] = encoders[".tif"]
}

// Supported reports whether Write knows how to encode path.
func Supported(path string) bool {
	_, ok := encoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Write encodes img to path, choosing the format from the file extension.
func Write(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	encode, ok := encoders[ext]
	if !ok {
		return errors.Errorf("%s: unsupported image format %q", path, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}

	err = encode(f, img)
	if err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}

	return errors.Wrapf(f.Close(), "closing %s", path)
}
