// Package render evaluates a view and its zoom frames and saves them as images.
package render

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/raster"
	"github.com/willbeason/escape-fractal/pkg/zoom"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DefaultOut = "fractal.png"

// Job describes one run: the main view and, when Zoom is set, its zoom frames.
type Job struct {
	Escape escape.Config

	// Out is where the main view goes. Zoom frame i is written next to it as
	// <stem>-zoom-<i><ext>.
	Out     string
	Palette palette.Palette

	Zoom        *zoom.Config
	ZoomPalette palette.Palette

	// Size is the length in pixels of each image's longer side. Zero keeps one
	// pixel per sample.
	Size int

	// Label captions each image with its level and bounds.
	Label bool

	// Parallel is how many zoom frames are evaluated at once. Each frame is
	// still evaluated by a single goroutine.
	Parallel int
}

// Result describes one saved image.
type Result struct {
	Level   int
	Path    string
	Region  escape.Region
	Escaped int
	Elapsed time.Duration
}

// ZoomPath is the file zoom frame level is written to, next to out.
func ZoomPath(out string, level int) string {
	ext := filepath.Ext(out)
	return fmt.Sprintf("%s-zoom-%d%s", strings.TrimSuffix(out, ext), level, ext)
}

var printer = message.NewPrinter(language.English)

// Run renders the main view and then any zoom frames, returning one Result per
// saved image in level order. It stops at the first error or when ctx is done.
func Run(ctx context.Context, job Job) ([]Result, error) {
	out := job.Out
	if out == "" {
		out = DefaultOut
	}
	if !raster.Supported(out) {
		return nil, errors.Errorf("%s: unsupported image format", out)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	view, err := renderFrame(job, zoom.At(job.Escape.Region, zoom.Config{}, 0), out, job.Palette)
	if err != nil {
		return nil, err
	}

	results := []Result{view}
	if job.Zoom == nil {
		return results, nil
	}

	frames := zoom.Sequence(job.Escape.Region, *job.Zoom)
	zoomed, err := renderFrames(ctx, job, frames, out)
	if err != nil {
		return nil, err
	}

	return append(results, zoomed...), nil
}

func renderFrames(ctx context.Context, job Job, frames []zoom.Frame, out string) ([]Result, error) {
	parallel := job.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	parallel = min(parallel, len(frames))

	zoomPalette := job.ZoomPalette
	if zoomPalette == nil {
		zoomPalette = job.Palette
	}

	frameChannel := make(chan int)
	go func() {
		defer close(frameChannel)
		for i := range frames {
			select {
			case frameChannel <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	results := make([]Result, len(frames))
	errs := make([]error, len(frames))

	wg := sync.WaitGroup{}
	wg.Add(parallel)
	for w := 0; w < parallel; w++ {
		go func() {
			defer wg.Done()
			for i := range frameChannel {
				if err := ctx.Err(); err != nil {
					errs[i] = err
					continue
				}
				f := frames[i]
				results[i], errs[i] = renderFrame(job, f, ZoomPath(out, f.Level), zoomPalette)
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

func renderFrame(job Job, f zoom.Frame, path string, p palette.Palette) (Result, error) {
	start := time.Now()

	cfg := job.Escape
	cfg.Region = f.Region
	m := escape.Evaluate(cfg)

	elapsed := time.Since(start)
	Logger().Debug("evaluated",
		"level", f.Level,
		"scale", f.Scale,
		"region", fmt.Sprintf("[%g, %g] x [%g, %g]", f.Region.RealMin, f.Region.RealMax, f.Region.ImagMin, f.Region.ImagMax),
		"elapsed", elapsed)

	img := raster.Resize(raster.Image(m, p), job.Size)
	if job.Label {
		raster.Label(img, caption(f))
	}

	err := raster.Write(path, img)
	if err != nil {
		return Result{}, err
	}

	escaped := m.Count()
	Logger().Info("saved",
		"path", path,
		"escaped", printer.Sprintf("%d of %d cells", escaped, m.Width*m.Height))

	return Result{
		Level:   f.Level,
		Path:    path,
		Region:  f.Region,
		Escaped: escaped,
		Elapsed: elapsed,
	}, nil
}

func caption(f zoom.Frame) string {
	if f.Level == 0 {
		return fmt.Sprintf("%.6g%+.6gi", real(f.Region.Center()), imag(f.Region.Center()))
	}
	return fmt.Sprintf("zoom %d  %.6g%+.6gi  x%.4g", f.Level,
		real(f.Region.Center()), imag(f.Region.Center()), 1/f.Scale)
}
