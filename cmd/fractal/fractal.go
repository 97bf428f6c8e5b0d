package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/pkg/escape"
	"github.com/willbeason/escape-fractal/pkg/palette"
	"github.com/willbeason/escape-fractal/pkg/render"
	"github.com/willbeason/escape-fractal/pkg/zoom"
)

type options struct {
	escape escape.Config
	zoom   zoom.Config

	region string

	out         string
	palette     string
	zoomEnabled bool
	zoomPalette string
	size        int
	label       bool
	parallel    int
	verbose     bool
}

func mainCmd() *cobra.Command {
	opts := &options{
		escape: escape.DefaultConfig(),
		zoom:   zoom.Default(),
	}

	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Render escape-time fractals and zoom sequences",
		Long: `Render the Mandelbrot set, a Julia set or a multibrot over a region of the
complex plane, and optionally a series of frames zooming in on a point.

A --c-value of 0 draws the Mandelbrot set. Any other value draws the Julia set
of that constant.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, opts)
		},
	}

	flags := cmd.Flags()
	r := &opts.escape.Region
	flags.Float64Var(&r.RealMin, "real-min", r.RealMin, "minimum real axis value")
	flags.Float64Var(&r.RealMax, "real-max", r.RealMax, "maximum real axis value")
	flags.Float64Var(&r.ImagMin, "imag-min", r.ImagMin, "minimum imaginary axis value")
	flags.Float64Var(&r.ImagMax, "imag-max", r.ImagMax, "maximum imaginary axis value")
	flags.IntVar(&r.Width, "hor-res", r.Width, "horizontal resolution")
	flags.IntVar(&r.Height, "ver-res", r.Height, "vertical resolution")
	flags.StringVar(&opts.region, "region", "",
		"named region to draw instead of the bounds flags: "+strings.Join(escape.RegionNames(), ", "))

	flags.IntVar(&opts.escape.MaxIterations, "max-iterations", opts.escape.MaxIterations, "maximum number of iterations")
	flags.Float64Var(&opts.escape.EscapeRadius, "escape-radius", opts.escape.EscapeRadius, "escape radius")
	flags.Float64Var(&opts.escape.Power, "power", opts.escape.Power, "power the iterate is raised to")
	flags.Var(newComplexValue(0, &opts.escape.C), "c-value", "constant for Julia sets, 0 for the Mandelbrot set")

	flags.BoolVar(&opts.zoomEnabled, "zoom", false, "also render a sequence of zoomed frames")
	flags.Var(newComplexValue(opts.zoom.Center, &opts.zoom.Center), "zoom-center", "point to zoom towards")
	flags.IntVar(&opts.zoom.Levels, "zoom-levels", opts.zoom.Levels, "number of zoom frames")
	flags.Float64Var(&opts.zoom.Factor, "zoom-factor", opts.zoom.Factor, "frame i keeps i/factor of the view")
	flags.IntVar(&opts.zoom.Width, "zoom-res", opts.zoom.Width, "resolution of zoom frames")

	flags.StringVarP(&opts.out, "out", "o", render.DefaultOut, "output file; the extension picks png, jpg, bmp or tiff")
	flags.StringVar(&opts.palette, "palette", "custom", "palette for the main view: "+strings.Join(palette.Names(), ", "))
	flags.StringVar(&opts.zoomPalette, "zoom-palette", "flag", "palette for zoom frames")
	flags.IntVar(&opts.size, "size", 0, "pixel length of each image's longer side, 0 for one pixel per sample")
	flags.BoolVar(&opts.label, "label", false, "caption each image with its centre and zoom")
	flags.IntVar(&opts.parallel, "parallel", runtime.NumCPU(), "zoom frames rendered at once")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-frame timing")

	return cmd
}

func runCmd(cmd *cobra.Command, opts *options) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	render.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	job, err := opts.job()
	if err != nil {
		return err
	}

	_, err = render.Run(cmd.Context(), job)
	return err
}

func (opts *options) job() (render.Job, error) {
	cfg := opts.escape
	if opts.region != "" {
		r, ok := escape.Regions[opts.region]
		if !ok {
			return render.Job{}, errors.Errorf("unknown region %q, want one of %s",
				opts.region, strings.Join(escape.RegionNames(), ", "))
		}
		cfg.Region = r.WithResolution(cfg.Region.Width, cfg.Region.Height)
	}

	err := cfg.Validate()
	if err != nil {
		return render.Job{}, err
	}

	p, err := palette.ByName(opts.palette)
	if err != nil {
		return render.Job{}, err
	}

	job := render.Job{
		Escape:   cfg,
		Out:      opts.out,
		Palette:  p,
		Size:     opts.size,
		Label:    opts.label,
		Parallel: opts.parallel,
	}

	if opts.zoomEnabled {
		z := opts.zoom
		z.Height = z.Width
		if z.Levels <= 0 || z.Width <= 0 || !(z.Factor > 0) {
			return render.Job{}, errors.Errorf("zoom needs positive levels, factor and resolution, got %d, %v, %d",
				z.Levels, z.Factor, z.Width)
		}

		job.Zoom = &z
		job.ZoomPalette, err = palette.ByName(opts.zoomPalette)
		if err != nil {
			return render.Job{}, err
		}
	}

	return job, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
