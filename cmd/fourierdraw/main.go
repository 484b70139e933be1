// Command fourierdraw reconstructs a closed curve with epicycles and
// renders the animation as a sequence of PNG frames.
//
// The curve is a preset shape or an explicit point list:
//
//	fourierdraw -shape heart -accuracy 0.3 -frames 120 -out frames/%04d.png
//	fourierdraw -points "100,100;-100,100;-100,-100;100,-100" -frames 1
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/fourier"
	"github.com/gogpu/fourier/render"
	"github.com/gogpu/fourier/shapes"
)

func main() {
	var (
		shape     = flag.String("shape", "heart", "preset shape: "+strings.Join(shapes.Names, ", "))
		points    = flag.String("points", "", `explicit points "x,y;x,y;..." (overrides -shape)`)
		samples   = flag.Int("samples", 240, "samples taken from a preset shape")
		radius    = flag.Float64("radius", 220, "preset shape radius")
		accuracy  = flag.Float64("accuracy", 0.5, "fraction of frequency pairs to keep, 0..1")
		fps       = flag.Float64("fps", 60, "frames per second of animation time")
		frames    = flag.Int("frames", 0, "frames to render (0 = one full period)")
		out       = flag.String("out", "frame_%04d.png", "output file pattern")
		width     = flag.Int("width", 800, "image width")
		height    = flag.Int("height", 600, "image height")
		transform = flag.String("transform", "direct", "coefficient kernel: direct or fft")
		rank      = flag.String("rank", "frequency", "truncation policy: frequency or magnitude")
		interp    = flag.Int("interp", 1, "sub-samples per path segment")
		maxTerms  = flag.Int("max-terms", 0, "cap on frequency pairs (0 = none)")
		workers   = flag.Int("workers", 1, "goroutines for the direct transform")
		hud       = flag.Bool("hud", true, "draw the status line")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	fourier.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	input, err := loadInput(*points, *shape, *samples, *radius)
	if err != nil {
		log.Fatalf("Input: %v", err)
	}

	engineOpts, err := engineOptions(*transform, *rank, *interp, *maxTerms, *workers)
	if err != nil {
		log.Fatalf("Options: %v", err)
	}

	r, err := render.New(render.WithSize(*width, *height), render.WithHUD(*hud))
	if err != nil {
		log.Fatalf("Renderer: %v", err)
	}

	ctrl := fourier.NewController(
		fourier.WithEngineOptions(engineOpts...),
		// Presets are already evenly sampled; keep every point.
		fourier.WithRecorderOptions(fourier.WithMinDistance(0)),
	)
	defer ctrl.Close()

	// Feed the samples the way a pointer would.
	ctrl.Begin()
	for _, p := range input {
		ctrl.AddSample(p)
	}
	ctrl.Finish(*accuracy)

	if ctrl.State() != fourier.StateReplaying {
		log.Fatalf("Nothing to animate: controller is %s", ctrl.State())
	}

	stats := fourier.MeasureReconstruction(fourier.NewDrawPath(ctrl.Path()...), ctrl.Coefficients())
	fourier.Logger().Info("reconstruction",
		"points", len(ctrl.Path()),
		"terms", ctrl.Coefficients().Terms(),
		"rms", stats.RMS,
		"max", stats.Max)

	n := *frames
	if n <= 0 {
		n = int(math.Ceil(2 * math.Pi * *fps))
	}
	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatalf("Output directory: %v", err)
	}

	for i := range n {
		ctrl.Tick(*fps)
		path := *out
		if strings.Contains(path, "%") {
			path = fmt.Sprintf(*out, i)
		}
		if err := saveFrame(r, ctrl.Frame(), path); err != nil {
			log.Fatalf("Frame %d: %v", i, err)
		}
	}

	log.Printf("Rendered %d frames (%dx%d) to %s\n", n, *width, *height, *out)
}

func loadInput(points, shape string, samples int, radius float64) ([]fourier.Complex, error) {
	if points != "" {
		return shapes.Parse(points)
	}
	return shapes.ByName(shape, samples, radius)
}

func engineOptions(transform, rank string, interp, maxTerms, workers int) ([]fourier.Option, error) {
	opts := []fourier.Option{
		fourier.WithInterpolation(interp),
		fourier.WithMaxTerms(maxTerms),
		fourier.WithWorkers(workers),
	}

	switch transform {
	case fourier.TransformDirect.String():
		opts = append(opts, fourier.WithTransform(fourier.TransformDirect))
	case fourier.TransformFFT.String():
		opts = append(opts, fourier.WithTransform(fourier.TransformFFT))
	default:
		return nil, fmt.Errorf("unknown transform %q", transform)
	}

	switch rank {
	case fourier.RankByFrequency.String():
		opts = append(opts, fourier.WithRanking(fourier.RankByFrequency))
	case fourier.RankByMagnitude.String():
		opts = append(opts, fourier.WithRanking(fourier.RankByMagnitude))
	default:
		return nil, fmt.Errorf("unknown ranking %q", rank)
	}
	return opts, nil
}

func saveFrame(r *render.Renderer, f fourier.Frame, path string) error {
	dc := r.Render(f)
	defer func() { _ = dc.Close() }()
	return dc.SavePNG(path)
}
