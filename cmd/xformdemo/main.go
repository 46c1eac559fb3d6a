// Command xformdemo fits a PNG into a canvas, rotates it and writes the result,
// demonstrating the xform matrix library.
package main

import (
	"flag"
	"image"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/xform"
	xdraw "golang.org/x/image/draw"
)

func main() {
	var (
		input   = flag.String("input", "", "input PNG (required)")
		output  = flag.String("output", "xform.png", "output file")
		width   = flag.Int("width", 800, "canvas width")
		height  = flag.Int("height", 600, "canvas height")
		fit     = flag.String("fit", "center", "fit mode: fill, start, center or end")
		rotate  = flag.Float64("rotate", 0, "rotation in degrees about the canvas centre")
		verbose = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		xform.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if *input == "" {
		log.Fatal("-input is required")
	}
	mode, ok := xform.ParseScaleToFit(*fit)
	if !ok {
		log.Fatalf("unknown fit mode %q", *fit)
	}

	src, err := loadPNG(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	canvas := xform.RectXYWH(0, 0, float64(*width), float64(*height))
	m, err := buildMatrix(src.Bounds(), canvas, mode, *rotate)
	if err != nil {
		log.Fatalf("Failed to build transform: %v", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if err := xform.TransformImage(dst, m, src, src.Bounds(), xdraw.Over, xdraw.CatmullRom); err != nil {
		log.Fatalf("Failed to transform: %v", err)
	}

	if err := savePNG(*output, dst); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	lo, hi, _ := m.MinMaxScales()
	log.Printf("Saved %s (%dx%d) matrix=%v type=%v scale=[%.3f, %.3f]\n",
		*output, *width, *height, m, m.Type(), lo, hi)
}

// buildMatrix fits bounds into canvas and then rotates about the canvas centre.
func buildMatrix(bounds image.Rectangle, canvas xform.Rect, mode xform.ScaleToFit, degrees float64) (xform.Matrix, error) {
	src := xform.RectLTRB(float64(bounds.Min.X), float64(bounds.Min.Y), float64(bounds.Max.X), float64(bounds.Max.Y))
	m, ok := xform.RectToRect(src, canvas, mode)
	if !ok {
		return xform.Matrix{}, xform.ErrSingular
	}
	m.PostRotatePivot(degrees, canvas.Center())
	return m, nil
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return png.Decode(f)
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
