// Command pixelgrid shows a procedurally colored pixel grid and lets the
// user zoom around the cursor with the mouse wheel and pan by dragging.
//
// By default it runs in the terminal. With -headless it plays a scripted
// zoom and drag, renders the final view with the software backend and
// writes it to a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixelgrid"
	"github.com/gogpu/pixelgrid/backend"
	"github.com/gogpu/pixelgrid/internal/config"
	"github.com/gogpu/pixelgrid/scene"
)

// background fills the viewport around the grid.
var background = color.RGBA{R: 24, G: 24, B: 28, A: 255}

func main() {
	var (
		configPath  = flag.String("config", "", "YAML configuration file")
		headless    = flag.Bool("headless", false, "render a scripted session to a PNG instead of opening the terminal")
		frames      = flag.Int("frames", 90, "number of ticks in headless mode")
		output      = flag.String("output", "pixelgrid.png", "PNG file written in headless mode")
		backendName = flag.String("backend", "", "texture backend (default: software)")
		logPath     = flag.String("log", "", "log file (headless mode logs to stderr when empty)")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	closeLog, err := setupLogging(*logPath, *headless, *verbose)
	if err != nil {
		log.Fatalf("pixelgrid: %v", err)
	}
	defer closeLog()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("pixelgrid: config: %v", err)
	}

	b, err := backend.InitNamed(*backendName)
	if err != nil {
		log.Fatalf("pixelgrid: %v (available: %v)", err, backend.Available())
	}
	defer b.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headless {
		err = runHeadless(cfg, b, *frames, *output)
	} else {
		err = runInteractive(ctx, cfg, b)
	}
	if err != nil {
		log.Fatalf("pixelgrid: %v", err)
	}
}

// setupLogging installs the pixelgrid logger. Interactive sessions own the
// terminal, so they log only to a file.
func setupLogging(path string, headless, verbose bool) (func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	var w io.Writer
	closeFn := func() {}
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
		w, closeFn = f, func() { _ = f.Close() }
	case headless:
		w = os.Stderr
	default:
		return closeFn, nil
	}

	pixelgrid.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}

// render draws the scene's texture over the background into dst.
func render(b backend.RenderBackend, s *scene.Scene, dst *image.RGBA) error {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	size := dst.Bounds().Size()
	viewport := pixelgrid.V2(float64(size.X), float64(size.Y))
	return b.DrawTexture(dst, s.Texture(), s.TextureMatrix(viewport))
}
