// Command ggresdemo renders a 2x2 grid of cached charts to a PNG file.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/ggres"
	"github.com/gogpu/ggres/backend"
	"github.com/gogpu/ggres/render"
)

// pngSaver is implemented by windows that can write their canvas to disk.
type pngSaver interface {
	SavePNG(path string) error
}

func main() {
	var (
		width   = flag.Int("width", 0, "window width (0 = from config)")
		height  = flag.Int("height", 0, "window height (0 = from config)")
		output  = flag.String("output", "ggres-demo.png", "output file")
		envFile = flag.String("env", "", ".env file with GGRES_* settings")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		ggres.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var files []string
	if *envFile != "" {
		files = append(files, *envFile)
	}
	cfg, err := ggres.LoadConfig(files...)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *width > 0 {
		cfg.WindowWidth = *width
	}
	if *height > 0 {
		cfg.WindowHeight = *height
	}

	b, err := backend.Get(backend.BackendSoftware)
	if err != nil {
		log.Fatalf("Software backend unavailable: %v", err)
	}
	m := ggres.New(ggres.WithBackend(b), ggres.WithConfig(cfg))
	defer m.Close()

	if err := run(m, *output); err != nil {
		m.Close()
		log.Fatalf("Demo failed: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, cfg.WindowWidth, cfg.WindowHeight)
}

func run(m *ggres.Manager, output string) error {
	win, err := m.MainWindow()
	if err != nil {
		return err
	}
	if _, err := m.Font(); err != nil {
		return err
	}
	if err := m.ConfigureGrid(win, 2, 2); err != nil {
		return err
	}

	if err := drawLinePlot(m, win); err != nil {
		return err
	}
	if err := drawHistogram(m, win); err != nil {
		return err
	}
	if err := drawImage(m, win); err != nil {
		return err
	}
	if err := drawSurface(m, win); err != nil {
		return err
	}

	if err := m.Draw(win); err != nil {
		return err
	}
	saver, ok := win.(pngSaver)
	if !ok {
		log.Printf("Backend %s cannot save windows; skipping %s", m.Backend().Name(), output)
		return nil
	}
	return saver.SavePNG(output)
}

func drawLinePlot(m *ggres.Manager, win render.Window) error {
	c, err := m.Chart(win, 0, 0, render.Chart2D)
	if err != nil {
		return err
	}
	const n = 200
	xs := make([]float32, n)
	ys := make([]float32, n)
	for i := range xs {
		x := float64(i) / n * 4 * math.Pi
		xs[i] = float32(x)
		ys[i] = float32(math.Sin(x) * math.Exp(-x/8))
	}
	_, err = ggres.SetupPlot(m, c, render.PlotLine, render.MarkerNone, xs, ys)
	return err
}

func drawHistogram(m *ggres.Manager, win render.Window) error {
	c, err := m.Chart(win, 0, 1, render.Chart2D)
	if err != nil {
		return err
	}
	// Binomial-like counts.
	counts := make([]uint32, 12)
	for i := range counts {
		d := float64(i) - 5.5
		counts[i] = uint32(100 * math.Exp(-d*d/8))
	}
	_, err = ggres.SetupHistogram(m, c, counts, 0, 12)
	return err
}

func drawImage(m *ggres.Manager, win render.Window) error {
	c, err := m.Chart(win, 1, 0, render.Chart2D)
	if err != nil {
		return err
	}
	const size = 64
	src := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			src.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 4), B: 160, A: 255})
		}
	}
	_, err = ggres.SetupImage(m, c, src, render.RGBA)
	return err
}

func drawSurface(m *ggres.Manager, win render.Window) error {
	c, err := m.Chart(win, 1, 1, render.Chart3D)
	if err != nil {
		return err
	}
	const n = 24
	xs := make([]float32, n)
	ys := make([]float32, n)
	zs := make([]float32, n*n)
	for i := range xs {
		xs[i] = float32(i)/n*2 - 1
		ys[i] = xs[i]
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			r := math.Hypot(float64(xs[i]), float64(ys[j])) * 3
			zs[j*n+i] = float32(math.Cos(r) / (1 + r))
		}
	}
	_, err = ggres.SetupSurface(m, c, xs, ys, zs)
	return err
}
