// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"

	"github.com/gogpu/ggres/backend"
	"github.com/gogpu/ggres/render"
)

// Sentinel errors for the software backend.
var (
	// ErrNotCurrent is returned when drawing to a window whose context is
	// not current.
	ErrNotCurrent = errors.New("soft: window context is not current")

	// ErrDestroyed is returned when using a destroyed object.
	ErrDestroyed = errors.New("soft: object destroyed")

	// ErrInvalidSize is returned for non-positive sizes.
	ErrInvalidSize = errors.New("soft: invalid size")

	// ErrLength is returned when a data buffer does not match the primitive shape.
	ErrLength = errors.New("soft: data length does not match primitive shape")
)

// Default window size used when a WindowConfig leaves it unset.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

func init() {
	backend.Register(backend.BackendSoftware, func() render.Backend { return New() })
}

// nopHandler is a slog.Handler that silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Backend renders charts into in-memory RGBA canvases.
//
// Backend is not safe for concurrent use.
type Backend struct {
	log     *slog.Logger
	current *Window
	font    *Font
}

// New creates a software backend.
func New() *Backend {
	return &Backend{log: slog.New(nopHandler{})}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendSoftware }

// SetLogger sets the logger used for render diagnostics.
// Pass nil to disable logging.
func (b *Backend) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	b.log = l
}

// NewWindow creates an offscreen canvas. Zero sizes fall back to
// DefaultWidth×DefaultHeight.
func (b *Backend) NewWindow(cfg render.WindowConfig) (render.Window, error) {
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: window %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	w := &Window{
		backend: b,
		cfg:     cfg,
		canvas:  image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
	}
	w.Clear()
	return w, nil
}

// NewChart implements render.Backend.
func (b *Backend) NewChart(kind render.ChartKind) (render.Chart, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("soft: invalid chart kind %d", kind)
	}
	return &Chart{kind: kind}, nil
}

// NewFont implements render.Backend. The most recently created font is
// used for chart titles.
func (b *Backend) NewFont(face render.Typeface) (render.Font, error) {
	f, err := newFont(face)
	if err != nil {
		return nil, err
	}
	f.backend = b
	b.font = f
	return f, nil
}

// Window is an offscreen RGBA canvas split into a grid of chart cells.
type Window struct {
	backend    *Backend
	cfg        render.WindowConfig
	canvas     *image.RGBA
	rows, cols int
	destroyed  bool
}

func (w *Window) Width() int    { return w.cfg.Width }
func (w *Window) Height() int   { return w.cfg.Height }
func (w *Window) Title() string { return w.cfg.Title }
func (w *Window) GridRows() int { return w.rows }
func (w *Window) GridCols() int { return w.cols }

// DeviceHandle returns a null device: the context is a CPU canvas.
func (w *Window) DeviceHandle() render.DeviceHandle { return render.NullDeviceHandle{} }

// MakeCurrent makes w the target of subsequent Draw calls.
func (w *Window) MakeCurrent() error {
	if w.destroyed {
		return ErrDestroyed
	}
	w.backend.current = w
	return nil
}

// Current reports whether w's context is current.
func (w *Window) Current() bool { return w.backend.current == w }

// SetGrid sets the cell layout and clears the canvas.
func (w *Window) SetGrid(rows, cols int) {
	w.rows, w.cols = rows, cols
	w.Clear()
}

// Clear fills the canvas with white.
func (w *Window) Clear() {
	draw.Draw(w.canvas, w.canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
}

// Cell returns the canvas rectangle of grid cell (row, col).
func (w *Window) Cell(row, col int) image.Rectangle {
	if w.rows <= 0 || w.cols <= 0 {
		return w.canvas.Bounds()
	}
	cw := w.cfg.Width / w.cols
	ch := w.cfg.Height / w.rows
	return image.Rect(col*cw, row*ch, (col+1)*cw, (row+1)*ch)
}

// Draw renders chart into cell (row, col).
func (w *Window) Draw(row, col int, chart render.Chart) error {
	if w.destroyed {
		return ErrDestroyed
	}
	if !w.Current() {
		return ErrNotCurrent
	}
	if row < 0 || col < 0 || (w.rows > 0 && row >= w.rows) || (w.cols > 0 && col >= w.cols) {
		return fmt.Errorf("soft: cell (%d, %d) outside %dx%d grid", row, col, w.rows, w.cols)
	}
	rect := w.Cell(row, col)
	panel := w.backend.renderChart(chart, rect.Dx(), rect.Dy())
	draw.Draw(w.canvas, rect, panel, panel.Bounds().Min, draw.Src)
	if w.cfg.Title != "" {
		w.backend.drawCaption(w.canvas, rect, fmt.Sprintf("%s [%d,%d]", w.cfg.Title, row, col))
	}
	return nil
}

// Image returns the canvas. The caller must not modify it while drawing.
func (w *Window) Image() *image.RGBA { return w.canvas }

// SavePNG writes the canvas to a PNG file.
func (w *Window) SavePNG(path string) error {
	// #nosec G304 -- output path is provided by the caller
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("soft: create %s: %w", path, err)
	}
	if err := png.Encode(f, w.canvas); err != nil {
		_ = f.Close()
		return fmt.Errorf("soft: encode %s: %w", path, err)
	}
	return f.Close()
}

// Destroy releases the canvas.
func (w *Window) Destroy() {
	if w.backend.current == w {
		w.backend.current = nil
	}
	w.destroyed = true
	w.canvas = image.NewRGBA(image.Rectangle{})
}

// Chart is a draw list with a fixed kind.
type Chart struct {
	kind      render.ChartKind
	list      []render.Primitive
	destroyed bool
}

func (c *Chart) Kind() render.ChartKind { return c.kind }

func (c *Chart) Add(p render.Primitive) {
	c.list = append(c.list, p)
}

func (c *Chart) Primitives() []render.Primitive {
	out := make([]render.Primitive, len(c.list))
	copy(out, c.list)
	return out
}

// Destroy drops the draw list. Primitives are owned elsewhere.
func (c *Chart) Destroy() {
	c.list = nil
	c.destroyed = true
}

var (
	_ render.Backend = (*Backend)(nil)
	_ render.Window  = (*Window)(nil)
	_ render.Chart   = (*Chart)(nil)
)
