// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package record implements a rendering backend that draws nothing and
// records every lifecycle event instead.
//
// It is useful for checking resource ownership: every object it creates
// logs its creation, attachment, drawing and destruction, and destroying an
// object twice is logged as well so tests can detect it.
//
//	b := record.New()
//	m := ggres.New(ggres.WithBackend(b))
//	...
//	m.Close()
//	for _, e := range b.Events() {
//	    fmt.Println(e)
//	}
package record

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/ggres/backend"
	"github.com/gogpu/ggres/render"
)

// Op is a recorded lifecycle operation.
type Op string

// Recorded operations.
const (
	OpCreate  Op = "create"
	OpDestroy Op = "destroy"
	OpAdd     Op = "add"
	OpCurrent Op = "current"
	OpGrid    Op = "grid"
	OpDraw    Op = "draw"
	OpUpdate  Op = "update"
)

// Object names used in events.
const (
	ObjWindow = "window"
	ObjChart  = "chart"
	ObjFont   = "font"
)

// Event is one recorded operation on one object.
type Event struct {
	Op     Op
	Object string // "window", "chart", "font" or a render.PrimitiveKind name
	ID     int
	Detail string
}

// String formats the event as "op object#id detail".
func (e Event) String() string {
	s := fmt.Sprintf("%s %s#%d", e.Op, e.Object, e.ID)
	if e.Detail != "" {
		s += " " + e.Detail
	}
	return s
}

// ErrInjected is returned by constructors configured to fail with FailOn.
var ErrInjected = errors.New("record: injected failure")

func init() {
	backend.Register(backend.BackendRecord, func() render.Backend { return New() })
}

// Backend is a recording render.Backend.
// Backend is safe for concurrent use.
type Backend struct {
	mu     sync.Mutex
	events []Event
	nextID int
	fail   map[string]bool
}

// New creates a recording backend with an empty log.
func New() *Backend {
	return &Backend{fail: make(map[string]bool)}
}

// Name returns the backend identifier.
func (b *Backend) Name() string { return backend.BackendRecord }

// FailOn makes constructors for object fail with ErrInjected. object is
// "window", "chart", "font" or a primitive kind name such as "surface".
func (b *Backend) FailOn(object string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail[object] = true
}

// Events returns a copy of the recorded events.
func (b *Backend) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// Filter returns the recorded events with the given op.
func (b *Backend) Filter(op Op) []Event {
	var out []Event
	for _, e := range b.Events() {
		if e.Op == op {
			out = append(out, e)
		}
	}
	return out
}

// Reset clears the log.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = nil
}

func (b *Backend) record(op Op, object string, id int, detail string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, Event{Op: op, Object: object, ID: id, Detail: detail})
}

// create allocates an id and logs creation, or fails if requested.
func (b *Backend) create(name, detail string) (*object, error) {
	b.mu.Lock()
	if b.fail[name] {
		b.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrInjected, name)
	}
	b.nextID++
	id := b.nextID
	b.mu.Unlock()

	b.record(OpCreate, name, id, detail)
	return &object{backend: b, name: name, id: id}, nil
}

// NewWindow implements render.Backend.
func (b *Backend) NewWindow(cfg render.WindowConfig) (render.Window, error) {
	o, err := b.create(ObjWindow, fmt.Sprintf("%dx%d %q", cfg.Width, cfg.Height, cfg.Title))
	if err != nil {
		return nil, err
	}
	return &Window{object: o, cfg: cfg}, nil
}

// NewChart implements render.Backend.
func (b *Backend) NewChart(kind render.ChartKind) (render.Chart, error) {
	o, err := b.create(ObjChart, kind.String())
	if err != nil {
		return nil, err
	}
	return &Chart{object: o, kind: kind}, nil
}

// NewImage implements render.Backend.
func (b *Backend) NewImage(width, height int, format render.ChannelFormat, dtype render.DType) (render.Image, error) {
	o, err := b.create(render.KindImage.String(), fmt.Sprintf("%dx%d %v %v", width, height, format, dtype))
	if err != nil {
		return nil, err
	}
	return &Image{primitive: primitive{object: o, kind: render.KindImage}, w: width, h: height, format: format, dtype: dtype}, nil
}

// NewPlot implements render.Backend.
func (b *Backend) NewPlot(points int, dtype render.DType, kind render.ChartKind, ptype render.PlotType, marker render.MarkerType) (render.Plot, error) {
	o, err := b.create(render.KindPlot.String(), fmt.Sprintf("n=%d %v %v %v %v", points, dtype, kind, ptype, marker))
	if err != nil {
		return nil, err
	}
	return &Plot{primitive: primitive{object: o, kind: render.KindPlot}, n: points, dtype: dtype, chart: kind, ptype: ptype, marker: marker}, nil
}

// NewHistogram implements render.Backend.
func (b *Backend) NewHistogram(bins int, dtype render.DType) (render.Histogram, error) {
	o, err := b.create(render.KindHistogram.String(), fmt.Sprintf("bins=%d %v", bins, dtype))
	if err != nil {
		return nil, err
	}
	return &Histogram{primitive: primitive{object: o, kind: render.KindHistogram}, bins: bins, dtype: dtype}, nil
}

// NewSurface implements render.Backend.
func (b *Backend) NewSurface(xPoints, yPoints int, dtype render.DType) (render.Surface, error) {
	o, err := b.create(render.KindSurface.String(), fmt.Sprintf("%dx%d %v", xPoints, yPoints, dtype))
	if err != nil {
		return nil, err
	}
	return &Surface{primitive: primitive{object: o, kind: render.KindSurface}, nx: xPoints, ny: yPoints, dtype: dtype}, nil
}

// NewVectorField implements render.Backend.
func (b *Backend) NewVectorField(points int, dtype render.DType, kind render.ChartKind) (render.VectorField, error) {
	o, err := b.create(render.KindVectorField.String(), fmt.Sprintf("n=%d %v %v", points, dtype, kind))
	if err != nil {
		return nil, err
	}
	return &VectorField{primitive: primitive{object: o, kind: render.KindVectorField}, n: points, dtype: dtype, chart: kind}, nil
}

// NewFont implements render.Backend.
func (b *Backend) NewFont(face render.Typeface) (render.Font, error) {
	o, err := b.create(ObjFont, face.Family())
	if err != nil {
		return nil, err
	}
	return &Font{object: o, family: face.Family()}, nil
}

// object is the common part of every recorded resource.
type object struct {
	backend   *Backend
	name      string
	id        int
	destroyed bool
}

// ID returns the creation sequence number (starting at 1).
func (o *object) ID() int { return o.id }

// Destroyed reports whether Destroy has been called.
func (o *object) Destroyed() bool { return o.destroyed }

// Destroy logs destruction. A second call is logged with detail "twice".
func (o *object) Destroy() {
	detail := ""
	if o.destroyed {
		detail = "twice"
	}
	o.destroyed = true
	o.backend.record(OpDestroy, o.name, o.id, detail)
}

func (o *object) String() string { return fmt.Sprintf("%s#%d", o.name, o.id) }

// Window is a recorded render.Window.
type Window struct {
	*object
	cfg        render.WindowConfig
	rows, cols int
}

func (w *Window) Width() int    { return w.cfg.Width }
func (w *Window) Height() int   { return w.cfg.Height }
func (w *Window) Title() string { return w.cfg.Title }
func (w *Window) GridRows() int { return w.rows }
func (w *Window) GridCols() int { return w.cols }

func (w *Window) MakeCurrent() error {
	w.backend.record(OpCurrent, w.name, w.id, "")
	return nil
}

func (w *Window) SetGrid(rows, cols int) {
	w.rows, w.cols = rows, cols
	w.backend.record(OpGrid, w.name, w.id, fmt.Sprintf("%dx%d", rows, cols))
}

func (w *Window) Draw(row, col int, chart render.Chart) error {
	w.backend.record(OpDraw, w.name, w.id, fmt.Sprintf("(%d,%d) %v", row, col, chart))
	return nil
}

func (w *Window) DeviceHandle() render.DeviceHandle { return render.NullDeviceHandle{} }

// Chart is a recorded render.Chart.
type Chart struct {
	*object
	kind render.ChartKind
	list []render.Primitive
}

func (c *Chart) Kind() render.ChartKind { return c.kind }

func (c *Chart) Add(p render.Primitive) {
	c.list = append(c.list, p)
	c.backend.record(OpAdd, c.name, c.id, fmt.Sprint(p))
}

func (c *Chart) Primitives() []render.Primitive {
	out := make([]render.Primitive, len(c.list))
	copy(out, c.list)
	return out
}

type primitive struct {
	*object
	kind render.PrimitiveKind
}

func (p primitive) PrimitiveKind() render.PrimitiveKind { return p.kind }

func (p primitive) update(what string, n int) {
	p.backend.record(OpUpdate, p.name, p.id, fmt.Sprintf("%s[%d]", what, n))
}

// Image is a recorded render.Image.
type Image struct {
	primitive
	w, h   int
	format render.ChannelFormat
	dtype  render.DType
}

func (i *Image) Width() int                   { return i.w }
func (i *Image) Height() int                  { return i.h }
func (i *Image) Format() render.ChannelFormat { return i.format }
func (i *Image) DType() render.DType          { return i.dtype }

func (i *Image) SetPixels(src image.Image) error {
	i.update("pixels", src.Bounds().Dx()*src.Bounds().Dy())
	return nil
}

// Plot is a recorded render.Plot.
type Plot struct {
	primitive
	n      int
	dtype  render.DType
	chart  render.ChartKind
	ptype  render.PlotType
	marker render.MarkerType
	limits render.Limits
}

func (p *Plot) Points() int                     { return p.n }
func (p *Plot) DType() render.DType             { return p.dtype }
func (p *Plot) ChartKind() render.ChartKind     { return p.chart }
func (p *Plot) PlotType() render.PlotType       { return p.ptype }
func (p *Plot) Marker() render.MarkerType       { return p.marker }
func (p *Plot) SetAxesLimits(lim render.Limits) { p.limits = lim }
func (p *Plot) Limits() render.Limits           { return p.limits }

func (p *Plot) SetVertices(v []float64) error {
	p.update("vertices", len(v))
	return nil
}

// Histogram is a recorded render.Histogram.
type Histogram struct {
	primitive
	bins   int
	dtype  render.DType
	limits render.Limits
}

func (h *Histogram) Bins() int                       { return h.bins }
func (h *Histogram) DType() render.DType             { return h.dtype }
func (h *Histogram) SetAxesLimits(lim render.Limits) { h.limits = lim }

func (h *Histogram) SetCounts(counts []float64) error {
	h.update("counts", len(counts))
	return nil
}

// Surface is a recorded render.Surface.
type Surface struct {
	primitive
	nx, ny int
	dtype  render.DType
	limits render.Limits
}

func (s *Surface) XPoints() int                    { return s.nx }
func (s *Surface) YPoints() int                    { return s.ny }
func (s *Surface) DType() render.DType             { return s.dtype }
func (s *Surface) SetAxesLimits(lim render.Limits) { s.limits = lim }

func (s *Surface) SetVertices(v []float64) error {
	s.update("vertices", len(v))
	return nil
}

// VectorField is a recorded render.VectorField.
type VectorField struct {
	primitive
	n      int
	dtype  render.DType
	chart  render.ChartKind
	limits render.Limits
}

func (v *VectorField) Points() int                     { return v.n }
func (v *VectorField) DType() render.DType             { return v.dtype }
func (v *VectorField) ChartKind() render.ChartKind     { return v.chart }
func (v *VectorField) SetAxesLimits(lim render.Limits) { v.limits = lim }

func (v *VectorField) SetVertices(p []float64) error {
	v.update("vertices", len(p))
	return nil
}

func (v *VectorField) SetDirections(d []float64) error {
	v.update("directions", len(d))
	return nil
}

// Font is a recorded render.Font.
type Font struct {
	*object
	family string
}

func (f *Font) Family() string { return f.family }

var (
	_ render.Backend     = (*Backend)(nil)
	_ render.Window      = (*Window)(nil)
	_ render.Chart       = (*Chart)(nil)
	_ render.Image       = (*Image)(nil)
	_ render.Plot        = (*Plot)(nil)
	_ render.Histogram   = (*Histogram)(nil)
	_ render.Surface     = (*Surface)(nil)
	_ render.VectorField = (*VectorField)(nil)
	_ render.Font        = (*Font)(nil)
)
