// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggres/render"
)

func checkLen(what string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d values, want %d", ErrLength, what, got, want)
	}
	return nil
}

// NewImage implements render.Backend. Gray images are stored with one
// channel, everything else as RGBA, matching the texture format the image
// would be uploaded as.
func (b *Backend) NewImage(width, height int, format render.ChannelFormat, dtype render.DType) (render.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image %dx%d", ErrInvalidSize, width, height)
	}
	r := image.Rect(0, 0, width, height)
	var pix xdraw.Image
	switch format.TextureFormat() {
	case gputypes.TextureFormatR8Unorm:
		pix = image.NewGray(r)
	case gputypes.TextureFormatUndefined:
		return nil, fmt.Errorf("soft: unsupported channel format %v", format)
	default:
		pix = image.NewRGBA(r)
	}
	return &Image{format: format, dtype: dtype, pix: pix}, nil
}

// Image stores pixels in the layout of its texture format.
type Image struct {
	format render.ChannelFormat
	dtype  render.DType
	pix    xdraw.Image
}

func (i *Image) PrimitiveKind() render.PrimitiveKind { return render.KindImage }
func (i *Image) Width() int                          { return i.pix.Bounds().Dx() }
func (i *Image) Height() int                         { return i.pix.Bounds().Dy() }
func (i *Image) Format() render.ChannelFormat        { return i.format }
func (i *Image) DType() render.DType                 { return i.dtype }
func (i *Image) Destroy()                            { i.pix = image.NewRGBA(image.Rectangle{}) }

// Pixels returns the stored image.
func (i *Image) Pixels() image.Image { return i.pix }

// SetPixels copies src, scaling it when the sizes differ.
func (i *Image) SetPixels(src image.Image) error {
	if src == nil {
		return fmt.Errorf("soft: nil source image")
	}
	dst := i.pix.Bounds()
	if src.Bounds().Size() == dst.Size() {
		xdraw.Draw(i.pix, dst, src, src.Bounds().Min, xdraw.Src)
		return nil
	}
	xdraw.ApproxBiLinear.Scale(i.pix, dst, src, src.Bounds(), xdraw.Src, nil)
	return nil
}

// NewPlot implements render.Backend.
func (b *Backend) NewPlot(points int, dtype render.DType, kind render.ChartKind, ptype render.PlotType, marker render.MarkerType) (render.Plot, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: plot with %d points", ErrInvalidSize, points)
	}
	return &Plot{n: points, dtype: dtype, chart: kind, ptype: ptype, marker: marker}, nil
}

// Plot holds interleaved vertices.
type Plot struct {
	n        int
	dtype    render.DType
	chart    render.ChartKind
	ptype    render.PlotType
	marker   render.MarkerType
	vertices []float64
	limits   render.Limits
}

func (p *Plot) PrimitiveKind() render.PrimitiveKind { return render.KindPlot }
func (p *Plot) Points() int                         { return p.n }
func (p *Plot) DType() render.DType                 { return p.dtype }
func (p *Plot) ChartKind() render.ChartKind         { return p.chart }
func (p *Plot) PlotType() render.PlotType           { return p.ptype }
func (p *Plot) Marker() render.MarkerType           { return p.marker }
func (p *Plot) SetAxesLimits(lim render.Limits)     { p.limits = lim }
func (p *Plot) Destroy()                            { p.vertices = nil }

func (p *Plot) SetVertices(v []float64) error {
	if err := checkLen("plot vertices", len(v), p.n*p.chart.Dims()); err != nil {
		return err
	}
	p.vertices = append(p.vertices[:0], v...)
	return nil
}

// NewHistogram implements render.Backend.
func (b *Backend) NewHistogram(bins int, dtype render.DType) (render.Histogram, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("%w: histogram with %d bins", ErrInvalidSize, bins)
	}
	return &Histogram{bins: bins, dtype: dtype}, nil
}

// Histogram holds one value per bin.
type Histogram struct {
	bins   int
	dtype  render.DType
	counts []float64
	limits render.Limits
}

func (h *Histogram) PrimitiveKind() render.PrimitiveKind { return render.KindHistogram }
func (h *Histogram) Bins() int                           { return h.bins }
func (h *Histogram) DType() render.DType                 { return h.dtype }
func (h *Histogram) SetAxesLimits(lim render.Limits)     { h.limits = lim }
func (h *Histogram) Destroy()                            { h.counts = nil }

func (h *Histogram) SetCounts(counts []float64) error {
	if err := checkLen("histogram counts", len(counts), h.bins); err != nil {
		return err
	}
	h.counts = append(h.counts[:0], counts...)
	return nil
}

// NewSurface implements render.Backend.
func (b *Backend) NewSurface(xPoints, yPoints int, dtype render.DType) (render.Surface, error) {
	if xPoints <= 0 || yPoints <= 0 {
		return nil, fmt.Errorf("%w: surface %dx%d", ErrInvalidSize, xPoints, yPoints)
	}
	return &Surface{nx: xPoints, ny: yPoints, dtype: dtype}, nil
}

// Surface holds x,y,z triples in row-major sample order.
type Surface struct {
	nx, ny   int
	dtype    render.DType
	vertices []float64
	limits   render.Limits
}

func (s *Surface) PrimitiveKind() render.PrimitiveKind { return render.KindSurface }
func (s *Surface) XPoints() int                        { return s.nx }
func (s *Surface) YPoints() int                        { return s.ny }
func (s *Surface) DType() render.DType                 { return s.dtype }
func (s *Surface) SetAxesLimits(lim render.Limits)     { s.limits = lim }
func (s *Surface) Destroy()                            { s.vertices = nil }

func (s *Surface) SetVertices(v []float64) error {
	if err := checkLen("surface vertices", len(v), s.nx*s.ny*3); err != nil {
		return err
	}
	s.vertices = append(s.vertices[:0], v...)
	return nil
}

// NewVectorField implements render.Backend.
func (b *Backend) NewVectorField(points int, dtype render.DType, kind render.ChartKind) (render.VectorField, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: vector field with %d points", ErrInvalidSize, points)
	}
	return &VectorField{n: points, dtype: dtype, chart: kind}, nil
}

// VectorField holds interleaved points and directions.
type VectorField struct {
	n          int
	dtype      render.DType
	chart      render.ChartKind
	vertices   []float64
	directions []float64
	limits     render.Limits
}

func (v *VectorField) PrimitiveKind() render.PrimitiveKind { return render.KindVectorField }
func (v *VectorField) Points() int                         { return v.n }
func (v *VectorField) DType() render.DType                 { return v.dtype }
func (v *VectorField) ChartKind() render.ChartKind         { return v.chart }
func (v *VectorField) SetAxesLimits(lim render.Limits)     { v.limits = lim }
func (v *VectorField) Destroy()                            { v.vertices, v.directions = nil, nil }

func (v *VectorField) SetVertices(p []float64) error {
	if err := checkLen("vector field points", len(p), v.n*v.chart.Dims()); err != nil {
		return err
	}
	v.vertices = append(v.vertices[:0], p...)
	return nil
}

func (v *VectorField) SetDirections(d []float64) error {
	if err := checkLen("vector field directions", len(d), v.n*v.chart.Dims()); err != nil {
		return err
	}
	v.directions = append(v.directions[:0], d...)
	return nil
}

var (
	_ render.Image       = (*Image)(nil)
	_ render.Plot        = (*Plot)(nil)
	_ render.Histogram   = (*Histogram)(nil)
	_ render.Surface     = (*Surface)(nil)
	_ render.VectorField = (*VectorField)(nil)
)
