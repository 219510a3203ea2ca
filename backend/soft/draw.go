// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/ggres/render"
)

// Rendering caps for dense primitives.
const (
	maxArrows       = 256
	maxSurfaceLines = 64
)

// Oblique projection of 3D data onto the panel plane.
const (
	obliqueX = 0.5
	obliqueY = 0.35
)

var errNoData = errors.New("soft: no data")

var palette = []drawing.Color{
	chart.ColorBlue,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorAlternateGray,
	chart.ColorBlack,
}

func colorAt(i int) drawing.Color { return palette[i%len(palette)] }

// pointStyle renders points only, with no connecting line.
func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		StrokeColor: drawing.ColorTransparent,
		DotWidth:    4,
		DotColor:    col,
	}
}

func lineStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: 2,
		StrokeColor: col,
	}
}

// project maps interleaved coordinates to panel x/y values.
func project(v []float64, dims int) (xs, ys []float64) {
	n := len(v) / dims
	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := 0; i < n; i++ {
		x, y := v[i*dims], v[i*dims+1]
		if dims == 3 {
			xs[i] = x + obliqueX*y
			ys[i] = v[i*dims+2] + obliqueY*y
			continue
		}
		xs[i], ys[i] = x, y
	}
	return xs, ys
}

// blank returns a white panel.
func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	return img
}

// layers groups a chart's primitives by how they are rendered.
type layers struct {
	images     []*Image
	histograms []*Histogram
	series     []chart.Series
	limits     *render.Limits
}

func (l *layers) count() int {
	n := 0
	if len(l.images) > 0 {
		n++
	}
	if len(l.histograms) > 0 {
		n++
	}
	if len(l.series) > 0 {
		n++
	}
	return n
}

// useLimits keeps the first usable 2D axis range.
func (l *layers) useLimits(lim render.Limits, kind render.ChartKind) {
	if l.limits != nil || kind != render.Chart2D {
		return
	}
	if lim.XMax > lim.XMin && lim.YMax > lim.YMin {
		l.limits = &lim
	}
}

func (b *Backend) collect(c render.Chart) *layers {
	l := &layers{}
	for _, p := range c.Primitives() {
		switch p := p.(type) {
		case *Image:
			l.images = append(l.images, p)
		case *Histogram:
			if len(p.counts) > 0 {
				l.histograms = append(l.histograms, p)
			}
		case *Plot:
			if len(p.vertices) == 0 {
				continue
			}
			xs, ys := project(p.vertices, p.chart.Dims())
			st := lineStyle(colorAt(len(l.series)))
			if p.ptype == render.PlotScatter {
				st = pointStyle(colorAt(len(l.series)))
			} else if p.marker != render.MarkerNone {
				st.DotWidth = 3
				st.DotColor = st.StrokeColor
			}
			l.series = append(l.series, chart.ContinuousSeries{XValues: xs, YValues: ys, Style: st})
			l.useLimits(p.limits, p.chart)
		case *Surface:
			l.series = append(l.series, surfaceSeries(p)...)
		case *VectorField:
			l.series = append(l.series, arrowSeries(p)...)
			l.useLimits(p.limits, p.chart)
		default:
			b.log.Warn("soft: foreign primitive skipped", "kind", p.PrimitiveKind())
		}
	}
	return l
}

// surfaceSeries draws one projected line per sampled row of the grid.
func surfaceSeries(s *Surface) []chart.Series {
	if len(s.vertices) == 0 {
		return nil
	}
	step := 1
	if s.ny > maxSurfaceLines {
		step = (s.ny + maxSurfaceLines - 1) / maxSurfaceLines
	}
	var out []chart.Series
	for row := 0; row < s.ny; row += step {
		xs, ys := project(s.vertices[row*s.nx*3:(row+1)*s.nx*3], 3)
		out = append(out, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 1, StrokeColor: colorAt(row / step)},
		})
	}
	return out
}

// arrowSeries draws each vector as a segment from its point.
func arrowSeries(v *VectorField) []chart.Series {
	dims := v.chart.Dims()
	if len(v.vertices) == 0 || len(v.directions) != len(v.vertices) {
		return nil
	}
	n := v.n
	if n > maxArrows {
		n = maxArrows
	}
	out := make([]chart.Series, 0, n)
	for i := 0; i < n; i++ {
		seg := make([]float64, 0, 2*dims)
		seg = append(seg, v.vertices[i*dims:(i+1)*dims]...)
		for d := 0; d < dims; d++ {
			seg = append(seg, v.vertices[i*dims+d]+v.directions[i*dims+d])
		}
		xs, ys := project(seg, dims)
		st := lineStyle(chart.ColorRed)
		st.StrokeWidth = 1
		out = append(out, chart.ContinuousSeries{XValues: xs, YValues: ys, Style: st})
	}
	return out
}

// renderChart rasterizes a chart into a w×h panel. Images, histograms and
// line series each get a horizontal band.
func (b *Backend) renderChart(c render.Chart, w, h int) image.Image {
	panel := blank(w, h)
	if c == nil || w <= 0 || h <= 0 {
		return panel
	}
	l := b.collect(c)
	bands := l.count()
	if bands == 0 {
		return panel
	}
	bh := h / bands
	y := 0
	band := func() image.Rectangle {
		r := image.Rect(0, y, w, y+bh)
		y += bh
		return r
	}

	if len(l.images) > 0 {
		r := band()
		iw := r.Dx() / len(l.images)
		for i, img := range l.images {
			dst := image.Rect(r.Min.X+i*iw, r.Min.Y, r.Min.X+(i+1)*iw, r.Max.Y)
			xdraw.ApproxBiLinear.Scale(panel, dst, img.pix, img.pix.Bounds(), xdraw.Over, nil)
		}
	}
	if len(l.histograms) > 0 {
		r := band()
		hw := r.Dx() / len(l.histograms)
		for i, hist := range l.histograms {
			dst := image.Rect(r.Min.X+i*hw, r.Min.Y, r.Min.X+(i+1)*hw, r.Max.Y)
			img, err := renderBars(hist, dst.Dx(), dst.Dy())
			b.paste(panel, dst, img, err)
		}
	}
	if len(l.series) > 0 {
		r := band()
		img, err := renderSeries(l, r.Dx(), r.Dy())
		b.paste(panel, r, img, err)
	}
	return panel
}

// paste draws a rendered sub-chart, or logs why it could not be rendered
// and leaves the area blank.
func (b *Backend) paste(dst *image.RGBA, r image.Rectangle, img image.Image, err error) {
	if err != nil {
		b.log.Warn("soft: chart render failed", "err", err, "width", r.Dx(), "height", r.Dy())
		return
	}
	xdraw.Draw(dst, r, img, img.Bounds().Min, xdraw.Src)
}

func renderBars(h *Histogram, w, ht int) (image.Image, error) {
	bars := make([]chart.Value, len(h.counts))
	for i, v := range h.counts {
		bars[i] = chart.Value{Value: v, Label: strconv.Itoa(i)}
	}
	bw := w / (2*len(bars) + 1)
	if bw < 1 {
		bw = 1
	}
	bc := chart.BarChart{
		Width:    w,
		Height:   ht,
		BarWidth: bw,
		Bars:     bars,
	}
	if h.limits.YMax > h.limits.YMin {
		bc.YAxis = chart.YAxis{Range: &chart.ContinuousRange{Min: h.limits.YMin, Max: h.limits.YMax}}
	}
	return decode(bc.Render)
}

func renderSeries(l *layers, w, h int) (image.Image, error) {
	ch := chart.Chart{
		Width:      w,
		Height:     h,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 12}},
		Series:     l.series,
	}
	if l.limits != nil {
		ch.XAxis = chart.XAxis{Range: &chart.ContinuousRange{Min: l.limits.XMin, Max: l.limits.XMax}}
		ch.YAxis = chart.YAxis{Range: &chart.ContinuousRange{Min: l.limits.YMin, Max: l.limits.YMax}}
	}
	return decode(ch.Render)
}

// decode runs a go-chart renderer into PNG bytes and decodes the result.
func decode(fn func(chart.RendererProvider, io.Writer) error) (image.Image, error) {
	var buf bytes.Buffer
	if err := fn(chart.PNG, &buf); err != nil {
		return nil, err
	}
	if buf.Len() == 0 {
		return nil, errNoData
	}
	return png.Decode(&buf)
}
