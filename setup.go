package ggres

import (
	"fmt"
	"image"

	"github.com/gogpu/ggres/plotdata"
	"github.com/gogpu/ggres/render"
)

// SetupPlot fetches the cached plot for the given columns and uploads them.
// A 2D chart takes x and y columns, a 3D chart x, y and z. Axis limits are
// the ranges of the columns.
func SetupPlot[T plotdata.Number](m *Manager, chart render.Chart, ptype render.PlotType,
	marker render.MarkerType, cols ...[]T) (render.Plot, error) {
	if chart == nil {
		return nil, ErrNilChart
	}
	if err := checkColumns(chart, len(cols)); err != nil {
		return nil, err
	}
	lim, err := plotdata.Limits(cols...)
	if err != nil {
		return nil, fmt.Errorf("ggres: plot limits: %w", err)
	}
	v, err := plotdata.Interleave(cols...)
	if err != nil {
		return nil, fmt.Errorf("ggres: plot vertices: %w", err)
	}

	p, err := m.Plot(chart, len(cols[0]), plotdata.DTypeOf[T](), ptype, marker)
	if err != nil {
		return nil, err
	}
	p.SetAxesLimits(lim)
	if err := p.SetVertices(v); err != nil {
		return nil, fmt.Errorf("ggres: upload plot: %w", err)
	}
	return p, nil
}

// SetupHistogram fetches the cached histogram for counts and uploads them.
// The bins span [minVal, maxVal] on the x axis.
func SetupHistogram[T plotdata.Number](m *Manager, chart render.Chart, counts []T,
	minVal, maxVal float64) (render.Histogram, error) {
	r, err := plotdata.MinMax(counts)
	if err != nil {
		return nil, fmt.Errorf("ggres: histogram counts: %w", err)
	}
	h, err := m.Histogram(chart, len(counts), plotdata.DTypeOf[T]())
	if err != nil {
		return nil, err
	}
	h.SetAxesLimits(render.Limits{XMin: minVal, XMax: maxVal, YMin: 0, YMax: r.Max})
	if err := h.SetCounts(plotdata.Floats(counts)); err != nil {
		return nil, fmt.Errorf("ggres: upload histogram: %w", err)
	}
	return h, nil
}

// SetupSurface fetches the cached surface for a len(xs)×len(ys) grid and
// uploads it. zs holds one height per sample, row-major with len(xs)
// samples per row.
func SetupSurface[T plotdata.Number](m *Manager, chart render.Chart, xs, ys, zs []T) (render.Surface, error) {
	nx, ny := len(xs), len(ys)
	if len(zs) != nx*ny {
		return nil, fmt.Errorf("ggres: surface: %w: %d heights for %dx%d grid",
			plotdata.ErrLengthMismatch, len(zs), nx, ny)
	}
	lim, err := plotdata.Limits(xs, ys, zs)
	if err != nil {
		return nil, fmt.Errorf("ggres: surface limits: %w", err)
	}

	s, err := m.Surface(chart, nx, ny, plotdata.DTypeOf[T]())
	if err != nil {
		return nil, err
	}
	v := make([]float64, 0, nx*ny*3)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			v = append(v, float64(xs[i]), float64(ys[j]), float64(zs[j*nx+i]))
		}
	}
	s.SetAxesLimits(lim)
	if err := s.SetVertices(v); err != nil {
		return nil, fmt.Errorf("ggres: upload surface: %w", err)
	}
	return s, nil
}

// SetupVectorField fetches the cached vector field and uploads points and
// directions. Both are given as one column per axis.
func SetupVectorField[T plotdata.Number](m *Manager, chart render.Chart, points, directions [][]T) (render.VectorField, error) {
	if chart == nil {
		return nil, ErrNilChart
	}
	if err := checkColumns(chart, len(points)); err != nil {
		return nil, err
	}
	if err := checkColumns(chart, len(directions)); err != nil {
		return nil, err
	}
	lim, err := plotdata.Limits(points...)
	if err != nil {
		return nil, fmt.Errorf("ggres: vector field limits: %w", err)
	}
	pv, err := plotdata.Interleave(points...)
	if err != nil {
		return nil, fmt.Errorf("ggres: vector field points: %w", err)
	}
	dv, err := plotdata.Interleave(directions...)
	if err != nil {
		return nil, fmt.Errorf("ggres: vector field directions: %w", err)
	}

	vf, err := m.VectorField(chart, len(points[0]), plotdata.DTypeOf[T]())
	if err != nil {
		return nil, err
	}
	vf.SetAxesLimits(lim)
	if err := vf.SetVertices(pv); err != nil {
		return nil, fmt.Errorf("ggres: upload vector field: %w", err)
	}
	if err := vf.SetDirections(dv); err != nil {
		return nil, fmt.Errorf("ggres: upload vector field: %w", err)
	}
	return vf, nil
}

// SetupImage fetches the cached image matching src's size and uploads src.
// A nil chart selects a floating image.
func SetupImage(m *Manager, chart render.Chart, src image.Image, format render.ChannelFormat) (render.Image, error) {
	if src == nil {
		return nil, fmt.Errorf("ggres: nil source image")
	}
	b := src.Bounds()
	var (
		img render.Image
		err error
	)
	if chart == nil {
		img, err = m.FloatingImage(b.Dx(), b.Dy(), format, render.U8)
	} else {
		img, err = m.Image(chart, b.Dx(), b.Dy(), format, render.U8)
	}
	if err != nil {
		return nil, err
	}
	if err := img.SetPixels(src); err != nil {
		return nil, fmt.Errorf("ggres: upload image: %w", err)
	}
	return img, nil
}

// checkColumns reports whether n columns match the dimensions of chart.
func checkColumns(chart render.Chart, n int) error {
	if want := chart.Kind().Dims(); n != want {
		return fmt.Errorf("ggres: %s chart needs %d columns, got %d: %w",
			chart.Kind(), want, n, plotdata.ErrLengthMismatch)
	}
	return nil
}
