package ggres

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/ggres/backend/record"
	"github.com/gogpu/ggres/plotdata"
	"github.com/gogpu/ggres/render"
)

func lastUpdate(t *testing.T, b *record.Backend) string {
	t.Helper()
	ev := b.Filter(record.OpUpdate)
	if len(ev) == 0 {
		t.Fatal("no update events")
	}
	return ev[len(ev)-1].Detail
}

func TestSetupPlot(t *testing.T) {
	m, b := newTestManager(t)
	c := chartAt(t, m, borrowedWindow(t, b), render.Chart2D)

	xs := []int32{0, 1, 2, 3}
	ys := []int32{5, -1, 7, 2}
	p, err := SetupPlot(m, c, render.PlotLine, render.MarkerNone, xs, ys)
	if err != nil {
		t.Fatal(err)
	}
	if p.Points() != 4 || p.DType() != render.S32 {
		t.Errorf("plot = %d points %v, want 4 points s32", p.Points(), p.DType())
	}
	want := render.Limits{XMin: 0, XMax: 3, YMin: -1, YMax: 7}
	if got := p.(*record.Plot).Limits(); got != want {
		t.Errorf("Limits() = %+v, want %+v", got, want)
	}
	if got := lastUpdate(t, b); got != "vertices[8]" {
		t.Errorf("upload = %q, want vertices[8]", got)
	}

	// Same shape reuses the cached plot.
	p2, _ := SetupPlot(m, c, render.PlotLine, render.MarkerNone, ys, xs)
	if p2 != p {
		t.Error("SetupPlot() with the same shape created a new plot")
	}
}

func TestSetupPlotColumns(t *testing.T) {
	m, b := newTestManager(t)
	c := chartAt(t, m, borrowedWindow(t, b), render.Chart3D)

	_, err := SetupPlot(m, c, render.PlotLine, render.MarkerNone, []float32{1}, []float32{2})
	if !errors.Is(err, plotdata.ErrLengthMismatch) {
		t.Errorf("2 columns on a 3D chart error = %v, want ErrLengthMismatch", err)
	}
	p, err := SetupPlot(m, c, render.PlotScatter, render.MarkerStar,
		[]float32{1, 2}, []float32{3, 4}, []float32{5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if p.ChartKind() != render.Chart3D {
		t.Errorf("ChartKind() = %v, want Chart3D", p.ChartKind())
	}
	if got := lastUpdate(t, b); got != "vertices[6]" {
		t.Errorf("upload = %q, want vertices[6]", got)
	}
}

func TestSetupHistogram(t *testing.T) {
	m, b := newTestManager(t)
	c := chartAt(t, m, borrowedWindow(t, b), render.Chart2D)

	h, err := SetupHistogram(m, c, []uint32{3, 9, 1}, -1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if h.Bins() != 3 || h.DType() != render.U32 {
		t.Errorf("histogram = %d bins %v, want 3 bins u32", h.Bins(), h.DType())
	}
	if got := lastUpdate(t, b); got != "counts[3]" {
		t.Errorf("upload = %q, want counts[3]", got)
	}
	if _, err := SetupHistogram(m, c, []uint32{}, 0, 1); !errors.Is(err, plotdata.ErrEmpty) {
		t.Errorf("SetupHistogram(empty) error = %v, want ErrEmpty", err)
	}
}

func TestSetupSurface(t *testing.T) {
	m, b := newTestManager(t)
	c := chartAt(t, m, borrowedWindow(t, b), render.Chart3D)

	xs := []float64{0, 1, 2}
	ys := []float64{0, 1}
	zs := []float64{0, 1, 2, 3, 4, 5}
	s, err := SetupSurface(m, c, xs, ys, zs)
	if err != nil {
		t.Fatal(err)
	}
	if s.XPoints() != 3 || s.YPoints() != 2 {
		t.Errorf("surface = %dx%d, want 3x2", s.XPoints(), s.YPoints())
	}
	if got := lastUpdate(t, b); got != "vertices[18]" {
		t.Errorf("upload = %q, want vertices[18]", got)
	}

	if _, err := SetupSurface(m, c, xs, ys, zs[:5]); !errors.Is(err, plotdata.ErrLengthMismatch) {
		t.Errorf("short heights error = %v, want ErrLengthMismatch", err)
	}
}

func TestSetupVectorField(t *testing.T) {
	m, b := newTestManager(t)
	c := chartAt(t, m, borrowedWindow(t, b), render.Chart2D)

	points := [][]float32{{0, 1}, {0, 1}}
	dirs := [][]float32{{1, 0}, {0, 1}}
	v, err := SetupVectorField(m, c, points, dirs)
	if err != nil {
		t.Fatal(err)
	}
	if v.Points() != 2 {
		t.Errorf("Points() = %d, want 2", v.Points())
	}
	if got := lastUpdate(t, b); got != "directions[4]" {
		t.Errorf("upload = %q, want directions[4]", got)
	}

	if _, err := SetupVectorField(m, c, points, dirs[:1]); !errors.Is(err, plotdata.ErrLengthMismatch) {
		t.Errorf("missing direction column error = %v, want ErrLengthMismatch", err)
	}
}

func TestSetupImage(t *testing.T) {
	m, b := newTestManager(t)
	c := chartAt(t, m, borrowedWindow(t, b), render.Chart2D)
	src := image.NewRGBA(image.Rect(0, 0, 6, 4))

	img, err := SetupImage(m, c, src, render.RGBA)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 6 || img.Height() != 4 {
		t.Errorf("image = %dx%d, want 6x4", img.Width(), img.Height())
	}

	floating, err := SetupImage(m, nil, src, render.RGBA)
	if err != nil {
		t.Fatal(err)
	}
	if floating == img {
		t.Error("floating image shares the chart image")
	}
	st := m.Stats()
	if st.Images.Len != 1 || st.FloatingImages.Len != 1 {
		t.Errorf("stats = %+v, want one chart image and one floating image", st)
	}
}
