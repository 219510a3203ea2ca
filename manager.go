package ggres

import (
	"fmt"
	"sync"

	"github.com/gogpu/ggres/backend"
	"github.com/gogpu/ggres/grid"
	"github.com/gogpu/ggres/internal/cache"
	"github.com/gogpu/ggres/key"
	"github.com/gogpu/ggres/render"
	"github.com/gogpu/ggres/session"
	"github.com/gogpu/ggres/typeface"
)

// chartKey identifies a primitive attached to a chart.
type chartKey struct {
	key   key.Key
	chart render.Chart
}

// Manager owns every rendering object it creates: charts in window grids,
// primitives attached to charts, floating images, the session font and the
// main window. Repeated requests with identical parameters return the same
// object. Close destroys everything in dependency order.
//
// Manager is safe for concurrent use, but the rendering contexts behind it
// are thread-affine; drive a manager from one goroutine when the backend
// requires it.
type Manager struct {
	mu      sync.Mutex
	backend render.Backend
	config  Config
	face    render.Typeface

	grid         *grid.Registry
	floating     *cache.Cache[key.Key, render.Image]
	images       *cache.Cache[chartKey, render.Image]
	plots        *cache.Cache[chartKey, render.Plot]
	histograms   *cache.Cache[chartKey, render.Histogram]
	surfaces     *cache.Cache[chartKey, render.Surface]
	vectorFields *cache.Cache[chartKey, render.VectorField]

	font   *session.Lazy[render.Font]
	window *session.Lazy[render.Window]
}

// New creates a manager. Without WithBackend it uses backend.Default().
func New(opts ...Option) *Manager {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.backend == nil {
		o.backend = backend.Default()
	}

	m := &Manager{
		backend:      o.backend,
		config:       o.config,
		face:         o.face,
		grid:         grid.New(),
		floating:     cache.New[key.Key, render.Image](),
		images:       cache.New[chartKey, render.Image](),
		plots:        cache.New[chartKey, render.Plot](),
		histograms:   cache.New[chartKey, render.Histogram](),
		surfaces:     cache.New[chartKey, render.Surface](),
		vectorFields: cache.New[chartKey, render.VectorField](),
	}
	m.font = session.NewLazy(m.createFont)
	m.window = session.NewLazy(m.createMainWindow)

	if m.backend != nil {
		propagateLogger(m.backend, Logger())
	}
	return m
}

// Backend returns the rendering backend, or nil if none is available.
func (m *Manager) Backend() render.Backend {
	return m.backend
}

// Config returns the configuration the manager was created with.
func (m *Manager) Config() Config {
	return m.config
}

// ConfigureGrid sets the chart layout of w to rows×cols. Charts previously
// in w's grid are destroyed together with the primitives attached to them.
// A zero rows or cols removes the grid.
func (m *Manager) ConfigureGrid(w render.Window, rows, cols int) error {
	if w == nil {
		return ErrNilWindow
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.configureGrid(w, rows, cols)
}

func (m *Manager) configureGrid(w render.Window, rows, cols int) error {
	var released []render.Chart
	if err := m.grid.Configure(w, rows, cols, func(c render.Chart) {
		released = append(released, c)
	}); err != nil {
		return err
	}
	if len(released) > 0 {
		m.releaseCharts(released)
	}
	Logger().Debug("chart grid configured", "window", w.Title(), "rows", rows, "cols", cols,
		"released", len(released))
	return nil
}

// releaseCharts destroys the primitives attached to charts, then the charts.
func (m *Manager) releaseCharts(charts []render.Chart) {
	owned := make(map[render.Chart]bool, len(charts))
	for _, c := range charts {
		owned[c] = true
	}
	attached := func(k chartKey) bool { return owned[k.chart] }

	n := deleteAttached(m.images, attached)
	n += deleteAttached(m.plots, attached)
	n += deleteAttached(m.histograms, attached)
	n += deleteAttached(m.surfaces, attached)
	n += deleteAttached(m.vectorFields, attached)

	for _, c := range charts {
		c.Destroy()
	}
	Logger().Debug("charts released", "charts", len(charts), "primitives", n)
}

func deleteAttached[V render.Primitive](c *cache.Cache[chartKey, V], attached func(chartKey) bool) int {
	return c.DeleteFunc(
		func(k chartKey, _ V) bool { return attached(k) },
		func(_ chartKey, v V) { v.Destroy() },
	)
}

// Chart returns the chart at grid cell (r, c) of w, creating a chart of the
// given kind on first use. An existing chart is returned as is, whatever
// its kind.
func (m *Manager) Chart(w render.Window, r, c int, kind render.ChartKind) (render.Chart, error) {
	if w == nil {
		return nil, ErrNilWindow
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.backend == nil {
		return nil, ErrNoBackend
	}
	return m.grid.Chart(w, r, c, kind, func(kind render.ChartKind) (render.Chart, error) {
		if !kind.Valid() {
			return nil, fmt.Errorf("ggres: invalid chart kind %d", kind)
		}
		ch, err := m.backend.NewChart(kind)
		if err != nil {
			return nil, fmt.Errorf("ggres: create chart: %w", err)
		}
		Logger().Debug("chart created", "kind", kind, "row", r, "col", c)
		return ch, nil
	})
}

// attach returns the primitive cached for (k, chart), creating it with
// create and appending it to the chart's draw list on a miss. A kind
// mismatch or a failed create leaves the cache unchanged.
func attach[V render.Primitive](m *Manager, c *cache.Cache[chartKey, V], chart render.Chart,
	kind render.PrimitiveKind, k key.Key, create func() (V, error)) (V, error) {
	var zero V
	if m.backend == nil {
		return zero, ErrNoBackend
	}
	v, created, err := c.GetOrCreate(chartKey{key: k, chart: chart}, func() (V, error) {
		if err := checkKind(chart.Kind(), kind); err != nil {
			return zero, err
		}
		v, err := create()
		if err != nil {
			return zero, fmt.Errorf("ggres: create %s: %w", kind, err)
		}
		return v, nil
	})
	if err != nil {
		return zero, err
	}
	if created {
		chart.Add(v)
		Logger().Debug("primitive created", "kind", kind, "key", uint64(k))
	}
	return v, nil
}

// Image returns the image of the given shape attached to chart, creating it
// on first use. chart must be a 2D chart.
func (m *Manager) Image(chart render.Chart, width, height int, format render.ChannelFormat,
	dtype render.DType) (render.Image, error) {
	if chart == nil {
		return nil, ErrNilChart
	}
	k, err := key.Image{Width: width, Height: height, Format: format, DType: dtype}.Encode()
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return attach(m, m.images, chart, render.KindImage, k, func() (render.Image, error) {
		return m.backend.NewImage(width, height, format, dtype)
	})
}

// FloatingImage returns an image not attached to any chart, creating it on
// first use. Floating images are cached apart from chart images.
func (m *Manager) FloatingImage(width, height int, format render.ChannelFormat,
	dtype render.DType) (render.Image, error) {
	k, err := key.Image{Width: width, Height: height, Format: format, DType: dtype}.Encode()
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.backend == nil {
		return nil, ErrNoBackend
	}
	img, created, err := m.floating.GetOrCreate(k, func() (render.Image, error) {
		img, err := m.backend.NewImage(width, height, format, dtype)
		if err != nil {
			return nil, fmt.Errorf("ggres: create %s: %w", render.KindImage, err)
		}
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	if created {
		Logger().Debug("floating image created", "width", width, "height", height, "format", format)
	}
	return img, nil
}

// Plot returns the plot with n vertices attached to chart, creating it on
// first use. The plot is 2D or 3D according to the chart's kind.
func (m *Manager) Plot(chart render.Chart, n int, dtype render.DType, ptype render.PlotType,
	marker render.MarkerType) (render.Plot, error) {
	if chart == nil {
		return nil, ErrNilChart
	}
	k, err := key.Plot{Points: n, DType: dtype, Type: ptype, Marker: marker}.Encode()
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return attach(m, m.plots, chart, render.KindPlot, k, func() (render.Plot, error) {
		return m.backend.NewPlot(n, dtype, chart.Kind(), ptype, marker)
	})
}

// Histogram returns the histogram with nBins bins attached to chart,
// creating it on first use. chart must be a 2D chart.
func (m *Manager) Histogram(chart render.Chart, nBins int, dtype render.DType) (render.Histogram, error) {
	if chart == nil {
		return nil, ErrNilChart
	}
	k, err := key.Histogram{Bins: nBins, DType: dtype}.Encode()
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return attach(m, m.histograms, chart, render.KindHistogram, k, func() (render.Histogram, error) {
		return m.backend.NewHistogram(nBins, dtype)
	})
}

// Surface returns the nX×nY surface attached to chart, creating it on
// first use. chart must be a 3D chart.
func (m *Manager) Surface(chart render.Chart, nX, nY int, dtype render.DType) (render.Surface, error) {
	if chart == nil {
		return nil, ErrNilChart
	}
	k, err := key.Surface{XPoints: nX, YPoints: nY, DType: dtype}.Encode()
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return attach(m, m.surfaces, chart, render.KindSurface, k, func() (render.Surface, error) {
		return m.backend.NewSurface(nX, nY, dtype)
	})
}

// VectorField returns the vector field with n points attached to chart,
// creating it on first use. The field is 2D or 3D according to the chart's
// kind.
func (m *Manager) VectorField(chart render.Chart, n int, dtype render.DType) (render.VectorField, error) {
	if chart == nil {
		return nil, ErrNilChart
	}
	k, err := key.VectorField{Points: n, DType: dtype}.Encode()
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return attach(m, m.vectorFields, chart, render.KindVectorField, k, func() (render.VectorField, error) {
		return m.backend.NewVectorField(n, dtype, chart.Kind())
	})
}

// PeekFont returns the session font if it has been created.
func (m *Manager) PeekFont() (render.Font, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.font.Peek()
}

// Font returns the session font, creating it on first use.
func (m *Manager) Font() (render.Font, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.font.GetOrCreate()
}

func (m *Manager) createFont() (render.Font, error) {
	if m.backend == nil {
		return nil, ErrNoBackend
	}
	tf, err := m.resolveTypeface()
	if err != nil {
		return nil, err
	}
	f, err := m.backend.NewFont(tf)
	if err != nil {
		return nil, fmt.Errorf("ggres: create font: %w", err)
	}
	Logger().Info("session font created", "family", tf.Family())
	return f, nil
}

// resolveTypeface picks the WithTypeface face, then Config.FontPath, then
// the embedded Go font.
func (m *Manager) resolveTypeface() (render.Typeface, error) {
	if m.face != nil {
		return m.face, nil
	}
	if m.config.FontPath != "" {
		tf, err := typeface.Load(m.config.FontPath)
		if err == nil {
			return tf, nil
		}
		Logger().Warn("font unavailable, using default", "path", m.config.FontPath, "err", err)
	}
	tf, err := typeface.Default()
	if err != nil {
		return nil, fmt.Errorf("ggres: default typeface: %w", err)
	}
	return tf, nil
}

// PeekMainWindow returns the main window if it has been created.
func (m *Manager) PeekMainWindow() (render.Window, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.window.Peek()
}

// MainWindow returns the main window, creating it on first use. A new main
// window is made current and given a 1×1 chart grid. When graphics are
// disabled, by Config or by GGRES_DISABLE_GRAPHICS at the time of the call,
// no window is created and ErrGraphicsDisabled is returned.
func (m *Manager) MainWindow() (render.Window, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.window.GetOrCreate()
}

func (m *Manager) createMainWindow() (render.Window, error) {
	if m.config.DisableGraphics || graphicsDisabledByEnv() {
		return nil, ErrGraphicsDisabled
	}
	if m.backend == nil {
		return nil, ErrNoBackend
	}
	w, err := m.backend.NewWindow(render.WindowConfig{
		Width:  m.config.WindowWidth,
		Height: m.config.WindowHeight,
		Title:  m.config.WindowTitle,
	})
	if err != nil {
		return nil, fmt.Errorf("ggres: create main window: %w", err)
	}
	if err := w.MakeCurrent(); err != nil {
		w.Destroy()
		return nil, fmt.Errorf("ggres: make main window current: %w", err)
	}
	if err := m.configureGrid(w, 1, 1); err != nil {
		w.Destroy()
		return nil, err
	}
	Logger().Info("main window created", "backend", m.backend.Name(),
		"width", w.Width(), "height", w.Height(), "title", w.Title())
	return w, nil
}

// Draw makes w current and renders every chart in its grid.
func (m *Manager) Draw(w render.Window) error {
	if w == nil {
		return ErrNilWindow
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, _, ok := m.grid.Shape(w); !ok {
		return grid.ErrNoGrid
	}
	if err := w.MakeCurrent(); err != nil {
		return fmt.Errorf("ggres: make window current: %w", err)
	}
	for _, cell := range m.grid.Charts(w) {
		if err := w.Draw(cell.Row, cell.Col, cell.Chart); err != nil {
			return fmt.Errorf("ggres: draw cell (%d, %d): %w", cell.Row, cell.Col, err)
		}
	}
	return nil
}

// CacheStats describes one primitive cache.
type CacheStats = cache.Stats

// Stats is a snapshot of the manager's caches.
type Stats struct {
	FloatingImages CacheStats
	Images         CacheStats
	Plots          CacheStats
	Histograms     CacheStats
	Surfaces       CacheStats
	VectorFields   CacheStats

	// Windows is the number of windows with a chart grid.
	Windows int

	// Font and MainWindow report whether the session resources exist.
	Font       bool
	MainWindow bool
}

// Primitives returns the number of cached primitives of all kinds.
func (s Stats) Primitives() int {
	return s.FloatingImages.Len + s.Images.Len + s.Plots.Len +
		s.Histograms.Len + s.Surfaces.Len + s.VectorFields.Len
}

// Stats returns a snapshot of cache sizes and hit counters.
func (m *Manager) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, font := m.font.Peek()
	_, win := m.window.Peek()
	return Stats{
		FloatingImages: m.floating.Stats(),
		Images:         m.images.Stats(),
		Plots:          m.plots.Stats(),
		Histograms:     m.histograms.Stats(),
		Surfaces:       m.surfaces.Stats(),
		VectorFields:   m.vectorFields.Stats(),
		Windows:        m.grid.Len(),
		Font:           font,
		MainWindow:     win,
	}
}

// Close destroys every resource the manager owns, in order: primitives,
// charts, the session font, the main window. Windows passed in by the
// caller are never destroyed. The manager can be used again afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.floating.Len() + m.images.Len() + m.plots.Len() +
		m.histograms.Len() + m.surfaces.Len() + m.vectorFields.Len()
	m.floating.Drain(func(_ key.Key, v render.Image) { v.Destroy() })
	drain(m.images)
	drain(m.plots)
	drain(m.histograms)
	drain(m.surfaces)
	drain(m.vectorFields)

	windows := m.grid.Windows()
	for _, w := range windows {
		rows, cols, _ := m.grid.Shape(w)
		Logger().Debug("releasing chart grid", "window", w.Title(), "rows", rows, "cols", cols,
			"charts", len(m.grid.Charts(w)))
	}
	m.grid.ReleaseAll(func(c render.Chart) { c.Destroy() })

	m.font.Release(func(f render.Font) { f.Destroy() })
	m.window.Release(func(w render.Window) { w.Destroy() })

	Logger().Info("resources released", "primitives", n, "windows", len(windows))
}

func drain[V render.Primitive](c *cache.Cache[chartKey, V]) {
	c.Drain(func(_ chartKey, v V) { v.Destroy() })
}
