// Package grid maps windows to their tables of chart slots.
//
// A window must be configured with Configure before any chart can be
// requested for it. Reconfiguring a window is destructive: every chart it
// held is handed back for release and the slots start out empty again.
//
// Registry is not safe for concurrent use.
package grid

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggres/render"
)

// Sentinel errors for the grid package.
var (
	// ErrNoGrid is returned when a chart is requested for a window that was
	// never configured (or was configured to zero size).
	ErrNoGrid = errors.New("grid: window has no chart grid")

	// ErrOutOfBounds is returned when a cell lies outside the configured grid.
	ErrOutOfBounds = errors.New("grid: grid points are out of bounds")

	// ErrInvalidGrid is returned for negative grid sizes and for grids with
	// more than MaxCells cells.
	ErrInvalidGrid = errors.New("grid: invalid grid size")
)

// MaxCells is the largest number of chart slots a window grid may hold.
const MaxCells = 1 << 20

// BoundsError reports a cell outside a rows×cols grid.
type BoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("grid: cell (%d, %d) out of bounds for %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

// Unwrap returns ErrOutOfBounds.
func (e *BoundsError) Unwrap() error { return ErrOutOfBounds }

// table holds the chart slots of one window in column-major order.
type table struct {
	rows, cols int
	slots      []render.Chart
}

func (t *table) index(r, c int) int { return c*t.rows + r }

// Registry tracks the chart grid of every configured window.
type Registry struct {
	tables map[render.Window]*table
	order  []render.Window
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{tables: make(map[render.Window]*table)}
}

// Configure replaces the grid of w with an empty rows×cols table.
//
// Every chart currently stored for w is passed to release first. A zero
// rows or cols removes the window from the registry. The window is told its
// new layout through SetGrid.
func (g *Registry) Configure(w render.Window, rows, cols int, release func(render.Chart)) error {
	if rows < 0 || cols < 0 || (cols != 0 && rows > MaxCells/cols) {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, rows, cols)
	}

	if t, ok := g.tables[w]; ok {
		releaseSlots(t, release)
	}

	if rows == 0 || cols == 0 {
		g.remove(w)
		w.SetGrid(0, 0)
		return nil
	}

	if _, ok := g.tables[w]; !ok {
		g.order = append(g.order, w)
	}
	g.tables[w] = &table{
		rows:  rows,
		cols:  cols,
		slots: make([]render.Chart, rows*cols),
	}
	w.SetGrid(rows, cols)
	return nil
}

// Chart returns the chart stored at (r, c) of w's grid, creating it with
// create on first use. The kind of an existing chart is not re-checked.
func (g *Registry) Chart(w render.Window, r, c int, kind render.ChartKind,
	create func(render.ChartKind) (render.Chart, error)) (render.Chart, error) {
	t, ok := g.tables[w]
	if !ok {
		return nil, ErrNoGrid
	}
	if r < 0 || c < 0 || r >= t.rows || c >= t.cols {
		return nil, &BoundsError{Row: r, Col: c, Rows: t.rows, Cols: t.cols}
	}

	i := t.index(r, c)
	if ch := t.slots[i]; ch != nil {
		return ch, nil
	}

	ch, err := create(kind)
	if err != nil {
		return nil, err
	}
	t.slots[i] = ch
	return ch, nil
}

// Shape returns the configured grid size of w.
func (g *Registry) Shape(w render.Window) (rows, cols int, ok bool) {
	t, ok := g.tables[w]
	if !ok {
		return 0, 0, false
	}
	return t.rows, t.cols, true
}

// Windows returns the configured windows in the order they were first
// configured.
func (g *Registry) Windows() []render.Window {
	out := make([]render.Window, len(g.order))
	copy(out, g.order)
	return out
}

// Cell is a populated grid slot.
type Cell struct {
	Row, Col int
	Chart    render.Chart
}

// Charts returns the populated cells of w in row-major order.
func (g *Registry) Charts(w render.Window) []Cell {
	t, ok := g.tables[w]
	if !ok {
		return nil
	}
	var cells []Cell
	for r := 0; r < t.rows; r++ {
		for c := 0; c < t.cols; c++ {
			if ch := t.slots[t.index(r, c)]; ch != nil {
				cells = append(cells, Cell{Row: r, Col: c, Chart: ch})
			}
		}
	}
	return cells
}

// Len returns the number of configured windows.
func (g *Registry) Len() int {
	return len(g.tables)
}

// ReleaseAll passes every chart of every window to release and empties the
// registry. Windows are visited in configuration order.
func (g *Registry) ReleaseAll(release func(render.Chart)) {
	for _, w := range g.order {
		releaseSlots(g.tables[w], release)
	}
	g.tables = make(map[render.Window]*table)
	g.order = nil
}

func (g *Registry) remove(w render.Window) {
	if _, ok := g.tables[w]; !ok {
		return
	}
	delete(g.tables, w)
	for i, o := range g.order {
		if o == w {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

func releaseSlots(t *table, release func(render.Chart)) {
	for i, ch := range t.slots {
		if ch == nil {
			continue
		}
		t.slots[i] = nil
		if release != nil {
			release(ch)
		}
	}
}
