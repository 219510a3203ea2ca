// Package ggres caches and owns the rendering objects behind array plots.
//
// # Overview
//
// A numeric library that draws its arrays needs windows, charts and
// primitives (images, plots, histograms, surfaces, vector fields) from a
// rendering library. Creating them is expensive, so ggres hands out the
// same object for repeated requests with identical parameters and destroys
// everything in dependency order when asked to.
//
// # Quick Start
//
//	import "github.com/gogpu/ggres"
//
//	m := ggres.Default()
//	defer ggres.Shutdown()
//
//	win, err := m.MainWindow()
//	if err != nil {
//	    return err
//	}
//	chart, _ := m.Chart(win, 0, 0, render.Chart2D)
//	plot, _ := ggres.SetupPlot(m, chart, render.PlotLine, render.MarkerNone, xs, ys)
//	_ = m.Draw(win)
//
// # Addressing
//
// Charts live in the grid of a window, configured with ConfigureGrid and
// addressed by (row, col). Primitives are keyed by their shape and type
// parameters together with the chart they are attached to. Floating images
// belong to no chart.
//
// Chart2D charts hold images, plots and histograms. Chart3D charts hold
// surfaces, plots and vector fields; plots and vector fields take their
// dimension from the chart.
//
// # Teardown
//
// Close destroys primitives first, then charts, then the session font, then
// the main window. Windows created by the caller are never destroyed.
//
// # Backends
//
// Rendering objects come from a render.Backend. Importing ggres registers
// the software backend (backend/soft), which draws into in-memory RGBA
// canvases. The recording backend (backend/record) logs lifecycle events
// and is used by tests.
package ggres

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
