// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image"

// Resource is anything a Backend allocates on behalf of ggres.
type Resource interface {
	// Destroy releases the resource. ggres calls Destroy exactly once and
	// never uses the resource afterwards.
	Destroy()
}

// Window is a rendering surface owning a rendering context.
type Window interface {
	Resource

	// Width returns the window width in pixels.
	Width() int

	// Height returns the window height in pixels.
	Height() int

	// Title returns the window title.
	Title() string

	// MakeCurrent binds the window's rendering context to the calling thread.
	MakeCurrent() error

	// SetGrid informs the window of its chart layout. A zero size means the
	// window shows no charts.
	SetGrid(rows, cols int)

	// GridRows returns the number of chart rows last passed to SetGrid.
	GridRows() int

	// GridCols returns the number of chart columns last passed to SetGrid.
	GridCols() int

	// Draw renders chart into the grid cell (row, col).
	Draw(row, col int, chart Chart) error

	// DeviceHandle returns the device behind the window's context.
	DeviceHandle() DeviceHandle
}

// Chart is a container of primitives sharing one coordinate system.
type Chart interface {
	Resource

	// Kind returns the chart kind fixed at creation.
	Kind() ChartKind

	// Add appends p to the chart's draw list.
	Add(p Primitive)

	// Primitives returns the draw list in insertion order.
	Primitives() []Primitive
}

// Primitive is a drawable object attached to at most one Chart.
type Primitive interface {
	Resource

	// PrimitiveKind identifies the concrete primitive interface.
	PrimitiveKind() PrimitiveKind
}

// Image is a pixel buffer of fixed size and layout.
type Image interface {
	Primitive

	Width() int
	Height() int
	Format() ChannelFormat
	DType() DType

	// SetPixels copies src into the image. src is scaled when its bounds
	// differ from the image size.
	SetPixels(src image.Image) error
}

// Plot is a polyline or point cloud with a fixed vertex count.
type Plot interface {
	Primitive

	Points() int
	DType() DType
	ChartKind() ChartKind
	PlotType() PlotType
	Marker() MarkerType

	// SetVertices copies interleaved coordinates (x,y or x,y,z per vertex,
	// depending on ChartKind).
	SetVertices(v []float64) error

	// SetAxesLimits sets the data range shown on each axis. The z range is
	// ignored by 2D plots.
	SetAxesLimits(lim Limits)
}

// Histogram is a bar chart with a fixed bin count.
type Histogram interface {
	Primitive

	Bins() int
	DType() DType

	// SetCounts copies one value per bin.
	SetCounts(counts []float64) error
	SetAxesLimits(lim Limits)
}

// Surface is a height field sampled on an XPoints×YPoints grid.
type Surface interface {
	Primitive

	XPoints() int
	YPoints() int
	DType() DType

	// SetVertices copies x,y,z triples in row-major sample order.
	SetVertices(v []float64) error
	SetAxesLimits(lim Limits)
}

// VectorField is a set of points with one direction vector each.
type VectorField interface {
	Primitive

	Points() int
	DType() DType
	ChartKind() ChartKind

	// SetVertices copies interleaved point coordinates.
	SetVertices(v []float64) error

	// SetDirections copies interleaved direction components.
	SetDirections(d []float64) error
	SetAxesLimits(lim Limits)
}

// Font is the typeface used for chart titles and axis labels.
type Font interface {
	Resource

	// Family returns the typeface family name.
	Family() string
}

// Limits is the visible data range of a chart's axes.
type Limits struct {
	XMin, XMax float64
	YMin, YMax float64
	ZMin, ZMax float64
}

// WindowConfig describes a window to create.
type WindowConfig struct {
	Width  int
	Height int
	Title  string

	// Invisible requests an offscreen window.
	Invisible bool
}

// Backend constructs rendering objects. Constructors must either return a
// fully usable object or an error, never both.
type Backend interface {
	// Name returns the backend identifier (e.g., "software").
	Name() string

	NewWindow(cfg WindowConfig) (Window, error)
	NewChart(kind ChartKind) (Chart, error)
	NewImage(width, height int, format ChannelFormat, dtype DType) (Image, error)
	NewPlot(points int, dtype DType, kind ChartKind, ptype PlotType, marker MarkerType) (Plot, error)
	NewHistogram(bins int, dtype DType) (Histogram, error)
	NewSurface(xPoints, yPoints int, dtype DType) (Surface, error)
	NewVectorField(points int, dtype DType, kind ChartKind) (VectorField, error)

	// NewFont creates a font from a parsed typeface.
	NewFont(face Typeface) (Font, error)
}

// Typeface is the font data handed to Backend.NewFont. It is implemented by
// the typeface package.
type Typeface interface {
	Family() string

	// Data returns the raw TrueType/OpenType bytes.
	Data() []byte
}
