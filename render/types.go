// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// ChartKind selects the coordinate system of a Chart.
type ChartKind uint8

const (
	// Chart2D is a planar chart. It accepts images, plots and histograms.
	Chart2D ChartKind = iota + 1

	// Chart3D is a volumetric chart. It accepts surfaces, plots and vector fields.
	Chart3D
)

// String returns the chart kind name.
func (k ChartKind) String() string {
	switch k {
	case Chart2D:
		return "Chart2D"
	case Chart3D:
		return "Chart3D"
	default:
		return "ChartKind(?)"
	}
}

// Valid reports whether k is a known chart kind.
func (k ChartKind) Valid() bool {
	return k == Chart2D || k == Chart3D
}

// Dims returns the number of spatial dimensions of a vertex in a chart of
// this kind (2 or 3).
func (k ChartKind) Dims() int {
	if k == Chart3D {
		return 3
	}
	return 2
}

// ChannelFormat is the pixel layout of an Image.
type ChannelFormat uint8

// Channel formats.
const (
	Gray ChannelFormat = iota
	RG
	RGB
	BGR
	RGBA
	BGRA
)

var channelFormatNames = [...]string{"Gray", "RG", "RGB", "BGR", "RGBA", "BGRA"}

// String returns the format name.
func (f ChannelFormat) String() string {
	if int(f) < len(channelFormatNames) {
		return channelFormatNames[f]
	}
	return "ChannelFormat(?)"
}

// Valid reports whether f is a known channel format.
func (f ChannelFormat) Valid() bool {
	return f <= BGRA
}

// Channels returns the number of color channels per pixel.
func (f ChannelFormat) Channels() int {
	switch f {
	case Gray:
		return 1
	case RG:
		return 2
	case RGB, BGR:
		return 3
	default:
		return 4
	}
}

// TextureFormat returns the GPU texture format an image of this layout is
// uploaded as. Three-channel and two-channel data are expanded to four
// channels on upload.
func (f ChannelFormat) TextureFormat() gputypes.TextureFormat {
	switch f {
	case Gray:
		return gputypes.TextureFormatR8Unorm
	case BGR, BGRA:
		return gputypes.TextureFormatBGRA8Unorm
	case RG, RGB, RGBA:
		return gputypes.TextureFormatRGBA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// DType is the element type of the sample buffer behind a primitive.
type DType uint8

// Element types.
const (
	F32 DType = iota
	S32
	U32
	S8
	U8
	S16
	U16
)

var dtypeNames = [...]string{"f32", "s32", "u32", "s8", "u8", "s16", "u16"}

// String returns the short type name.
func (t DType) String() string {
	if int(t) < len(dtypeNames) {
		return dtypeNames[t]
	}
	return "DType(?)"
}

// Valid reports whether t is a known element type.
func (t DType) Valid() bool {
	return t <= U16
}

// Size returns the element size in bytes.
func (t DType) Size() int {
	switch t {
	case S8, U8:
		return 1
	case S16, U16:
		return 2
	default:
		return 4
	}
}

// PlotType selects how plot vertices are connected.
type PlotType uint8

const (
	// PlotLine connects consecutive vertices.
	PlotLine PlotType = iota

	// PlotScatter draws vertices only.
	PlotScatter
)

// String returns the plot type name.
func (t PlotType) String() string {
	switch t {
	case PlotLine:
		return "line"
	case PlotScatter:
		return "scatter"
	default:
		return "PlotType(?)"
	}
}

// Valid reports whether t is a known plot type.
func (t PlotType) Valid() bool {
	return t <= PlotScatter
}

// MarkerType is the glyph drawn at each plot vertex.
type MarkerType uint8

// Marker types.
const (
	MarkerNone MarkerType = iota
	MarkerPoint
	MarkerCircle
	MarkerSquare
	MarkerTriangle
	MarkerCross
	MarkerPlus
	MarkerStar
)

var markerNames = [...]string{"none", "point", "circle", "square", "triangle", "cross", "plus", "star"}

// String returns the marker name.
func (m MarkerType) String() string {
	if int(m) < len(markerNames) {
		return markerNames[m]
	}
	return "MarkerType(?)"
}

// Valid reports whether m is a known marker type.
func (m MarkerType) Valid() bool {
	return m <= MarkerStar
}

// ParseMarker returns the marker with the given name. Unknown names map to
// MarkerNone, so a bad marker never prevents a plot from being drawn.
func ParseMarker(name string) MarkerType {
	for i, n := range markerNames {
		if n == name {
			return MarkerType(i)
		}
	}
	return MarkerNone
}

// PrimitiveKind identifies the concrete type behind a Primitive.
type PrimitiveKind uint8

// Primitive kinds.
const (
	KindImage PrimitiveKind = iota + 1
	KindPlot
	KindHistogram
	KindSurface
	KindVectorField
)

// String returns the primitive kind name.
func (k PrimitiveKind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindPlot:
		return "plot"
	case KindHistogram:
		return "histogram"
	case KindSurface:
		return "surface"
	case KindVectorField:
		return "vector field"
	default:
		return "PrimitiveKind(?)"
	}
}
