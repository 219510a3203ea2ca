// Package key packs primitive shape and type parameters into cache keys.
//
// Each primitive kind has a parameter struct whose Encode method validates
// the declared field bounds once and returns a Key. Encoding is injective:
// two parameter sets that differ in any field within bounds never produce
// the same Key, and equal parameter sets always do.
//
// Bit layout, most significant first:
//
//	Image        width:17  height:17  format:4  dtype:4
//	Plot         points:49 dtype:4    type:4    marker:4
//	Histogram    bins:49   dtype:4
//	Surface      xpoints:25 ypoints:25 dtype:4
//	VectorField  points:49 dtype:4
//
// Keys of different primitive kinds may collide; every kind has its own cache.
package key

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggres/render"
)

// Key is an opaque, comparable cache key.
type Key uint64

// Declared field bounds (inclusive).
const (
	MaxDimension   = 1 << 16 // image width and height
	MaxCount       = 1 << 48 // point, bin and vector counts
	MaxSurfaceAxis = 1 << 24 // surface samples along one axis
	MaxEnum        = 15      // any enum nibble
)

const (
	dimBits   = 17
	countBits = 49
	axisBits  = 25
	enumBits  = 4
)

// ErrOutOfRange is returned when a parameter exceeds its declared bounds.
var ErrOutOfRange = errors.New("key: parameter out of range")

// RangeError reports the offending field.
type RangeError struct {
	Field string
	Value int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("key: %s = %d out of range [0, %d]", e.Field, e.Value, e.Max)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func check(field string, v, limit int64) error {
	if v < 0 || v > limit {
		return &RangeError{Field: field, Value: v, Max: limit}
	}
	return nil
}

// packer accumulates fields from the most significant end.
type packer struct {
	k   uint64
	err error
}

func (p *packer) put(field string, v, limit int64, bits uint) {
	if p.err != nil {
		return
	}
	if err := check(field, v, limit); err != nil {
		p.err = err
		return
	}
	p.k = p.k<<bits | uint64(v)
}

func (p *packer) enum(field string, v uint8) {
	p.put(field, int64(v), MaxEnum, enumBits)
}

func (p *packer) result() (Key, error) {
	if p.err != nil {
		return 0, p.err
	}
	return Key(p.k), nil
}

// Image parameters.
type Image struct {
	Width, Height int
	Format        render.ChannelFormat
	DType         render.DType
}

// Encode returns the cache key of p.
func (p Image) Encode() (Key, error) {
	var pk packer
	pk.put("width", int64(p.Width), MaxDimension, dimBits)
	pk.put("height", int64(p.Height), MaxDimension, dimBits)
	pk.enum("format", uint8(p.Format))
	pk.enum("dtype", uint8(p.DType))
	return pk.result()
}

// Plot parameters.
type Plot struct {
	Points int
	DType  render.DType
	Type   render.PlotType
	Marker render.MarkerType
}

// Encode returns the cache key of p.
func (p Plot) Encode() (Key, error) {
	var pk packer
	pk.put("points", int64(p.Points), MaxCount, countBits)
	pk.enum("dtype", uint8(p.DType))
	pk.enum("plot type", uint8(p.Type))
	pk.enum("marker", uint8(p.Marker))
	return pk.result()
}

// Histogram parameters.
type Histogram struct {
	Bins  int
	DType render.DType
}

// Encode returns the cache key of p.
func (p Histogram) Encode() (Key, error) {
	var pk packer
	pk.put("bins", int64(p.Bins), MaxCount, countBits)
	pk.enum("dtype", uint8(p.DType))
	return pk.result()
}

// Surface parameters. Both axes are encoded, so surfaces with equal sample
// counts but different shapes get different keys.
type Surface struct {
	XPoints, YPoints int
	DType            render.DType
}

// Encode returns the cache key of p.
func (p Surface) Encode() (Key, error) {
	var pk packer
	pk.put("x points", int64(p.XPoints), MaxSurfaceAxis, axisBits)
	pk.put("y points", int64(p.YPoints), MaxSurfaceAxis, axisBits)
	pk.enum("dtype", uint8(p.DType))
	return pk.result()
}

// VectorField parameters.
type VectorField struct {
	Points int
	DType  render.DType
}

// Encode returns the cache key of p.
func (p VectorField) Encode() (Key, error) {
	var pk packer
	pk.put("points", int64(p.Points), MaxCount, countBits)
	pk.enum("dtype", uint8(p.DType))
	return pk.result()
}
