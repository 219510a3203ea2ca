// Package plotdata prepares sample columns for upload to cached primitives.
//
// Callers hold data as typed slices. Primitives take interleaved float64
// vertices plus axis limits, so every Setup helper in package ggres goes
// through Limits and Interleave first.
package plotdata

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/ggres/render"
)

// Number is the set of element types a column may hold.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint | ~uint64 |
		~float32 | ~float64
}

var (
	// ErrEmpty is returned for columns without samples.
	ErrEmpty = errors.New("plotdata: empty column")

	// ErrLengthMismatch is returned when columns differ in length.
	ErrLengthMismatch = errors.New("plotdata: column lengths differ")

	// ErrUnknownMarker is returned by MarkerFromString for unknown names.
	ErrUnknownMarker = errors.New("plotdata: unknown marker")
)

// Range is the closed interval spanned by a column.
type Range struct {
	Min, Max float64
}

// MinMax returns the range of v. NaN samples are skipped; a column of
// only NaNs is treated as empty.
func MinMax[T Number](v []T) (Range, error) {
	r := Range{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, x := range v {
		f := float64(x)
		if math.IsNaN(f) {
			continue
		}
		r.Min = math.Min(r.Min, f)
		r.Max = math.Max(r.Max, f)
	}
	if r.Min > r.Max {
		return Range{}, ErrEmpty
	}
	return r, nil
}

// Limits returns axis limits covering the given columns: x, y and
// optionally z. Extra columns are ignored.
func Limits[T Number](cols ...[]T) (render.Limits, error) {
	var lim render.Limits
	for i, c := range cols {
		if i > 2 {
			break
		}
		r, err := MinMax(c)
		if err != nil {
			return render.Limits{}, fmt.Errorf("column %d: %w", i, err)
		}
		switch i {
		case 0:
			lim.XMin, lim.XMax = r.Min, r.Max
		case 1:
			lim.YMin, lim.YMax = r.Min, r.Max
		case 2:
			lim.ZMin, lim.ZMax = r.Min, r.Max
		}
	}
	return lim, nil
}

// Interleave joins equally long columns and reorders them sample-major:
// x0,y0,x1,y1,... for two columns.
func Interleave[T Number](cols ...[]T) ([]float64, error) {
	if len(cols) == 0 || len(cols[0]) == 0 {
		return nil, ErrEmpty
	}
	n := len(cols[0])
	for i, c := range cols[1:] {
		if len(c) != n {
			return nil, fmt.Errorf("%w: column %d has %d samples, want %d", ErrLengthMismatch, i+1, len(c), n)
		}
	}
	out := make([]float64, 0, n*len(cols))
	for s := 0; s < n; s++ {
		for _, c := range cols {
			out = append(out, float64(c[s]))
		}
	}
	return out, nil
}

// Floats converts a column to float64.
func Floats[T Number](v []T) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

// DTypeOf returns the element type used to upload samples of type T.
// Types without a matching upload format use F32.
func DTypeOf[T Number]() render.DType {
	var zero T
	switch any(zero).(type) {
	case int32:
		return render.S32
	case uint32:
		return render.U32
	case int8:
		return render.S8
	case uint8:
		return render.U8
	case int16:
		return render.S16
	case uint16:
		return render.U16
	default:
		return render.F32
	}
}

var markerAliases = map[string]render.MarkerType{
	"":  render.MarkerNone,
	".": render.MarkerPoint,
	"o": render.MarkerCircle,
	"s": render.MarkerSquare,
	"^": render.MarkerTriangle,
	"x": render.MarkerCross,
	"+": render.MarkerPlus,
	"*": render.MarkerStar,
}

// MarkerFromString parses a marker name ("circle", "Cross") or its
// one-character alias ("o", "x").
func MarkerFromString(s string) (render.MarkerType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if m, ok := markerAliases[s]; ok {
		return m, nil
	}
	m := render.ParseMarker(s)
	if m == render.MarkerNone && s != render.MarkerNone.String() {
		return render.MarkerNone, fmt.Errorf("%w: %q", ErrUnknownMarker, s)
	}
	return m, nil
}
