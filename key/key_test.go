package key

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gogpu/ggres/render"
)

func mustEncode(t *testing.T, enc interface{ Encode() (Key, error) }) Key {
	t.Helper()
	k, err := enc.Encode()
	if err != nil {
		t.Fatalf("Encode(%+v) error: %v", enc, err)
	}
	return k
}

func TestImageKeyDeterministic(t *testing.T) {
	p := Image{Width: 640, Height: 480, Format: render.RGBA, DType: render.U8}
	if mustEncode(t, p) != mustEncode(t, p) {
		t.Error("identical parameters produced different keys")
	}
}

func TestImageKeyFieldsDistinct(t *testing.T) {
	base := Image{Width: 640, Height: 480, Format: render.RGBA, DType: render.U8}
	variants := []Image{
		{Width: 480, Height: 640, Format: render.RGBA, DType: render.U8},
		{Width: 641, Height: 480, Format: render.RGBA, DType: render.U8},
		{Width: 640, Height: 481, Format: render.RGBA, DType: render.U8},
		{Width: 640, Height: 480, Format: render.BGRA, DType: render.U8},
		{Width: 640, Height: 480, Format: render.RGBA, DType: render.F32},
	}
	k := mustEncode(t, base)
	for _, v := range variants {
		if mustEncode(t, v) == k {
			t.Errorf("Encode(%+v) collides with Encode(%+v)", v, base)
		}
	}
}

func TestBoundsInclusive(t *testing.T) {
	encoders := []interface{ Encode() (Key, error) }{
		Image{Width: MaxDimension, Height: MaxDimension, Format: MaxEnum, DType: MaxEnum},
		Plot{Points: MaxCount, DType: MaxEnum, Type: MaxEnum, Marker: MaxEnum},
		Histogram{Bins: MaxCount, DType: MaxEnum},
		Surface{XPoints: MaxSurfaceAxis, YPoints: MaxSurfaceAxis, DType: MaxEnum},
		VectorField{Points: MaxCount, DType: MaxEnum},
	}
	for _, e := range encoders {
		if _, err := e.Encode(); err != nil {
			t.Errorf("Encode(%+v) at bounds: %v", e, err)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		enc   interface{ Encode() (Key, error) }
		field string
	}{
		{"image width", Image{Width: MaxDimension + 1, Height: 1}, "width"},
		{"image height", Image{Width: 1, Height: -1}, "height"},
		{"image format", Image{Width: 1, Height: 1, Format: 16}, "format"},
		{"plot points", Plot{Points: MaxCount + 1}, "points"},
		{"plot marker", Plot{Points: 3, Marker: 200}, "marker"},
		{"histogram bins", Histogram{Bins: -5}, "bins"},
		{"surface y", Surface{XPoints: 2, YPoints: MaxSurfaceAxis + 1}, "y points"},
		{"vector field dtype", VectorField{Points: 1, DType: 99}, "dtype"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.enc.Encode()
			if !errors.Is(err, ErrOutOfRange) {
				t.Fatalf("Encode() error = %v, want ErrOutOfRange", err)
			}
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("error %T is not *RangeError", err)
			}
			if re.Field != tt.field {
				t.Errorf("Field = %q, want %q", re.Field, tt.field)
			}
		})
	}
}

func TestSurfaceShapeNotProduct(t *testing.T) {
	a := mustEncode(t, Surface{XPoints: 2, YPoints: 8})
	b := mustEncode(t, Surface{XPoints: 4, YPoints: 4})
	c := mustEncode(t, Surface{XPoints: 8, YPoints: 2})
	if a == b || b == c || a == c {
		t.Errorf("surface keys collide: %x %x %x", a, b, c)
	}
}

// TestPlotKeyInjective checks encode(a) == encode(b) iff a == b over random
// tuples within bounds.
func TestPlotKeyInjective(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := make(map[Key]Plot)
	for i := 0; i < 20000; i++ {
		p := Plot{
			Points: rng.Intn(64),
			DType:  render.DType(rng.Intn(16)),
			Type:   render.PlotType(rng.Intn(16)),
			Marker: render.MarkerType(rng.Intn(16)),
		}
		if i%7 == 0 {
			p.Points = int(rng.Int63n(MaxCount + 1))
		}
		k := mustEncode(t, p)
		if prev, ok := seen[k]; ok && prev != p {
			t.Fatalf("Encode(%+v) == Encode(%+v) = %x", p, prev, k)
		}
		seen[k] = p
	}
}

func TestImageKeyInjective(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := make(map[Key]Image)
	for i := 0; i < 20000; i++ {
		p := Image{
			Width:  rng.Intn(MaxDimension + 1),
			Height: rng.Intn(MaxDimension + 1),
			Format: render.ChannelFormat(rng.Intn(16)),
			DType:  render.DType(rng.Intn(16)),
		}
		if i%3 == 0 {
			p.Width, p.Height = rng.Intn(4), rng.Intn(4)
		}
		k := mustEncode(t, p)
		if prev, ok := seen[k]; ok && prev != p {
			t.Fatalf("Encode(%+v) == Encode(%+v) = %x", p, prev, k)
		}
		seen[k] = p
	}
}

func TestCountKeysDistinguishDType(t *testing.T) {
	h1 := mustEncode(t, Histogram{Bins: 10, DType: render.F32})
	h2 := mustEncode(t, Histogram{Bins: 10, DType: render.S32})
	if h1 == h2 {
		t.Error("histogram keys ignore dtype")
	}
	v1 := mustEncode(t, VectorField{Points: 1, DType: render.F32})
	v2 := mustEncode(t, VectorField{Points: 0, DType: 15})
	if v1 == v2 {
		t.Error("vector field count and dtype overlap")
	}
}
