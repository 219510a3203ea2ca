package ggres

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggres/render"
)

// Sentinel errors returned by the Manager.
var (
	// ErrNilWindow is returned when a nil window is passed.
	ErrNilWindow = errors.New("ggres: nil window")

	// ErrNilChart is returned when a nil chart is passed.
	ErrNilChart = errors.New("ggres: nil chart")

	// ErrKindMismatch is returned when a primitive cannot be attached to a
	// chart of the given kind.
	ErrKindMismatch = errors.New("ggres: primitive incompatible with chart kind")

	// ErrGraphicsDisabled is returned by MainWindow when graphics are
	// disabled through Config.DisableGraphics.
	ErrGraphicsDisabled = errors.New("ggres: graphics disabled")

	// ErrNoBackend is returned when no rendering backend is available.
	ErrNoBackend = errors.New("ggres: no rendering backend")
)

// KindMismatchError reports a primitive requested on a chart that cannot
// hold it.
type KindMismatchError struct {
	Chart     render.ChartKind
	Primitive render.PrimitiveKind
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("ggres: %s cannot be attached to a %s chart", e.Primitive, e.Chart)
}

// Unwrap returns ErrKindMismatch.
func (e *KindMismatchError) Unwrap() error { return ErrKindMismatch }

// checkKind reports whether a chart of kind ck can hold a primitive of
// kind pk. Plots and vector fields adopt the chart's kind.
func checkKind(ck render.ChartKind, pk render.PrimitiveKind) error {
	ok := false
	switch pk {
	case render.KindImage, render.KindHistogram:
		ok = ck == render.Chart2D
	case render.KindSurface:
		ok = ck == render.Chart3D
	case render.KindPlot, render.KindVectorField:
		ok = ck.Valid()
	}
	if !ok {
		return &KindMismatchError{Chart: ck, Primitive: pk}
	}
	return nil
}
