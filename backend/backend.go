package backend

import (
	"errors"

	"github.com/gogpu/ggres/render"
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU canvas backend (backend/soft).
	BackendSoftware = "software"
	// BackendRecord is the name of the lifecycle recording backend (backend/record).
	BackendRecord = "record"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not available.
	ErrBackendNotAvailable = errors.New("backend: not available")
)

// Factory creates a new backend instance.
type Factory func() render.Backend
