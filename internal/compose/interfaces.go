package compose

import (
	"context"
	"time"

	"github.com/ytget/muse/internal/model"
)

// Composer defines the interface for the compose service.
type Composer interface {
	GenerateAndSave(ctx context.Context, content string, preset model.Preset, now time.Time) (*Result, error)

	// Busy reports whether a run is in flight
	Busy() bool

	// SetScale sets the pixel ratio used for subsequent runs
	SetScale(scale float64)
}
