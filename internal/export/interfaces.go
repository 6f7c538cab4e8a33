package export

import (
	"time"

	"github.com/ytget/muse/internal/history"
	"github.com/ytget/muse/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SaveImage(pngData []byte, now time.Time) (string, error)
	SaveImageDataURI(uri string, now time.Time) (string, error)
	SaveCardImage(card model.SavedCard, now time.Time) (string, error)
	ExportLedger(entries history.Log, now time.Time) (string, error)

	// ExportDirectory returns the directory files are written to
	ExportDirectory() string

	// SetExportDirectory changes the directory for subsequent exports
	SetExportDirectory(dir string)
}
