package export

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/ytget/muse/internal/history"
	"github.com/ytget/muse/internal/model"
	"github.com/ytget/muse/internal/platform"
	"github.com/ytget/muse/internal/render"
)

// File naming
const (
	ImagePrefix     = "muse_archive_"
	ImageExtension  = ".png"
	LedgerPrefix    = "muse_ledger_"
	LedgerExtension = ".json"
	LedgerDate      = "2006-01-02"
)

var (
	// ErrEmptyLedger is returned when exporting a history with no cards
	ErrEmptyLedger = errors.New("history is empty, nothing to export")

	// ErrNoImage is returned when saving a card that has no embedded image
	ErrNoImage = errors.New("card has no image")
)

// Service writes exports into a directory
type Service struct {
	dir string
	mu  sync.RWMutex
}

// NewService creates a new export service writing into dir
func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// ExportDirectory returns the directory files are written to
func (s *Service) ExportDirectory() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// SetExportDirectory changes the directory for subsequent exports
func (s *Service) SetExportDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dir = dir
}

// SaveImage writes PNG bytes to a file named after now (in milliseconds)
func (s *Service) SaveImage(pngData []byte, now time.Time) (string, error) {
	if len(pngData) == 0 {
		return "", ErrNoImage
	}

	path := platform.UniquePath(filepath.Join(s.ExportDirectory(), ImageFileName(now)))
	if err := platform.WriteFileAtomic(path, pngData); err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}
	platform.NotifyMediaScanner(path)

	log.Printf("image saved: %s (%d bytes)", path, len(pngData))
	return path, nil
}

// SaveImageDataURI saves an image stored as a data URI
func (s *Service) SaveImageDataURI(uri string, now time.Time) (string, error) {
	if uri == "" {
		return "", ErrNoImage
	}
	data, err := render.DecodeDataURI(uri)
	if err != nil {
		return "", err
	}
	return s.SaveImage(data, now)
}

// SaveCardImage saves the image embedded in a saved card
func (s *Service) SaveCardImage(card model.SavedCard, now time.Time) (string, error) {
	if !card.HasImage() {
		return "", fmt.Errorf("%w: %s", ErrNoImage, card.ID)
	}
	return s.SaveImageDataURI(card.ImageData, now)
}

// ExportLedger writes the whole history as indented JSON. An empty history is
// refused and no file is produced.
func (s *Service) ExportLedger(entries history.Log, now time.Time) (string, error) {
	if len(entries) == 0 {
		return "", ErrEmptyLedger
	}

	data, err := history.MarshalLedger(entries)
	if err != nil {
		return "", fmt.Errorf("failed to encode ledger: %w", err)
	}

	path := platform.UniquePath(filepath.Join(s.ExportDirectory(), LedgerFileName(now)))
	if err := platform.WriteFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("failed to save ledger: %w", err)
	}

	log.Printf("ledger exported: %s (%d cards)", path, len(entries))
	return path, nil
}

// ImageFileName returns the file name for an image exported at now
func ImageFileName(now time.Time) string {
	return fmt.Sprintf("%s%d%s", ImagePrefix, now.UnixMilli(), ImageExtension)
}

// LedgerFileName returns the file name for a ledger exported at now (UTC date)
func LedgerFileName(now time.Time) string {
	return LedgerPrefix + now.UTC().Format(LedgerDate) + LedgerExtension
}
