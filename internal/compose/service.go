package compose

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/muse/internal/export"
	"github.com/ytget/muse/internal/fontfit"
	"github.com/ytget/muse/internal/history"
	"github.com/ytget/muse/internal/model"
	"github.com/ytget/muse/internal/render"
)

// DefaultScale is the pixel ratio of exported cards
const DefaultScale = 4

var (
	// ErrBusy is returned when a run is already in flight
	ErrBusy = errors.New("a card is already being generated")

	// ErrEmptyContent is returned for content with no visible text
	ErrEmptyContent = errors.New("nothing to save")
)

// Result is the outcome of a successful run
type Result struct {
	Card      model.SavedCard
	ImagePath string
}

// Service renders, records and saves cards
type Service struct {
	renderer render.CardRenderer
	store    *history.Store
	exporter export.Exporter

	busy    atomic.Bool
	scale   float64
	scaleMu sync.RWMutex
}

// NewService creates a new compose service
func NewService(renderer render.CardRenderer, store *history.Store, exporter export.Exporter) *Service {
	return &Service{
		renderer: renderer,
		store:    store,
		exporter: exporter,
		scale:    DefaultScale,
	}
}

// Busy reports whether a run is in flight
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// SetScale sets the pixel ratio used for subsequent runs
func (s *Service) SetScale(scale float64) {
	if scale <= 0 {
		scale = DefaultScale
	}
	s.scaleMu.Lock()
	s.scale = scale
	s.scaleMu.Unlock()
}

// Scale returns the pixel ratio used for exports
func (s *Service) Scale() float64 {
	s.scaleMu.RLock()
	defer s.scaleMu.RUnlock()
	return s.scale
}

// GenerateAndSave renders content with preset, prepends the card to history and
// writes the PNG into the export directory. The card is only recorded once the
// image exists; a failure to write the file is returned but keeps the record.
func (s *Service) GenerateAndSave(ctx context.Context, content string, preset model.Preset, now time.Time) (*Result, error) {
	if strings.TrimSpace(fontfit.StripMarkup(content)) == "" {
		return nil, ErrEmptyContent
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer s.busy.Store(false)

	img, err := s.renderer.Render(ctx, content, preset, s.Scale())
	if err != nil {
		return nil, fmt.Errorf("failed to render card: %w", err)
	}

	pngData, err := render.EncodePNG(img)
	if err != nil {
		return nil, err
	}

	card := model.SavedCard{
		ID:        generateCardID(now),
		Content:   content,
		PresetID:  preset.ID,
		CreatedAt: now.UTC().Format(time.RFC3339Nano),
		ImageData: render.DataURI(pngData),
	}

	if _, err := s.store.Append(card); err != nil {
		return nil, fmt.Errorf("failed to record card: %w", err)
	}

	path, err := s.exporter.SaveImage(pngData, now)
	if err != nil {
		return &Result{Card: card}, fmt.Errorf("card recorded but image not saved: %w", err)
	}

	log.Printf("card %s saved with preset %s: %s", card.ID, preset.ID, path)
	return &Result{Card: card, ImagePath: path}, nil
}

// generateCardID returns a UUID v7 whose timestamp is now in unix milliseconds,
// so ids sort by creation time
func generateCardID(now time.Time) string {
	id, err := uuid.NewRandom()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return strconv.FormatInt(now.UnixMilli(), 10)
	}
	ms := uint64(now.UnixMilli())
	for i := 0; i < 6; i++ {
		id[i] = byte(ms >> (8 * (5 - i)))
	}
	id[6] = id[6]&0x0f | 0x70
	return id.String()
}
