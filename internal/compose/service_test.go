package compose

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/muse/internal/export"
	"github.com/ytget/muse/internal/history"
	"github.com/ytget/muse/internal/model"
	"github.com/ytget/muse/internal/render"
)

var greek = model.Preset{ID: "greek", Background: "#F0F9FF", Text: "#1A365D", Accent: "#3182CE"}

type fakeRenderer struct {
	err     error
	started chan struct{}
	release chan struct{}

	mu     sync.Mutex
	scales []float64
}

func (f *fakeRenderer) Render(ctx context.Context, content string, preset model.Preset, scale float64) (image.Image, error) {
	f.mu.Lock()
	f.scales = append(f.scales, scale)
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.Black)
	return img, nil
}

func newTestService(t *testing.T, r render.CardRenderer) (*Service, *history.Store, string) {
	t.Helper()
	store := history.NewStore(test.NewApp().Preferences())
	store.Load()
	dir := t.TempDir()
	return NewService(r, store, export.NewService(dir)), store, dir
}

func TestGenerateAndSave(t *testing.T) {
	r := &fakeRenderer{}
	svc, store, dir := newTestService(t, r)
	now := time.Date(2025, 6, 10, 16, 0, 0, 0, time.UTC)

	res, err := svc.GenerateAndSave(context.Background(), "<p>Memento mori</p>", greek, now)
	require.NoError(t, err)

	assert.NotEmpty(t, res.Card.ID)
	assert.Equal(t, "greek", res.Card.PresetID)
	assert.Equal(t, "2025-06-10T16:00:00Z", res.Card.CreatedAt)
	assert.True(t, strings.HasPrefix(res.Card.ImageData, render.DataURIPrefix))

	entries := store.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, res.Card, entries[0])

	assert.True(t, strings.HasPrefix(res.ImagePath, dir))
	_, err = os.Stat(res.ImagePath)
	assert.NoError(t, err)

	assert.Equal(t, []float64{DefaultScale}, r.scales)
	assert.False(t, svc.Busy())
}

func TestGenerateAndSave_NewestFirst(t *testing.T) {
	svc, store, _ := newTestService(t, &fakeRenderer{})

	first, err := svc.GenerateAndSave(context.Background(), "one", greek, time.Now())
	require.NoError(t, err)
	second, err := svc.GenerateAndSave(context.Background(), "two", greek, time.Now().Add(time.Millisecond))
	require.NoError(t, err)

	assert.Equal(t, []string{second.Card.ID, first.Card.ID}, store.Entries().IDs())
}

func TestGenerateAndSave_EmptyContent(t *testing.T) {
	r := &fakeRenderer{}
	svc, store, _ := newTestService(t, r)

	for _, content := range []string{"", "   ", "<p><br></p>", "<p> </p>"} {
		_, err := svc.GenerateAndSave(context.Background(), content, greek, time.Now())
		assert.ErrorIs(t, err, ErrEmptyContent, content)
	}
	assert.Empty(t, r.scales)
	assert.Equal(t, 0, store.Len())
}

func TestGenerateAndSave_RenderFailure(t *testing.T) {
	boom := errors.New("rasterizer exploded")
	svc, store, dir := newTestService(t, &fakeRenderer{err: boom})

	_, err := svc.GenerateAndSave(context.Background(), "text", greek, time.Now())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, store.Len())
	assert.False(t, svc.Busy(), "busy flag is released after a failure")

	files, _ := os.ReadDir(dir)
	assert.Empty(t, files)
}

func TestGenerateAndSave_RefusesOverlap(t *testing.T) {
	r := &fakeRenderer{started: make(chan struct{}), release: make(chan struct{})}
	svc, store, _ := newTestService(t, r)

	done := make(chan error, 1)
	go func() {
		_, err := svc.GenerateAndSave(context.Background(), "first", greek, time.Now())
		done <- err
	}()

	<-r.started
	assert.True(t, svc.Busy())

	_, err := svc.GenerateAndSave(context.Background(), "second", greek, time.Now())
	assert.ErrorIs(t, err, ErrBusy)

	close(r.release)
	require.NoError(t, <-done)
	assert.Equal(t, 1, store.Len())
}

func TestSetScale(t *testing.T) {
	r := &fakeRenderer{}
	svc, _, _ := newTestService(t, r)

	svc.SetScale(2)
	assert.Equal(t, 2.0, svc.Scale())

	svc.SetScale(0)
	assert.Equal(t, float64(DefaultScale), svc.Scale())

	svc.SetScale(3)
	_, err := svc.GenerateAndSave(context.Background(), "x", greek, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, r.scales)
}

func TestGenerateCardID_Unique(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := generateCardID(now)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerateCardID_EmbedsCreationTime(t *testing.T) {
	now := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	id, err := uuid.Parse(generateCardID(now))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.Equal(t, uuid.RFC4122, id.Variant())

	var ms int64
	for _, b := range id[:6] {
		ms = ms<<8 | int64(b)
	}
	assert.Equal(t, now.UnixMilli(), ms)

	later, err := uuid.Parse(generateCardID(now.Add(time.Second)))
	require.NoError(t, err)
	assert.Less(t, id.String(), later.String())
}
