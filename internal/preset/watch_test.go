package preset

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	reloaded := make(chan *Catalog, 16)
	w, err := NewWatcher(path, 20*time.Millisecond, func(c *Catalog) { reloaded <- c })
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	t.Cleanup(func() { w.Close() })

	require.NoError(t, os.WriteFile(path, []byte(samplePresets), 0o644))

	// a save can surface as several events; wait for the complete file
	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-reloaded:
			if _, ok := c.Lookup("sepia"); ok {
				assert.Equal(t, len(builtin)+2, c.Len())
				return
			}
		case <-deadline:
			t.Fatal("catalog was not reloaded")
		}
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.toml")

	reloaded := make(chan *Catalog, 1)
	w, err := NewWatcher(path, 10*time.Millisecond, func(c *Catalog) { reloaded <- c })
	require.NoError(t, err)
	require.NoError(t, w.Watch())
	t.Cleanup(func() { w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-reloaded:
		t.Fatal("reloaded for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNewWatcher_EmptyPath(t *testing.T) {
	_, err := NewWatcher("", time.Millisecond, nil)
	assert.Error(t, err)
}
