package preset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/muse/internal/model"
)

const samplePresets = `
[[preset]]
id = "sepia"
name = "Sepia"
background = "#F4ECD8"
text = "#5B4636"
accent = "#A0522D"

[[preset]]
id = "nastaliq-night"
name = "Nastaliq Night"
language = "Urdu"
background = "#0F172A"
text = "#F8FAFC"
accent = "#38BDF8"
font = "urdu"
hidden = true

[[preset]]
id = "broken"
background = "teal"
text = "#000000"
accent = "#000000"
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(samplePresets), 0o644))

	presets, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, presets, 2, "invalid entry should be skipped")

	assert.Equal(t, "sepia", presets[0].ID)
	assert.Equal(t, "sepia", presets[0].Slug)
	assert.Equal(t, "Universal", presets[0].Language)

	assert.Equal(t, model.FontUrdu, presets[1].Font)
	assert.True(t, presets[1].Hidden)
}

func TestLoadFile_Missing(t *testing.T) {
	presets, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Empty(t, presets)

	presets, err = LoadFile("")
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[preset]\nid ="), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)

	catalog, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, 14, catalog.Len(), "built-in presets survive a bad user file")
}

func TestLoad_MergesUserPresets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.toml")
	require.NoError(t, os.WriteFile(path, []byte(samplePresets), 0o644))

	catalog, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, catalog.Len())
	assert.Len(t, catalog.Visible(), 13)
}
