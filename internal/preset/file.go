package preset

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ytget/muse/internal/model"
)

// userFile is the on-disk layout of a user preset file:
//
//	[[preset]]
//	id = "sepia"
//	name = "Sepia"
//	background = "#F4ECD8"
//	text = "#5B4636"
//	accent = "#A0522D"
type userFile struct {
	Presets []userPreset `toml:"preset"`
}

type userPreset struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	Slug        string `toml:"slug"`
	Description string `toml:"description"`
	Language    string `toml:"language"`
	Background  string `toml:"background"`
	Text        string `toml:"text"`
	Accent      string `toml:"accent"`
	Font        string `toml:"font"`
	Hidden      bool   `toml:"hidden"`
}

// LoadFile reads user presets from a TOML file. A missing file yields no
// presets and no error. Invalid entries are skipped and logged.
func LoadFile(path string) ([]model.Preset, error) {
	if path == "" {
		return nil, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var f userFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("failed to decode preset file: %w", err)
	}

	presets := make([]model.Preset, 0, len(f.Presets))
	for _, up := range f.Presets {
		p := model.Preset{
			ID:          up.ID,
			Name:        up.Name,
			Slug:        up.Slug,
			Description: up.Description,
			Language:    up.Language,
			Background:  up.Background,
			Text:        up.Text,
			Accent:      up.Accent,
			Font:        model.FontFamily(up.Font),
			Hidden:      up.Hidden,
		}
		if p.Name == "" {
			p.Name = p.ID
		}
		if p.Slug == "" {
			p.Slug = p.ID
		}
		if p.Language == "" {
			p.Language = "Universal"
		}
		if err := p.Validate(); err != nil {
			log.Printf("skipping user preset: %v", err)
			continue
		}
		presets = append(presets, p)
	}

	return presets, nil
}

// Load returns the built-in catalog extended with the presets in path
func Load(path string) (*Catalog, error) {
	catalog := NewCatalog()
	extra, err := LoadFile(path)
	if err != nil {
		return catalog, err
	}
	if len(extra) == 0 {
		return catalog, nil
	}
	return catalog.With(extra), nil
}
