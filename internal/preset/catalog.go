package preset

import (
	"github.com/ytget/muse/internal/model"
)

// Catalog is an immutable, ordered set of presets. It is built once at startup.
type Catalog struct {
	presets []model.Preset
	byID    map[string]int
}

// NewCatalog returns the built-in catalog
func NewCatalog() *Catalog {
	return newCatalog(builtin)
}

func newCatalog(presets []model.Preset) *Catalog {
	c := &Catalog{
		presets: make([]model.Preset, 0, len(presets)),
		byID:    make(map[string]int, len(presets)),
	}
	for _, p := range presets {
		if _, exists := c.byID[p.ID]; exists {
			continue
		}
		if p.Font == "" {
			p.Font = model.FontSerif
		}
		c.byID[p.ID] = len(c.presets)
		c.presets = append(c.presets, p)
	}
	return c
}

// All returns every preset, hidden ones included, in catalog order
func (c *Catalog) All() []model.Preset {
	out := make([]model.Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Visible returns the presets offered in the picker
func (c *Catalog) Visible() []model.Preset {
	out := make([]model.Preset, 0, len(c.presets))
	for _, p := range c.presets {
		if p.Visible() {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of presets
func (c *Catalog) Len() int {
	return len(c.presets)
}

// Lookup returns the preset with the given id
func (c *Catalog) Lookup(id string) (model.Preset, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Preset{}, false
	}
	return c.presets[i], true
}

// Default returns the fallback preset
func (c *Catalog) Default() model.Preset {
	if p, ok := c.Lookup(DefaultID); ok {
		return p
	}
	return c.presets[0]
}

// Resolve returns the preset with the given id, or the default one when the id
// dangles (e.g. a saved card made with a preset that no longer exists).
func (c *Catalog) Resolve(id string) model.Preset {
	if p, ok := c.Lookup(id); ok {
		return p
	}
	return c.Default()
}

// With returns a new catalog with extra presets appended. Presets whose id is
// already present are skipped.
func (c *Catalog) With(extra []model.Preset) *Catalog {
	merged := make([]model.Preset, 0, len(c.presets)+len(extra))
	merged = append(merged, c.presets...)
	merged = append(merged, extra...)
	return newCatalog(merged)
}
