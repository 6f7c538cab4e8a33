package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/muse/internal/model"
)

func TestBuiltinCatalog(t *testing.T) {
	c := NewCatalog()

	require.Equal(t, 14, c.Len())
	assert.Len(t, c.Visible(), 12)

	seen := map[string]bool{}
	for _, p := range c.All() {
		require.NoError(t, p.Validate(), p.ID)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestCatalog_VisibleExcludesHidden(t *testing.T) {
	for _, p := range NewCatalog().Visible() {
		assert.NotEqual(t, "naghma-haye-hoor", p.ID)
		assert.NotEqual(t, "merihond", p.ID)
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := NewCatalog()

	p, ok := c.Lookup("greek")
	require.True(t, ok)
	assert.Equal(t, "Greek", p.Name)
	assert.Equal(t, "#3182CE", p.Accent)

	_, ok = c.Lookup("missing")
	assert.False(t, ok)

	// hidden presets still resolve for cards saved with them
	p, ok = c.Lookup("merihond")
	require.True(t, ok)
	assert.True(t, p.Hidden)
}

func TestCatalog_ResolveFallsBackToDefault(t *testing.T) {
	c := NewCatalog()

	assert.Equal(t, DefaultID, c.Default().ID)
	assert.Equal(t, DefaultID, c.Resolve("removed-preset").ID)
	assert.Equal(t, "latin", c.Resolve("latin").ID)
}

func TestCatalog_WithSkipsDuplicates(t *testing.T) {
	c := NewCatalog()
	extended := c.With([]model.Preset{
		{ID: "greek", Name: "Impostor", Background: "#000000", Text: "#000000", Accent: "#000000"},
		{ID: "sepia", Name: "Sepia", Background: "#F4ECD8", Text: "#5B4636", Accent: "#A0522D"},
	})

	assert.Equal(t, 14, c.Len(), "original catalog must not change")
	assert.Equal(t, 15, extended.Len())

	greek, _ := extended.Lookup("greek")
	assert.Equal(t, "Greek", greek.Name)

	sepia, ok := extended.Lookup("sepia")
	require.True(t, ok)
	assert.Equal(t, model.FontSerif, sepia.Font)
}

func TestCatalog_AllReturnsCopy(t *testing.T) {
	c := NewCatalog()
	all := c.All()
	all[0].Name = "changed"

	p, _ := c.Lookup(all[0].ID)
	assert.NotEqual(t, "changed", p.Name)
}
