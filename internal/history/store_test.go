package history

import (
	"encoding/json"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/muse/internal/model"
)

func newTestStore(t *testing.T) (*Store, Preferences) {
	t.Helper()
	prefs := test.NewApp().Preferences()
	return NewStore(prefs), prefs
}

func card(id string) model.SavedCard {
	return model.SavedCard{
		ID:        id,
		Content:   "<p>quote " + id + "</p>",
		PresetID:  "greek",
		CreatedAt: "2025-06-01T10:00:00Z",
		ImageData: "data:image/png;base64,iVBORw0KGgo=",
	}
}

func persistedIDs(t *testing.T, prefs Preferences) []string {
	t.Helper()
	raw := prefs.String(StorageKey)
	if raw == "" {
		return nil
	}
	var entries Log
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	return entries.IDs()
}

func TestLoad_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	entries := store.Load()
	assert.Empty(t, entries)
	assert.NoError(t, store.LoadErr())
}

func TestLoad_Corrupt(t *testing.T) {
	store, prefs := newTestStore(t)
	prefs.SetString(StorageKey, "{not json")

	entries := store.Load()
	assert.Empty(t, entries)
	assert.Error(t, store.LoadErr())
	assert.Equal(t, 0, store.Len())
}

func TestLoad_ReadsCompatibleRecords(t *testing.T) {
	store, prefs := newTestStore(t)
	prefs.SetString(StorageKey, `[{"id":"1718035200123","content":"<p>hi</p>","collectionId":"latin","createdAt":"2024-06-10T16:00:00.123Z","imageUrl":"data:image/png;base64,AA=="}]`)

	entries := store.Load()
	require.Len(t, entries, 1)
	assert.Equal(t, "latin", entries[0].PresetID)
	assert.Equal(t, "data:image/png;base64,AA==", entries[0].ImageData)
}

func TestAppend_RoundTrip(t *testing.T) {
	store, prefs := newTestStore(t)
	before := store.Load()

	c := card("a")
	_, err := store.Append(c)
	require.NoError(t, err)

	reloaded := NewStore(prefs).Load()
	require.Len(t, reloaded, len(before)+1)
	assert.Equal(t, c, reloaded[0])
}

func TestAppend_PrependsNewest(t *testing.T) {
	store, prefs := newTestStore(t)
	store.Load()

	for _, id := range []string{"c", "b", "a"} {
		_, err := store.Append(card(id))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"a", "b", "c"}, store.Entries().IDs())
	assert.Equal(t, []string{"a", "b", "c"}, persistedIDs(t, prefs))
}

func TestAppend_RejectsDuplicateAndEmptyID(t *testing.T) {
	store, _ := newTestStore(t)
	store.Load()

	_, err := store.Append(card("a"))
	require.NoError(t, err)

	entries, err := store.Append(card("a"))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, entries, 1)

	_, err = store.Append(model.SavedCard{Content: "x"})
	assert.ErrorIs(t, err, ErrEmptyID)
	assert.Equal(t, 1, store.Len())
}

func TestRemove_Middle(t *testing.T) {
	store, prefs := newTestStore(t)
	store.Load()
	for _, id := range []string{"c", "b", "a"} {
		_, err := store.Append(card(id))
		require.NoError(t, err)
	}

	entries := store.Remove("b")
	assert.Equal(t, []string{"a", "c"}, entries.IDs())
	assert.Equal(t, []string{"a", "c"}, persistedIDs(t, prefs))

	_, ok := store.Get("b")
	assert.False(t, ok)
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	store, prefs := newTestStore(t)
	store.Load()
	_, err := store.Append(card("a"))
	require.NoError(t, err)
	before := prefs.String(StorageKey)

	entries := store.Remove("zzz")
	assert.Equal(t, []string{"a"}, entries.IDs())
	assert.Equal(t, before, prefs.String(StorageKey))
}

func TestRemove_AfterAppend(t *testing.T) {
	store, prefs := newTestStore(t)
	store.Load()
	_, err := store.Append(card("x"))
	require.NoError(t, err)

	entries := store.Remove("x")
	assert.Empty(t, entries)
	assert.Empty(t, persistedIDs(t, prefs))
	assert.Empty(t, NewStore(prefs).Load())
}

func TestClear(t *testing.T) {
	store, prefs := newTestStore(t)
	store.Load()
	for _, id := range []string{"a", "b"} {
		_, err := store.Append(card(id))
		require.NoError(t, err)
	}

	assert.Empty(t, store.Clear())
	assert.Equal(t, "", prefs.String(StorageKey))
	assert.Empty(t, NewStore(prefs).Load())
}

func TestClear_AfterCorruptLoad(t *testing.T) {
	store, prefs := newTestStore(t)
	prefs.SetString(StorageKey, "garbage")
	store.Load()

	store.Clear()
	assert.Empty(t, store.Load())
	assert.NoError(t, store.LoadErr())
}

func TestGet(t *testing.T) {
	store, _ := newTestStore(t)
	store.Load()
	for _, id := range []string{"a", "b"} {
		_, err := store.Append(card(id))
		require.NoError(t, err)
	}

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.ID)
	assert.Equal(t, card("a").Content, got.Content)

	got, ok = store.Get("missing")
	assert.False(t, ok)
	assert.Equal(t, model.SavedCard{}, got)
}

func TestEntries_ReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)
	store.Load()
	_, err := store.Append(card("a"))
	require.NoError(t, err)

	entries := store.Entries()
	entries[0].Content = "mutated"

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.NotEqual(t, "mutated", got.Content)
}

func TestMarshalLedger(t *testing.T) {
	store, _ := newTestStore(t)
	store.Load()
	_, err := store.Append(card("a"))
	require.NoError(t, err)

	data, err := store.MarshalLedger()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  {\n    \"id\": \"a\"")

	empty, err := MarshalLedger(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(empty))
}
