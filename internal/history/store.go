package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/ytget/muse/internal/model"
)

// StorageKey is the preferences key holding the serialized log. It matches the
// key used by earlier releases so existing history keeps loading.
const StorageKey = "muse_saved_quotes_v3"

var (
	// ErrDuplicateID is returned when appending a card whose id is already logged
	ErrDuplicateID = errors.New("card id already in history")

	// ErrEmptyID is returned when appending a card without an id
	ErrEmptyID = errors.New("card id is empty")
)

// Preferences is the key/value storage the log is persisted in.
// fyne.Preferences satisfies it.
type Preferences interface {
	String(key string) string
	SetString(key string, value string)
	RemoveValue(key string)
}

// Log is the ordered list of saved cards, newest first
type Log []model.SavedCard

// IDs returns the card ids in log order
func (l Log) IDs() []string {
	ids := make([]string, len(l))
	for i, c := range l {
		ids[i] = c.ID
	}
	return ids
}

// Store is the single owner of the history log
type Store struct {
	prefs   Preferences
	entries Log
	loadErr error
	mu      sync.RWMutex
}

// NewStore creates a store backed by prefs. Call Load before use.
func NewStore(prefs Preferences) *Store {
	return &Store{prefs: prefs}
}

// Load reads the persisted log. A missing value yields an empty log; an
// unparsable one yields an empty log too and the failure is logged and kept
// in LoadErr rather than returned.
func (s *Store) Load() Log {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = nil
	s.loadErr = nil

	raw := s.prefs.String(StorageKey)
	if raw == "" {
		return Log{}
	}

	var entries Log
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.loadErr = fmt.Errorf("failed to parse history: %w", err)
		log.Printf("%v", s.loadErr)
		return Log{}
	}

	s.entries = entries
	return s.snapshot()
}

// LoadErr returns the parse failure of the last Load, if any
func (s *Store) LoadErr() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Entries returns a copy of the current log
func (s *Store) Entries() Log {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Len returns the number of saved cards
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Get returns the card with the given id
func (s *Store) Get(id string) (model.SavedCard, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.entries {
		if c.ID == id {
			return c, true
		}
	}
	return model.SavedCard{}, false
}

// Append prepends card to the log and persists the whole log
func (s *Store) Append(card model.SavedCard) (Log, error) {
	if card.ID == "" {
		return s.Entries(), ErrEmptyID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.entries {
		if c.ID == card.ID {
			return s.snapshot(), fmt.Errorf("%w: %s", ErrDuplicateID, card.ID)
		}
	}

	updated := make(Log, 0, len(s.entries)+1)
	updated = append(updated, card)
	updated = append(updated, s.entries...)

	if err := s.persist(updated); err != nil {
		return s.snapshot(), err
	}
	s.entries = updated
	return s.snapshot(), nil
}

// Remove drops every card with the given id and persists the result.
// Removing an unknown id leaves the log unchanged.
func (s *Store) Remove(id string) Log {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := make(Log, 0, len(s.entries))
	for _, c := range s.entries {
		if c.ID != id {
			updated = append(updated, c)
		}
	}

	if len(updated) == len(s.entries) {
		return s.snapshot()
	}

	if err := s.persist(updated); err != nil {
		log.Printf("failed to persist history after removing %s: %v", id, err)
		return s.snapshot()
	}
	s.entries = updated
	return s.snapshot()
}

// Clear erases the persisted value entirely and empties the log
func (s *Store) Clear() Log {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prefs.RemoveValue(StorageKey)
	s.entries = nil
	return Log{}
}

// MarshalLedger returns the whole log as indented JSON
func (s *Store) MarshalLedger() ([]byte, error) {
	return MarshalLedger(s.Entries())
}

// MarshalLedger encodes a log as a two-space indented JSON array
func MarshalLedger(entries Log) ([]byte, error) {
	if entries == nil {
		entries = Log{}
	}
	return json.MarshalIndent(entries, "", "  ")
}

func (s *Store) persist(entries Log) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	s.prefs.SetString(StorageKey, string(data))
	return nil
}

// snapshot copies entries; callers must hold the lock
func (s *Store) snapshot() Log {
	out := make(Log, len(s.entries))
	copy(out, s.entries)
	return out
}
