package history

// Package history owns the saved-card log. The whole log is stored as one JSON
// array under a single preferences key and is rewritten on every mutation.
