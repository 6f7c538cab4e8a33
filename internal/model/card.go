package model

import (
	"time"
	"unicode/utf8"
)

// Display formats
const (
	DisplayDateLayout = "January 2, 2006"
	FolioDigits       = 4
)

// SavedCard is one persisted unit of user content plus its exported image.
// JSON names are kept stable so previously stored history keeps loading.
type SavedCard struct {
	ID        string `json:"id"`
	Content   string `json:"content"`            // rich text markup
	PresetID  string `json:"collectionId"`       // may dangle if a preset is removed
	CreatedAt string `json:"createdAt"`          // ISO-8601
	ImageData string `json:"imageUrl,omitempty"` // data:image/png;base64,...
}

// HasImage reports whether the card carries an embedded image
func (c SavedCard) HasImage() bool {
	return c.ImageData != ""
}

// FolioNumber returns the last few characters of the id, used as a short label
func (c SavedCard) FolioNumber() string {
	n := utf8.RuneCountInString(c.ID)
	if n <= FolioDigits {
		return c.ID
	}
	runes := []rune(c.ID)
	return string(runes[n-FolioDigits:])
}

// CreatedTime parses CreatedAt; the zero time is returned for malformed values
func (c SavedCard) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339Nano, c.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DisplayDate returns the creation date as e.g. "March 4, 2025", or "" if unknown
func (c SavedCard) DisplayDate() string {
	t := c.CreatedTime()
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(DisplayDateLayout)
}
