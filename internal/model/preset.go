package model

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a preset colour is not in #RRGGBB form
var ErrInvalidColor = errors.New("invalid color")

// FontFamily selects the typeface a preset renders its text with
type FontFamily string

const (
	// FontSerif is the default book face
	FontSerif FontFamily = "serif"

	// FontUrdu selects the configured script font for Nastaliq/Naskh text
	FontUrdu FontFamily = "urdu"
)

// Preset is a named set of colours and typography used to style a card
type Preset struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Language    string
	Background  string // #RRGGBB
	Text        string // #RRGGBB
	Accent      string // #RRGGBB
	Font        FontFamily
	Hidden      bool
}

// Visible reports whether the preset is offered in the preset picker
func (p Preset) Visible() bool {
	return !p.Hidden
}

// BackgroundColor returns the parsed background colour
func (p Preset) BackgroundColor() color.NRGBA {
	return mustColor(p.Background)
}

// TextColor returns the parsed text colour
func (p Preset) TextColor() color.NRGBA {
	return mustColor(p.Text)
}

// AccentColor returns the parsed accent colour
func (p Preset) AccentColor() color.NRGBA {
	return mustColor(p.Accent)
}

// Validate checks that the preset has an id and well-formed colours
func (p Preset) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("preset %q: empty id", p.Name)
	}
	for _, c := range []string{p.Background, p.Text, p.Accent} {
		if _, err := ParseHexColor(c); err != nil {
			return fmt.Errorf("preset %s: %w", p.ID, err)
		}
	}
	switch p.Font {
	case "", FontSerif, FontUrdu:
	default:
		return fmt.Errorf("preset %s: unknown font %q", p.ID, p.Font)
	}
	return nil
}

// ParseHexColor parses a #RRGGBB (or #RGB) string into an opaque colour
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// mustColor falls back to black for malformed values; presets are validated on load
func mustColor(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return c
}
