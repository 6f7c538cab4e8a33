// Package fontfit picks a text size for a card from the length of its content.
// Longer text gets a smaller tier so that it still fits the square quote area.
package fontfit

import (
	"regexp"
	"unicode/utf8"
)

// Tier is one of the discrete text-size buckets, Tier0 being the largest
type Tier int

const (
	Tier0 Tier = iota
	Tier1
	Tier2
	Tier3
	Tier4
	Tier5
	Tier6
	Tier7
	Tier8
	Tier9
	Tier10
)

// TierCount is the number of size buckets
const TierCount = 11

// upperBounds are exclusive length limits for Tier1..Tier9; Tier0 is reserved
// for empty text and anything at or above the last bound is Tier10.
var upperBounds = [...]int{60, 150, 300, 600, 1000, 1500, 2000, 2500, 3000}

// pixelSizes are logical text sizes per tier
var pixelSizes = [TierCount]float64{48, 36, 30, 24, 20, 18, 16, 14, 12, 9, 8}

var markupTag = regexp.MustCompile(`<[^>]*>`)

// FitTier maps a plain-text length to a size tier. Negative lengths count as 0.
func FitTier(length int) Tier {
	if length <= 0 {
		return Tier0
	}
	for i, bound := range upperBounds {
		if length < bound {
			return Tier(i + 1)
		}
	}
	return Tier10
}

// StripMarkup removes every tag-delimited segment from s
func StripMarkup(s string) string {
	return markupTag.ReplaceAllString(s, "")
}

// PlainLength returns the number of characters left after stripping markup
func PlainLength(markup string) int {
	return utf8.RuneCountInString(StripMarkup(markup))
}

// TierFor returns the size tier for a markup string
func TierFor(markup string) Tier {
	return FitTier(PlainLength(markup))
}

// PixelSize returns the logical text size of the tier
func (t Tier) PixelSize() float64 {
	if t < Tier0 {
		t = Tier0
	}
	if t > Tier10 {
		t = Tier10
	}
	return pixelSizes[t]
}
