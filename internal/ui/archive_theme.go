package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ArchiveTheme is a paper-and-ink theme matching the exported cards
type ArchiveTheme struct{}

// NewArchiveTheme creates a new archive theme
func NewArchiveTheme() fyne.Theme {
	return &ArchiveTheme{}
}

// Color returns theme colors
func (t *ArchiveTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 0x4A, G: 0x6B, B: 0x3A, A: 0xFF} // moss
	case theme.ColorNameError:
		return color.NRGBA{R: 0x8B, G: 0x1E, B: 0x1E, A: 0xFF} // oxblood
	case theme.ColorNameWarning:
		return color.NRGBA{R: 0xB7, G: 0x79, B: 0x1F, A: 0xFF} // ochre
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x5C, G: 0x40, B: 0x33, A: 0xFF} // sepia
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x1C, G: 0x19, B: 0x17, A: 0xFF}
		}
		return color.NRGBA{R: 0xF4, G: 0xEF, B: 0xE6, A: 0xFF} // parchment
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0xEE, G: 0xE8, B: 0xDC, A: 0xFF}
		}
		return color.NRGBA{R: 0x2B, G: 0x24, B: 0x1F, A: 0xFF} // ink
	case theme.ColorNameInputBackground:
		if variant == theme.VariantDark {
			return color.NRGBA{R: 0x29, G: 0x25, B: 0x22, A: 0xFF}
		}
		return color.NRGBA{R: 0xFB, G: 0xF8, B: 0xF2, A: 0xFF}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *ArchiveTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ArchiveTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ArchiveTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 5
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 17
	case theme.SizeNameInputRadius:
		return 2
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
