package render

// Package render composes a quote card from markup and a preset and rasterizes it
// to an image. Text is set with the Go fonts (golang.org/x/image/font/gofont); an
// optional TrueType/OpenType file can be configured for script presets. Fonts load
// in the background and every render waits for them first.
