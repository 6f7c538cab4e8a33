package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Editor share of the split on desktop
const SplitOffset = 0.45

// isMobileDevice checks if the app is running on a phone or tablet
func isMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// isPortrait reports whether a mobile device is held upright
func isPortrait() bool {
	o := fyne.CurrentDevice().Orientation()
	return o == fyne.OrientationVertical || o == fyne.OrientationVerticalUpsideDown
}

// sideBySide places primary next to secondary on desktop and in landscape,
// and stacks them in one scroll on portrait mobile screens
func sideBySide(primary, secondary fyne.CanvasObject) fyne.CanvasObject {
	if isMobileDevice() && isPortrait() {
		return container.NewVScroll(container.NewVBox(primary, secondary))
	}
	split := container.NewHSplit(container.NewVScroll(primary), container.NewVScroll(secondary))
	split.Offset = SplitOffset
	return split
}
