package ui

// Package ui contains the Fyne-based desktop user interface for Muse.
// RootUI owns a Navigator and swaps between the archive, the composer and the
// settings screen. Long-running work (rendering, exporting) happens off the event
// goroutine and results come back through fyne.Do. All UI strings are localized
// via Localization.
