package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconDownload = "⬇"
	IconDelete   = "🗑"
	IconQuill    = "✒"
	IconFlame    = "🔥"
	IconLedger   = "📜"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
	FolioPrefix        = "No. "
)

// Layout sizing
const (
	ThumbnailSize float32 = 96
	SwatchWidth   float32 = 6

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 104

	EditorMinHeight float32 = 220
	PreviewWidth    float32 = 336
	PreviewHeight   float32 = 392

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 440
)

// Notice behavior
const (
	SuccessNoticeDuration = 3 * time.Second
	NotificationAutoHide  = 5 * time.Second
)

// Debounce durations
const (
	PreviewDebounce = 300 * time.Millisecond
)

// Preview rendering
const (
	PreviewScale = 1.0
)
