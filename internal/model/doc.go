package model

// Package model defines domain data structures used across the app: card style
// presets, saved cards, and the screens of the main window. Structures are plain
// values so they can be persisted as-is and handed to the UI without copying logic.
