package platform

// Package platform contains OS/platform integration: filesystem helpers for
// exported files, the default export directory, and OS open/reveal.
