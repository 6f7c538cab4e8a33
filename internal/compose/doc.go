package compose

// Package compose implements "document and save": it renders the card being
// edited, records it in history and writes the image file. Only one run may be
// in flight at a time.
