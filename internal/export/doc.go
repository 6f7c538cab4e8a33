package export

// Package export writes user-visible files: card images and the JSON ledger of
// the whole history. File names carry a timestamp so repeated exports don't clash.
