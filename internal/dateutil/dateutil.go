// Package dateutil centralizes the date layouts used for artifact
// naming and display.
package dateutil

import "time"

// Date layouts.
const (
	// StampLayout is the compact date embedded in artifact filenames.
	StampLayout = "20060102"

	// DisplayLayout is the human-readable date used in footers.
	DisplayLayout = "2006-01-02"
)

// Stamp formats t for embedding in an artifact filename (YYYYMMDD).
func Stamp(t time.Time) string {
	return t.Format(StampLayout)
}

// Display formats t for human-readable output (YYYY-MM-DD).
func Display(t time.Time) string {
	return t.Format(DisplayLayout)
}
