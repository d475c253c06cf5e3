// Package assets provides the stylesheet used to render invoices.
// A full stylesheet is embedded in the binary so rendering can never
// fail purely because an external style file is missing or unreadable.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"os"
)

//go:embed styles/invoice.css
var styles embed.FS

// ErrStyleLoad indicates the external stylesheet could not be read.
// Callers are expected to warn and continue with the fallback; this
// error is never fatal.
var ErrStyleLoad = errors.New("failed to load stylesheet")

// FallbackStyle returns the embedded invoice stylesheet.
func FallbackStyle() string {
	content, err := styles.ReadFile("styles/invoice.css")
	if err != nil {
		// Unreachable short of a broken build; embed guarantees presence.
		panic(fmt.Sprintf("assets: embedded stylesheet missing: %v", err))
	}
	return string(content)
}

// LoadStyle reads an external stylesheet file. If path is empty or the
// file cannot be read, it returns the embedded fallback along with a
// non-nil advisory error describing why the external file was not used
// (nil error when path is empty: no external style was requested).
func LoadStyle(path string) (string, error) {
	if path == "" {
		return FallbackStyle(), nil
	}

	content, err := os.ReadFile(path) // #nosec G304 -- user-provided style path
	if err != nil {
		return FallbackStyle(), fmt.Errorf("%w: %v", ErrStyleLoad, err)
	}
	return string(content), nil
}
