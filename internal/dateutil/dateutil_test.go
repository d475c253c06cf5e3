package dateutil

import (
	"testing"
	"time"
)

func TestStamp(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)
	if got := Stamp(fixed); got != "20250601" {
		t.Errorf("Stamp() = %q, want %q", got, "20250601")
	}
}

func TestDisplay(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := Display(fixed); got != "2025-06-01" {
		t.Errorf("Display() = %q, want %q", got, "2025-06-01")
	}
}
