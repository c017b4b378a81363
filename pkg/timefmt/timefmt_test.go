package timefmt

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	ts := time.Date(2025, time.January, 21, 14, 30, 5, 0, time.UTC)
	if got := Date(ts); got != "2025-01-21" {
		t.Fatalf("Date: got %q, want %q", got, "2025-01-21")
	}
}

func TestDisplay(t *testing.T) {
	ts := time.Date(2025, time.January, 21, 14, 30, 5, 0, time.UTC)
	if got := Display(ts); got != "21.01.2025, 14:30:05" {
		t.Fatalf("Display: got %q, want %q", got, "21.01.2025, 14:30:05")
	}
}
