package idgen

import (
	"strings"
	"testing"
)

func TestNewFormat(t *testing.T) {
	id := New()

	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		t.Fatalf("id %q has no timestamp-suffix separator", id)
	}
	if len(parts[1]) != 8 {
		t.Fatalf("id suffix %q: got %d chars, want 8", parts[1], len(parts[1]))
	}
}

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := New()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
