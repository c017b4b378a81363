package activity

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/twirth/lagerbestand/internal/activity/domain"
	"github.com/twirth/lagerbestand/internal/activity/repository"
	"github.com/twirth/lagerbestand/pkg/database"
)

func setup(t *testing.T) (*database.Store, domain.ActivityRepository) {
	t.Helper()

	store, err := database.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.DB().AutoMigrate(&domain.Entry{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return store, repository.NewGormActivityRepository(store)
}

func TestRecorderDefaultsUserToSystem(t *testing.T) {
	_, repo := setup(t)
	recorder := NewRecorder(repo)

	if err := recorder.Append(Record{
		Type:          domain.TypeCreate,
		ArticleNumber: "SCR-M8-20",
		ArticleName:   "Schrauben M8x20",
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, err := repo.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].User != "System" {
		t.Errorf("user: got %q, want System", entries[0].User)
	}
	if entries[0].ID == "" || entries[0].Timestamp == "" {
		t.Errorf("id or timestamp missing: %+v", entries[0])
	}
}

func TestRecorderEncodesDetails(t *testing.T) {
	_, repo := setup(t)
	recorder := NewRecorder(repo)

	if err := recorder.Append(Record{
		Type:          domain.TypeUpdate,
		ArticleNumber: "SCR-M8-20",
		User:          "admin",
		Details:       map[string]interface{}{"oldStock": 150, "newStock": 30},
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	entries, err := repo.Recent(1)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(entries[0].Details, `"oldStock":150`) {
		t.Errorf("details: %q", entries[0].Details)
	}
}

func TestRecentOrdersNewestFirstAndCapsLimit(t *testing.T) {
	_, repo := setup(t)

	base := time.Date(2025, time.January, 21, 12, 0, 0, 0, time.UTC)
	for i := 0; i < domain.DefaultLimit+20; i++ {
		entry := &domain.Entry{
			ID:        fmt.Sprintf("e-%03d", i),
			Type:      domain.TypeIn,
			User:      "admin",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}
		if err := repo.Append(entry); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := repo.Recent(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != domain.DefaultLimit {
		t.Fatalf("got %d entries, want cap %d", len(entries), domain.DefaultLimit)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].CreatedAt.After(entries[i-1].CreatedAt) {
			t.Fatalf("entries not newest first at index %d", i)
		}
	}

	// An oversized limit is capped too.
	entries, err = repo.Recent(10000)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != domain.DefaultLimit {
		t.Fatalf("oversized limit: got %d entries, want %d", len(entries), domain.DefaultLimit)
	}

	entries, err = repo.Recent(5)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 5 {
		t.Fatalf("explicit limit: got %d entries, want 5", len(entries))
	}
}
