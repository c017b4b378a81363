package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

var _ domain.ArticleRepository = (*GormArticleRepositoryWithTracing)(nil)

func setupTraced(t *testing.T) *GormArticleRepositoryWithTracing {
	t.Helper()

	store, err := database.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.DB().AutoMigrate(&domain.Article{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return NewGormArticleRepositoryWithTracing(store)
}

func TestTracedRepositoryPassesThrough(t *testing.T) {
	repo := setupTraced(t)
	ctx := context.Background()

	article := &domain.Article{
		ID:            "1",
		ArticleNumber: "SCR-M8-20",
		Name:          "Schrauben M8x20",
		CurrentStock:  150,
		MinimumStock:  50,
	}
	if err := repo.CreateWithContext(ctx, article); err != nil {
		t.Fatalf("CreateWithContext: %v", err)
	}

	found, err := repo.FindByNumberWithContext(ctx, "SCR-M8-20")
	if err != nil {
		t.Fatalf("FindByNumberWithContext: %v", err)
	}
	if found.Name != "Schrauben M8x20" {
		t.Errorf("found %q", found.Name)
	}

	found.CurrentStock = 30
	if err := repo.UpdateWithContext(ctx, found); err != nil {
		t.Fatalf("UpdateWithContext: %v", err)
	}
	again, err := repo.FindByNumber("SCR-M8-20")
	if err != nil {
		t.Fatal(err)
	}
	if again.CurrentStock != 30 {
		t.Errorf("stock after traced update: %d", again.CurrentStock)
	}

	if err := repo.DeleteWithContext(ctx, "1"); err != nil {
		t.Fatalf("DeleteWithContext: %v", err)
	}
	if _, err := repo.FindByNumberWithContext(ctx, "SCR-M8-20"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("after traced delete: got %v, want ErrNotFound", err)
	}
}
