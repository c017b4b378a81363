package query

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/internal/article/repository"
	"github.com/twirth/lagerbestand/pkg/database"
)

func setup(t *testing.T) domain.ArticleRepository {
	t.Helper()

	store, err := database.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.DB().AutoMigrate(&domain.Article{}); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}

	repo := repository.NewGormArticleRepository(store)
	for _, a := range []domain.Article{
		{ID: "1", ArticleNumber: "MUT-M8-STD", Name: "Muttern M8", CurrentStock: 320, MinimumStock: 100},
		{ID: "2", ArticleNumber: "DIC-STD-01", Name: "Dichtungsringe", CurrentStock: 25, MinimumStock: 100},
		{ID: "3", ArticleNumber: "SCR-M8-20", Name: "Schrauben M8x20", CurrentStock: 150, MinimumStock: 50},
	} {
		article := a
		if err := repo.Create(&article); err != nil {
			t.Fatal(err)
		}
	}
	return repo
}

func TestListArticlesSortedByName(t *testing.T) {
	repo := setup(t)

	articles, err := NewListArticlesHandler(repo).Handle()
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(articles) != 3 {
		t.Fatalf("got %d articles", len(articles))
	}

	want := []string{"Dichtungsringe", "Muttern M8", "Schrauben M8x20"}
	for i, name := range want {
		if articles[i].Name != name {
			t.Errorf("position %d: got %q, want %q", i, articles[i].Name, name)
		}
	}
}

func TestGetArticle(t *testing.T) {
	repo := setup(t)
	handler := NewGetArticleHandler(repo)

	article, err := handler.Handle(GetArticleQuery{ArticleNumber: "DIC-STD-01"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if article.Name != "Dichtungsringe" {
		t.Errorf("got %q", article.Name)
	}
	if !article.BelowMinimum() {
		t.Error("25 of minimum 100 not reported below minimum")
	}

	if _, err := handler.Handle(GetArticleQuery{ArticleNumber: "NO-SUCH-ART"}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing article: got %v, want ErrNotFound", err)
	}
}
