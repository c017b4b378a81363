package query

import (
	"fmt"

	"github.com/twirth/lagerbestand/internal/article/domain"
)

// ListArticlesHandler handles the list articles query
type ListArticlesHandler struct {
	repo domain.ArticleRepository
}

// NewListArticlesHandler creates a new list articles handler
func NewListArticlesHandler(repo domain.ArticleRepository) *ListArticlesHandler {
	return &ListArticlesHandler{repo: repo}
}

// Handle returns all articles ordered by name.
func (h *ListArticlesHandler) Handle() ([]domain.Article, error) {
	articles, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}
