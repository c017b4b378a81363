package query

import (
	"github.com/twirth/lagerbestand/internal/article/domain"
)

// GetArticleQuery represents the query for a single article by number
type GetArticleQuery struct {
	ArticleNumber string
}

// GetArticleHandler handles the get article query
type GetArticleHandler struct {
	repo domain.ArticleRepository
}

// NewGetArticleHandler creates a new get article handler
func NewGetArticleHandler(repo domain.ArticleRepository) *GetArticleHandler {
	return &GetArticleHandler{repo: repo}
}

// Handle executes the get article query
func (h *GetArticleHandler) Handle(query GetArticleQuery) (*domain.Article, error) {
	return h.repo.FindByNumber(query.ArticleNumber)
}
