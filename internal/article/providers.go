package article

import (
	"github.com/google/wire"

	"github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/internal/article/repository"
	"github.com/twirth/lagerbestand/pkg/database"
)

// ProvideArticleRepository provides the traced article repository
func ProvideArticleRepository(store *database.Store) domain.ArticleRepository {
	return repository.NewGormArticleRepositoryWithTracing(store)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideArticleRepository,
)
