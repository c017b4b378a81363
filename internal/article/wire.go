//go:build wireinject
// +build wireinject

package article

import (
	"github.com/google/wire"

	"github.com/twirth/lagerbestand/internal/activity"
	"github.com/twirth/lagerbestand/internal/article/delivery/http"
	"github.com/twirth/lagerbestand/internal/article/usecase/command"
	"github.com/twirth/lagerbestand/internal/article/usecase/query"
	"github.com/twirth/lagerbestand/pkg/database"
)

// InitializeHTTPHandler initializes the article HTTP handler with all dependencies
func InitializeHTTPHandler(store *database.Store) (*http.ArticleHandler, error) {
	wire.Build(
		ProvideArticleRepository,
		activity.ProvideRecorder,
		command.NewCreateArticleHandler,
		command.NewUpdateArticleHandler,
		command.NewDeleteArticleHandler,
		query.NewListArticlesHandler,
		query.NewGetArticleHandler,
		http.NewArticleHandler,
	)
	return nil, nil
}
