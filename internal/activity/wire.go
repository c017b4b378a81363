//go:build wireinject
// +build wireinject

package activity

import (
	"github.com/google/wire"

	"github.com/twirth/lagerbestand/internal/activity/delivery/http"
	"github.com/twirth/lagerbestand/internal/activity/usecase/query"
	"github.com/twirth/lagerbestand/pkg/database"
)

// InitializeHTTPHandler initializes the activity HTTP handler with all dependencies
func InitializeHTTPHandler(store *database.Store) (*http.ActivityHandler, error) {
	wire.Build(
		ProvideActivityRepository,
		query.NewRecentActivitiesHandler,
		http.NewActivityHandler,
	)
	return nil, nil
}
