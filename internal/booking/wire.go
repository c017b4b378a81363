//go:build wireinject
// +build wireinject

package booking

import (
	"github.com/google/wire"

	"github.com/twirth/lagerbestand/internal/activity"
	"github.com/twirth/lagerbestand/internal/article"
	"github.com/twirth/lagerbestand/internal/booking/delivery/http"
	"github.com/twirth/lagerbestand/internal/booking/usecase/command"
	"github.com/twirth/lagerbestand/internal/booking/usecase/query"
	"github.com/twirth/lagerbestand/pkg/database"
)

// InitializeHTTPHandler initializes the booking HTTP handler with all dependencies
func InitializeHTTPHandler(store *database.Store) (*http.BookingHandler, error) {
	wire.Build(
		article.ProvideArticleRepository,
		ProvideBookingRepository,
		activity.ProvideRecorder,
		command.NewCreateBookingHandler,
		query.NewListBookingsHandler,
		http.NewBookingHandler,
	)
	return nil, nil
}
