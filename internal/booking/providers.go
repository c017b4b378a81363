package booking

import (
	"github.com/google/wire"

	"github.com/twirth/lagerbestand/internal/booking/domain"
	"github.com/twirth/lagerbestand/internal/booking/repository"
	"github.com/twirth/lagerbestand/pkg/database"
)

// ProvideBookingRepository provides the traced booking repository
func ProvideBookingRepository(store *database.Store) domain.BookingRepository {
	return repository.NewGormBookingRepositoryWithTracing(store)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideBookingRepository,
)
