package repository

import (
	"fmt"

	"github.com/twirth/lagerbestand/internal/booking/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

// GormBookingRepository implements BookingRepository over the embedded store.
type GormBookingRepository struct {
	store *database.Store
}

// NewGormBookingRepository creates a new GORM booking repository
func NewGormBookingRepository(store *database.Store) *GormBookingRepository {
	return &GormBookingRepository{store: store}
}

func (r *GormBookingRepository) Create(booking *domain.StockBooking) error {
	if err := r.store.DB().Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// FindAll returns every booking, newest first.
func (r *GormBookingRepository) FindAll() ([]domain.StockBooking, error) {
	var bookings []domain.StockBooking
	if err := r.store.DB().Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *GormBookingRepository) Count() (int64, error) {
	var count int64
	if err := r.store.DB().Model(&domain.StockBooking{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
