package query

import (
	"fmt"

	"github.com/twirth/lagerbestand/internal/booking/domain"
)

// ListBookingsHandler handles the list bookings query
type ListBookingsHandler struct {
	repo domain.BookingRepository
}

// NewListBookingsHandler creates a new list bookings handler
func NewListBookingsHandler(repo domain.BookingRepository) *ListBookingsHandler {
	return &ListBookingsHandler{repo: repo}
}

// Handle returns all bookings, newest first.
func (h *ListBookingsHandler) Handle() ([]domain.StockBooking, error) {
	bookings, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
