package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	articledomain "github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/internal/booking/domain"
	"github.com/twirth/lagerbestand/internal/booking/usecase/command"
	"github.com/twirth/lagerbestand/internal/booking/usecase/query"
	userhttp "github.com/twirth/lagerbestand/internal/user/delivery/http"
	"github.com/twirth/lagerbestand/pkg/logger"
)

// BookingHandler handles HTTP requests for stock bookings
type BookingHandler struct {
	createHandler *command.CreateBookingHandler
	listHandler   *query.ListBookingsHandler

	bookingsTotal *prometheus.CounterVec
	stockLevel    *prometheus.GaugeVec
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(
	createHandler *command.CreateBookingHandler,
	listHandler *query.ListBookingsHandler,
) *BookingHandler {
	bookingsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_bookings_total",
			Help: "Total number of applied stock bookings by type",
		},
		[]string{"type"},
	)

	stockLevel := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ledger_article_stock",
			Help: "Current stock level per article after its last booking",
		},
		[]string{"article_number"},
	)

	prometheus.MustRegister(bookingsTotal)
	prometheus.MustRegister(stockLevel)

	return &BookingHandler{
		createHandler: createHandler,
		listHandler:   listHandler,
		bookingsTotal: bookingsTotal,
		stockLevel:    stockLevel,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// CreateBooking handles POST /api/bookings
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type          string `json:"type"`
		ArticleNumber string `json:"article_number"`
		Quantity      int    `json:"quantity"`
		Reason        string `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{Success: false, Error: "Invalid request body"})
		return
	}

	booking, err := h.createHandler.Handle(r.Context(), command.CreateBookingCommand{
		Type:          req.Type,
		ArticleNumber: req.ArticleNumber,
		Quantity:      req.Quantity,
		Reason:        req.Reason,
		User:          userhttp.ActorFromContext(r.Context()),
	})
	if err != nil {
		logger.Warn(r.Context()).
			Err(err).
			Str("article_number", req.ArticleNumber).
			Str("type", req.Type).
			Msg("Booking rejected")
		respondJSON(w, bookingStatus(err), Response{Success: false, Error: err.Error()})
		return
	}

	h.bookingsTotal.WithLabelValues(booking.Type).Inc()
	h.stockLevel.WithLabelValues(booking.ArticleNumber).Set(float64(booking.NewStock))

	respondJSON(w, http.StatusCreated, Response{Success: true, Message: "Booking applied successfully", Data: booking})
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.listHandler.Handle()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list bookings")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list bookings"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: bookings})
}

// RegisterRoutes registers all booking routes
func (h *BookingHandler) RegisterRoutes(router *mux.Router, authorize func(http.HandlerFunc) http.HandlerFunc) {
	router.HandleFunc("/api/bookings", authorize(h.ListBookings)).Methods("GET")
	router.HandleFunc("/api/bookings", authorize(h.CreateBooking)).Methods("POST")
}

func bookingStatus(err error) int {
	switch {
	case errors.Is(err, articledomain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
