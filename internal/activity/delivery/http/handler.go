package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/twirth/lagerbestand/internal/activity/usecase/query"
	"github.com/twirth/lagerbestand/pkg/logger"
)

// ActivityHandler handles HTTP requests for the activity log
type ActivityHandler struct {
	recentHandler *query.RecentActivitiesHandler
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(recentHandler *query.RecentActivitiesHandler) *ActivityHandler {
	return &ActivityHandler{recentHandler: recentHandler}
}

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ListActivities handles GET /api/activities
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.recentHandler.Handle(query.RecentActivitiesQuery{Limit: limit})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list activities")
		respondJSON(w, http.StatusInternalServerError, Response{Success: false, Error: "Failed to list activities"})
		return
	}

	respondJSON(w, http.StatusOK, Response{Success: true, Data: entries})
}

// RegisterRoutes registers all activity routes
func (h *ActivityHandler) RegisterRoutes(router *mux.Router, authorize func(http.HandlerFunc) http.HandlerFunc) {
	router.HandleFunc("/api/activities", authorize(h.ListActivities)).Methods("GET")
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
