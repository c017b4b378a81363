package query

import (
	"fmt"

	"github.com/twirth/lagerbestand/internal/activity/domain"
)

// RecentActivitiesQuery represents the query for the newest audit entries
type RecentActivitiesQuery struct {
	Limit int
}

// RecentActivitiesHandler handles the recent activities query
type RecentActivitiesHandler struct {
	repo domain.ActivityRepository
}

// NewRecentActivitiesHandler creates a new recent activities handler
func NewRecentActivitiesHandler(repo domain.ActivityRepository) *RecentActivitiesHandler {
	return &RecentActivitiesHandler{repo: repo}
}

// Handle executes the recent activities query
func (h *RecentActivitiesHandler) Handle(query RecentActivitiesQuery) ([]domain.Entry, error) {
	entries, err := h.repo.Recent(query.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}
	return entries, nil
}
