package query

import (
	"fmt"

	"github.com/twirth/lagerbestand/internal/user/domain"
)

// ListUsersHandler handles the list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle returns all users ordered by username.
func (h *ListUsersHandler) Handle() ([]domain.User, error) {
	users, err := h.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
