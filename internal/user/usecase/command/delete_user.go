package command

import (
	"github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

// DeleteUserCommand represents the command to delete a user
type DeleteUserCommand struct {
	ID string
}

// DeleteUserHandler handles user deletion. Preventing self-deletion is the
// caller's responsibility, not enforced here.
type DeleteUserHandler struct {
	repo  domain.UserRepository
	store *database.Store
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository, store *database.Store) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo, store: store}
}

// Handle executes the delete user command
func (h *DeleteUserHandler) Handle(cmd DeleteUserCommand) error {
	h.store.Lock()
	defer h.store.Unlock()

	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return err
	}
	return h.store.Persist()
}
