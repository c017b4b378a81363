package command

import (
	"errors"
	"fmt"

	"github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/pkg/auth"
	"github.com/twirth/lagerbestand/pkg/database"
)

// UpdateUserCommand represents the command to update a user. An empty
// password keeps the existing credential.
type UpdateUserCommand struct {
	ID        string
	Username  string
	Password  string
	Role      string
	Email     string
	FirstName string
	LastName  string
	IsActive  bool
}

// UpdateUserHandler handles user updates
type UpdateUserHandler struct {
	repo  domain.UserRepository
	store *database.Store
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository, store *database.Store) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo, store: store}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if !domain.ValidRole(cmd.Role) {
		return nil, fmt.Errorf("%w: invalid role %q", domain.ErrValidation, cmd.Role)
	}

	h.store.Lock()
	defer h.store.Unlock()

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Username != user.Username {
		if _, err := h.repo.FindByUsername(cmd.Username); err == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, cmd.Username)
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}

	user.Username = cmd.Username
	user.Role = cmd.Role
	user.Email = cmd.Email
	user.FirstName = cmd.FirstName
	user.LastName = cmd.LastName
	user.IsActive = cmd.IsActive

	if cmd.Password != "" {
		hash, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hash
	}

	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	if err := h.store.Persist(); err != nil {
		return nil, err
	}

	return user, nil
}
