package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/pkg/auth"
	"github.com/twirth/lagerbestand/pkg/database"
	"github.com/twirth/lagerbestand/pkg/idgen"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Username  string
	Password  string
	Role      string
	Email     string
	FirstName string
	LastName  string
	IsActive  bool
}

// CreateUserHandler handles user creation
type CreateUserHandler struct {
	repo  domain.UserRepository
	store *database.Store
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository, store *database.Store) *CreateUserHandler {
	return &CreateUserHandler{repo: repo, store: store}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(cmd CreateUserCommand) (*domain.User, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	if !domain.ValidRole(cmd.Role) {
		return nil, fmt.Errorf("%w: invalid role %q", domain.ErrValidation, cmd.Role)
	}

	h.store.Lock()
	defer h.store.Unlock()

	if _, err := h.repo.FindByUsername(cmd.Username); err == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateUsername, cmd.Username)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:        idgen.New(),
		Username:  cmd.Username,
		Password:  hash,
		Role:      cmd.Role,
		Email:     cmd.Email,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		IsActive:  cmd.IsActive,
		CreatedAt: time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, err
	}
	if err := h.store.Persist(); err != nil {
		return nil, err
	}

	return user, nil
}
