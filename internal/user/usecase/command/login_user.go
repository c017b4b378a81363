package command

import (
	"fmt"
	"time"

	"github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/pkg/auth"
	"github.com/twirth/lagerbestand/pkg/database"
)

// LoginUserCommand represents the command to authenticate a user
type LoginUserCommand struct {
	Username string
	Password string
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// LoginUserHandler handles user authentication
type LoginUserHandler struct {
	repo  domain.UserRepository
	store *database.Store
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository, store *database.Store) *LoginUserHandler {
	return &LoginUserHandler{repo: repo, store: store}
}

// Handle executes the login command. Only active users with matching
// credentials succeed; on success the last login time is updated and
// persisted as a side effect. A failed attempt changes no state. The
// credential read and the last-login write run as one logical operation
// under the store lock.
func (h *LoginUserHandler) Handle(cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if cmd.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	h.store.Lock()
	defer h.store.Unlock()

	user, err := h.repo.FindByUsername(cmd.Username)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, cmd.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := h.repo.Update(user); err != nil {
		return nil, err
	}
	if err := h.store.Persist(); err != nil {
		return nil, err
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{Token: token, User: user}, nil
}
