//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"

	"github.com/twirth/lagerbestand/internal/user/delivery/http"
	"github.com/twirth/lagerbestand/internal/user/usecase/command"
	"github.com/twirth/lagerbestand/internal/user/usecase/query"
	"github.com/twirth/lagerbestand/pkg/database"
)

// InitializeHTTPHandler initializes the user HTTP handler with all dependencies
func InitializeHTTPHandler(store *database.Store) (*http.UserHandler, error) {
	wire.Build(
		ProvideUserRepository,
		command.NewLoginUserHandler,
		command.NewCreateUserHandler,
		command.NewUpdateUserHandler,
		command.NewDeleteUserHandler,
		query.NewListUsersHandler,
		http.NewUserHandler,
	)
	return nil, nil
}
