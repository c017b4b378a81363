package user

import (
	"github.com/google/wire"

	"github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/internal/user/repository"
	"github.com/twirth/lagerbestand/pkg/database"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(store *database.Store) domain.UserRepository {
	return repository.NewGormUserRepository(store)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)
