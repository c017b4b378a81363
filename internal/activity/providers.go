package activity

import (
	"github.com/google/wire"

	"github.com/twirth/lagerbestand/internal/activity/domain"
	"github.com/twirth/lagerbestand/internal/activity/repository"
	"github.com/twirth/lagerbestand/pkg/database"
)

// ProvideActivityRepository provides the activity repository
func ProvideActivityRepository(store *database.Store) domain.ActivityRepository {
	return repository.NewGormActivityRepository(store)
}

// ProvideRecorder provides the audit recorder used by mutating use cases
func ProvideRecorder(store *database.Store) *Recorder {
	return NewRecorder(repository.NewGormActivityRepository(store))
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideActivityRepository,
	ProvideRecorder,
)
