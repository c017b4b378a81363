package repository

import (
	"fmt"

	"github.com/twirth/lagerbestand/internal/activity/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

// GormActivityRepository implements ActivityRepository over the embedded store.
type GormActivityRepository struct {
	store *database.Store
}

// NewGormActivityRepository creates a new GORM activity repository
func NewGormActivityRepository(store *database.Store) *GormActivityRepository {
	return &GormActivityRepository{store: store}
}

func (r *GormActivityRepository) Append(entry *domain.Entry) error {
	if err := r.store.DB().Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}
	return nil
}

// Recent returns the newest entries first, capped at DefaultLimit.
func (r *GormActivityRepository) Recent(limit int) ([]domain.Entry, error) {
	if limit <= 0 || limit > domain.DefaultLimit {
		limit = domain.DefaultLimit
	}

	var entries []domain.Entry
	if err := r.store.DB().
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity entries: %w", err)
	}
	return entries, nil
}

func (r *GormActivityRepository) Count() (int64, error) {
	var count int64
	if err := r.store.DB().Model(&domain.Entry{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count activity entries: %w", err)
	}
	return count, nil
}
