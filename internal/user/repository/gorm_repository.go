package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

// GormUserRepository implements UserRepository over the embedded store.
type GormUserRepository struct {
	store *database.Store
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(store *database.Store) *GormUserRepository {
	return &GormUserRepository{store: store}
}

func (r *GormUserRepository) Create(user *domain.User) error {
	if err := r.store.DB().Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *GormUserRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	if err := r.store.DB().Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *GormUserRepository) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	if err := r.store.DB().Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindAll returns every user ordered by username ascending.
func (r *GormUserRepository) FindAll() ([]domain.User, error) {
	var users []domain.User
	if err := r.store.DB().Order("username ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *GormUserRepository) Update(user *domain.User) error {
	if err := r.store.DB().Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (r *GormUserRepository) Delete(id string) error {
	if err := r.store.DB().Where("id = ?", id).Delete(&domain.User{}).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	if err := r.store.DB().Model(&domain.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
