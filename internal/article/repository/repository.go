package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

// GormArticleRepository implements ArticleRepository over the embedded store.
type GormArticleRepository struct {
	store *database.Store
}

// NewGormArticleRepository creates a new GORM article repository
func NewGormArticleRepository(store *database.Store) *GormArticleRepository {
	return &GormArticleRepository{store: store}
}

func (r *GormArticleRepository) Create(article *domain.Article) error {
	if err := r.store.DB().Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

func (r *GormArticleRepository) FindByID(id string) (*domain.Article, error) {
	var article domain.Article
	if err := r.store.DB().Where("id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return &article, nil
}

func (r *GormArticleRepository) FindByNumber(articleNumber string) (*domain.Article, error) {
	var article domain.Article
	if err := r.store.DB().Where("article_number = ?", articleNumber).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find article: %w", err)
	}
	return &article, nil
}

// FindAll returns every article ordered by name ascending. The result is
// re-queried fresh on each call; there is no caching layer.
func (r *GormArticleRepository) FindAll() ([]domain.Article, error) {
	var articles []domain.Article
	if err := r.store.DB().Order("name ASC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (r *GormArticleRepository) ExistsByNumber(articleNumber string) (bool, error) {
	var count int64
	if err := r.store.DB().Model(&domain.Article{}).
		Where("article_number = ?", articleNumber).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check article number: %w", err)
	}
	return count > 0, nil
}

func (r *GormArticleRepository) Update(article *domain.Article) error {
	if err := r.store.DB().Save(article).Error; err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	return nil
}

func (r *GormArticleRepository) Delete(id string) error {
	if err := r.store.DB().Where("id = ?", id).Delete(&domain.Article{}).Error; err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	return nil
}

func (r *GormArticleRepository) Count() (int64, error) {
	var count int64
	if err := r.store.DB().Model(&domain.Article{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}
