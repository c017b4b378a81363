package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

var tracer = otel.Tracer("article-repository")

// GormArticleRepositoryWithTracing wraps GormArticleRepository with tracing
type GormArticleRepositoryWithTracing struct {
	*GormArticleRepository
}

// NewGormArticleRepositoryWithTracing creates a new repository with tracing
func NewGormArticleRepositoryWithTracing(store *database.Store) *GormArticleRepositoryWithTracing {
	return &GormArticleRepositoryWithTracing{
		GormArticleRepository: NewGormArticleRepository(store),
	}
}

// Create with tracing
func (r *GormArticleRepositoryWithTracing) CreateWithContext(ctx context.Context, article *domain.Article) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("article.number", article.ArticleNumber),
			attribute.String("article.name", article.Name),
		),
	)
	defer span.End()

	err := r.GormArticleRepository.Create(article)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("article.id", article.ID))
	return nil
}

// FindByNumber with tracing
func (r *GormArticleRepositoryWithTracing) FindByNumberWithContext(ctx context.Context, articleNumber string) (*domain.Article, error) {
	_, span := tracer.Start(ctx, "repository.FindByNumber",
		trace.WithAttributes(
			attribute.String("article.number", articleNumber),
		),
	)
	defer span.End()

	article, err := r.GormArticleRepository.FindByNumber(articleNumber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("article.current_stock", article.CurrentStock))
	return article, nil
}

// Update with tracing
func (r *GormArticleRepositoryWithTracing) UpdateWithContext(ctx context.Context, article *domain.Article) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.String("article.number", article.ArticleNumber),
			attribute.Int("article.current_stock", article.CurrentStock),
		),
	)
	defer span.End()

	err := r.GormArticleRepository.Update(article)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Delete with tracing
func (r *GormArticleRepositoryWithTracing) DeleteWithContext(ctx context.Context, id string) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.String("article.id", id),
		),
	)
	defer span.End()

	err := r.GormArticleRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
