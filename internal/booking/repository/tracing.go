package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/twirth/lagerbestand/internal/booking/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

var tracer = otel.Tracer("booking-repository")

// GormBookingRepositoryWithTracing wraps GormBookingRepository with tracing
type GormBookingRepositoryWithTracing struct {
	*GormBookingRepository
}

// NewGormBookingRepositoryWithTracing creates a new repository with tracing
func NewGormBookingRepositoryWithTracing(store *database.Store) *GormBookingRepositoryWithTracing {
	return &GormBookingRepositoryWithTracing{
		GormBookingRepository: NewGormBookingRepository(store),
	}
}

// Create with tracing
func (r *GormBookingRepositoryWithTracing) CreateWithContext(ctx context.Context, booking *domain.StockBooking) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("booking.type", booking.Type),
			attribute.String("booking.article_number", booking.ArticleNumber),
			attribute.Int("booking.quantity", booking.Quantity),
		),
	)
	defer span.End()

	err := r.GormBookingRepository.Create(booking)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.String("booking.id", booking.ID))
	return nil
}

// FindAll with tracing
func (r *GormBookingRepositoryWithTracing) FindAllWithContext(ctx context.Context) ([]domain.StockBooking, error) {
	_, span := tracer.Start(ctx, "repository.FindAll")
	defer span.End()

	bookings, err := r.GormBookingRepository.FindAll()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("booking.count", len(bookings)))
	return bookings, nil
}
