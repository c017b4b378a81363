package command

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/twirth/lagerbestand/internal/activity"
	articledomain "github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/internal/booking/domain"
	"github.com/twirth/lagerbestand/pkg/database"
	"github.com/twirth/lagerbestand/pkg/idgen"
	"github.com/twirth/lagerbestand/pkg/timefmt"
)

var tracer = otel.Tracer("booking-engine")

// CreateBookingCommand represents the command to book a stock movement
type CreateBookingCommand struct {
	Type          string
	ArticleNumber string
	Quantity      int
	Reason        string
	User          string
}

// CreateBookingHandler validates and applies one stock movement: it updates
// the article row, inserts the booking row and appends the audit entry as a
// single logical operation under the store lock, then persists once.
type CreateBookingHandler struct {
	articles articledomain.ArticleRepository
	bookings domain.BookingRepository
	recorder *activity.Recorder
	store    *database.Store
}

// NewCreateBookingHandler creates a new create booking handler
func NewCreateBookingHandler(
	articles articledomain.ArticleRepository,
	bookings domain.BookingRepository,
	recorder *activity.Recorder,
	store *database.Store,
) *CreateBookingHandler {
	return &CreateBookingHandler{
		articles: articles,
		bookings: bookings,
		recorder: recorder,
		store:    store,
	}
}

// Handle executes the create booking command. All preconditions are checked
// before the first row write, so a rejected booking leaves zero state change.
func (h *CreateBookingHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*domain.StockBooking, error) {
	if cmd.Type != domain.TypeIn && cmd.Type != domain.TypeOut {
		return nil, fmt.Errorf("%w: booking type must be %q or %q", domain.ErrValidation, domain.TypeIn, domain.TypeOut)
	}
	if cmd.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrValidation)
	}
	if cmd.ArticleNumber == "" {
		return nil, fmt.Errorf("%w: article number is required", domain.ErrValidation)
	}

	ctx, span := tracer.Start(ctx, "booking.Create",
		trace.WithAttributes(
			attribute.String("booking.type", cmd.Type),
			attribute.String("booking.article_number", cmd.ArticleNumber),
			attribute.Int("booking.quantity", cmd.Quantity),
		),
	)
	defer span.End()

	h.store.Lock()
	defer h.store.Unlock()

	article, err := h.findArticle(ctx, cmd.ArticleNumber)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	oldStock := article.CurrentStock
	if cmd.Type == domain.TypeOut && cmd.Quantity > oldStock {
		err := fmt.Errorf("%w: %d requested, %d available", domain.ErrInsufficientStock, cmd.Quantity, oldStock)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	newStock := oldStock + cmd.Quantity
	if cmd.Type == domain.TypeOut {
		newStock = oldStock - cmd.Quantity
		// Clamp guards against a bypassed precondition; valid input never
		// reaches it.
		if newStock < 0 {
			newStock = 0
		}
	}

	now := time.Now()

	article.CurrentStock = newStock
	article.LastUpdated = timefmt.Date(now)
	if err := h.updateArticle(ctx, article); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	booking := &domain.StockBooking{
		ID:            idgen.New(),
		Type:          cmd.Type,
		ArticleNumber: article.ArticleNumber,
		ArticleName:   article.Name,
		Quantity:      cmd.Quantity,
		Reason:        cmd.Reason,
		User:          cmd.User,
		Timestamp:     timefmt.Display(now),
		OldStock:      oldStock,
		NewStock:      newStock,
		CreatedAt:     now,
	}

	if err := h.insertBooking(ctx, booking); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	quantity := cmd.Quantity
	oldSnapshot := oldStock
	newSnapshot := newStock
	if err := h.recorder.Append(activity.Record{
		Type:          cmd.Type,
		ArticleNumber: article.ArticleNumber,
		ArticleName:   article.Name,
		Quantity:      &quantity,
		Reason:        cmd.Reason,
		User:          cmd.User,
		OldStock:      &oldSnapshot,
		NewStock:      &newSnapshot,
		Details: map[string]interface{}{
			"oldStock": oldStock,
			"newStock": newStock,
		},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	if err := h.store.Persist(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("booking.old_stock", oldStock),
		attribute.Int("booking.new_stock", newStock),
	)

	return booking, nil
}

// The traced repository decorators expose context-aware variants of the row
// operations; when the configured repository carries them, its spans nest
// under the booking span. The plain interface methods are the fallback.

func (h *CreateBookingHandler) findArticle(ctx context.Context, articleNumber string) (*articledomain.Article, error) {
	if traced, ok := h.articles.(interface {
		FindByNumberWithContext(context.Context, string) (*articledomain.Article, error)
	}); ok {
		return traced.FindByNumberWithContext(ctx, articleNumber)
	}
	return h.articles.FindByNumber(articleNumber)
}

func (h *CreateBookingHandler) updateArticle(ctx context.Context, article *articledomain.Article) error {
	if traced, ok := h.articles.(interface {
		UpdateWithContext(context.Context, *articledomain.Article) error
	}); ok {
		return traced.UpdateWithContext(ctx, article)
	}
	return h.articles.Update(article)
}

func (h *CreateBookingHandler) insertBooking(ctx context.Context, booking *domain.StockBooking) error {
	if traced, ok := h.bookings.(interface {
		CreateWithContext(context.Context, *domain.StockBooking) error
	}); ok {
		return traced.CreateWithContext(ctx, booking)
	}
	return h.bookings.Create(booking)
}
