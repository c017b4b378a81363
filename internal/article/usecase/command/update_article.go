package command

import (
	"fmt"
	"time"

	"github.com/twirth/lagerbestand/internal/activity"
	activitydomain "github.com/twirth/lagerbestand/internal/activity/domain"
	"github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/pkg/database"
	"github.com/twirth/lagerbestand/pkg/timefmt"
)

// UpdateArticleCommand represents the command to update an article
type UpdateArticleCommand struct {
	ID            string
	ArticleNumber string
	Name          string
	Description   string
	Manufacturer  string
	CurrentStock  int
	MinimumStock  int
	Location      string
	User          string
}

// UpdateArticleHandler handles article updates
type UpdateArticleHandler struct {
	repo     domain.ArticleRepository
	recorder *activity.Recorder
	store    *database.Store
}

// NewUpdateArticleHandler creates a new update article handler
func NewUpdateArticleHandler(repo domain.ArticleRepository, recorder *activity.Recorder, store *database.Store) *UpdateArticleHandler {
	return &UpdateArticleHandler{repo: repo, recorder: recorder, store: store}
}

// Handle executes the update article command. The QR code is preserved from
// creation. Direct overwrite of the current stock is allowed on this path;
// it is used for corrections and inventory counts and bypasses the booking
// engine on purpose.
func (h *UpdateArticleHandler) Handle(cmd UpdateArticleCommand) (*domain.Article, error) {
	if cmd.ArticleNumber == "" {
		return nil, fmt.Errorf("%w: article number is required", domain.ErrValidation)
	}
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if cmd.CurrentStock < 0 || cmd.MinimumStock < 0 {
		return nil, fmt.Errorf("%w: stock values cannot be negative", domain.ErrValidation)
	}

	h.store.Lock()
	defer h.store.Unlock()

	existing, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.ArticleNumber != existing.ArticleNumber {
		exists, err := h.repo.ExistsByNumber(cmd.ArticleNumber)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateArticleNumber, cmd.ArticleNumber)
		}
	}

	oldData := *existing

	updated := &domain.Article{
		ID:            existing.ID,
		ArticleNumber: cmd.ArticleNumber,
		Name:          cmd.Name,
		Description:   cmd.Description,
		Manufacturer:  cmd.Manufacturer,
		CurrentStock:  cmd.CurrentStock,
		MinimumStock:  cmd.MinimumStock,
		Location:      cmd.Location,
		LastUpdated:   timefmt.Date(time.Now()),
		QRCode:        existing.QRCode,
	}

	if err := h.repo.Update(updated); err != nil {
		return nil, err
	}

	if err := h.recorder.Append(activity.Record{
		Type:          activitydomain.TypeUpdate,
		ArticleNumber: updated.ArticleNumber,
		ArticleName:   updated.Name,
		User:          cmd.User,
		Details: map[string]interface{}{
			"oldData": oldData,
			"newData": updated,
		},
	}); err != nil {
		return nil, err
	}

	if err := h.store.Persist(); err != nil {
		return nil, err
	}

	return updated, nil
}
