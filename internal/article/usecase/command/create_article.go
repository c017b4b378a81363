package command

import (
	"fmt"
	"time"

	"github.com/twirth/lagerbestand/internal/activity"
	activitydomain "github.com/twirth/lagerbestand/internal/activity/domain"
	"github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/pkg/database"
	"github.com/twirth/lagerbestand/pkg/idgen"
	"github.com/twirth/lagerbestand/pkg/timefmt"
)

// CreateArticleCommand represents the command to create an article
type CreateArticleCommand struct {
	ArticleNumber string
	Name          string
	Description   string
	Manufacturer  string
	CurrentStock  int
	MinimumStock  int
	Location      string
	User          string
}

// CreateArticleHandler handles article creation
type CreateArticleHandler struct {
	repo     domain.ArticleRepository
	recorder *activity.Recorder
	store    *database.Store
}

// NewCreateArticleHandler creates a new create article handler
func NewCreateArticleHandler(repo domain.ArticleRepository, recorder *activity.Recorder, store *database.Store) *CreateArticleHandler {
	return &CreateArticleHandler{repo: repo, recorder: recorder, store: store}
}

// Handle executes the create article command
func (h *CreateArticleHandler) Handle(cmd CreateArticleCommand) (*domain.Article, error) {
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

	exists, err := h.repo.ExistsByNumber(cmd.ArticleNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateArticleNumber, cmd.ArticleNumber)
	}

	article := &domain.Article{
		ID:            idgen.New(),
		ArticleNumber: cmd.ArticleNumber,
		Name:          cmd.Name,
		Description:   cmd.Description,
		Manufacturer:  cmd.Manufacturer,
		CurrentStock:  cmd.CurrentStock,
		MinimumStock:  cmd.MinimumStock,
		Location:      cmd.Location,
		LastUpdated:   timefmt.Date(time.Now()),
		QRCode:        domain.QRCodePrefix + cmd.ArticleNumber,
	}

	if err := h.repo.Create(article); err != nil {
		return nil, err
	}

	if err := h.recorder.Append(activity.Record{
		Type:          activitydomain.TypeCreate,
		ArticleNumber: article.ArticleNumber,
		ArticleName:   article.Name,
		User:          cmd.User,
	}); err != nil {
		return nil, err
	}

	if err := h.store.Persist(); err != nil {
		return nil, err
	}

	return article, nil
}
