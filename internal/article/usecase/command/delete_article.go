package command

import (
	"github.com/twirth/lagerbestand/internal/activity"
	activitydomain "github.com/twirth/lagerbestand/internal/activity/domain"
	"github.com/twirth/lagerbestand/internal/article/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

// DeleteArticleCommand represents the command to delete an article
type DeleteArticleCommand struct {
	ID   string
	User string
}

// DeleteArticleHandler handles article deletion
type DeleteArticleHandler struct {
	repo     domain.ArticleRepository
	recorder *activity.Recorder
	store    *database.Store
}

// NewDeleteArticleHandler creates a new delete article handler
func NewDeleteArticleHandler(repo domain.ArticleRepository, recorder *activity.Recorder, store *database.Store) *DeleteArticleHandler {
	return &DeleteArticleHandler{repo: repo, recorder: recorder, store: store}
}

// Handle executes the delete article command. The delete is hard and does
// not cascade: bookings and activity entries referencing the article number
// stay behind as immutable history.
func (h *DeleteArticleHandler) Handle(cmd DeleteArticleCommand) error {
	h.store.Lock()
	defer h.store.Unlock()

	article, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return err
	}

	if err := h.recorder.Append(activity.Record{
		Type:          activitydomain.TypeDelete,
		ArticleNumber: article.ArticleNumber,
		ArticleName:   article.Name,
		User:          cmd.User,
	}); err != nil {
		return err
	}

	return h.store.Persist()
}
