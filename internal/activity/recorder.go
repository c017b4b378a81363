package activity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/twirth/lagerbestand/internal/activity/domain"
	"github.com/twirth/lagerbestand/pkg/idgen"
	"github.com/twirth/lagerbestand/pkg/timefmt"
)

// Record describes one audit entry before its id and timestamp are assigned.
type Record struct {
	Type          string
	ArticleNumber string
	ArticleName   string
	Quantity      *int
	Reason        string
	User          string
	OldStock      *int
	NewStock      *int
	Details       map[string]interface{}
}

// Recorder appends audit entries. It never persists the store itself; the
// enclosing operation persists once after all of its row writes.
type Recorder struct {
	repo domain.ActivityRepository
}

// NewRecorder creates a new activity recorder
func NewRecorder(repo domain.ActivityRepository) *Recorder {
	return &Recorder{repo: repo}
}

// Append writes one entry with a generated unique id and a locale-formatted
// timestamp.
func (r *Recorder) Append(rec Record) error {
	now := time.Now()

	user := rec.User
	if user == "" {
		user = "System"
	}

	entry := &domain.Entry{
		ID:            idgen.New(),
		Type:          rec.Type,
		ArticleNumber: rec.ArticleNumber,
		ArticleName:   rec.ArticleName,
		Quantity:      rec.Quantity,
		Reason:        rec.Reason,
		User:          user,
		Timestamp:     timefmt.Display(now),
		OldStock:      rec.OldStock,
		NewStock:      rec.NewStock,
		CreatedAt:     now,
	}

	if len(rec.Details) > 0 {
		details, err := json.Marshal(rec.Details)
		if err != nil {
			return fmt.Errorf("failed to encode activity details: %w", err)
		}
		entry.Details = string(details)
	}

	return r.repo.Append(entry)
}
