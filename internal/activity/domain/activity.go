package domain

import "time"

// Entry types. Bookings reuse "in"/"out"; article lifecycle changes use the
// other three.
const (
	TypeIn     = "in"
	TypeOut    = "out"
	TypeCreate = "create"
	TypeUpdate = "update"
	TypeDelete = "delete"
)

// DefaultLimit caps how many entries default queries surface. Older entries
// are kept, merely not returned.
const DefaultLimit = 200

// Entry represents one append-only audit record. Entries are never updated
// or deleted after creation.
type Entry struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Type          string    `json:"type" gorm:"not null"`
	ArticleNumber string    `json:"article_number" gorm:"not null"`
	ArticleName   string    `json:"article_name" gorm:"not null"`
	Quantity      *int      `json:"quantity,omitempty"`
	Reason        string    `json:"reason,omitempty"`
	User          string    `json:"user" gorm:"not null"`
	Timestamp     string    `json:"timestamp" gorm:"not null"`
	NewStock      *int      `json:"new_stock,omitempty"`
	OldStock      *int      `json:"old_stock,omitempty"`
	Details       string    `json:"details,omitempty"`
	CreatedAt     time.Time `json:"-"`
}

// TableName specifies the table name
func (Entry) TableName() string {
	return "activity_log"
}

// ActivityRepository defines the contract for activity log access
type ActivityRepository interface {
	Append(entry *Entry) error
	Recent(limit int) ([]Entry, error)
	Count() (int64, error)
}
