package domain

import "errors"

// Errors surfaced by article operations.
var (
	ErrNotFound               = errors.New("article not found")
	ErrDuplicateArticleNumber = errors.New("article number already exists")
	ErrValidation             = errors.New("validation failed")
)

// QRCodePrefix is prepended to the article number to form the QR code.
// The code is fixed at creation and survives edits of other fields.
const QRCodePrefix = "QR_"

// Article represents a stocked item.
type Article struct {
	ID            string `json:"id" gorm:"primaryKey"`
	ArticleNumber string `json:"article_number" gorm:"uniqueIndex;not null"`
	Name          string `json:"name" gorm:"not null"`
	Description   string `json:"description"`
	Manufacturer  string `json:"manufacturer"`
	CurrentStock  int    `json:"current_stock" gorm:"not null;default:0"`
	MinimumStock  int    `json:"minimum_stock" gorm:"not null;default:0"`
	Location      string `json:"location"`
	LastUpdated   string `json:"last_updated" gorm:"not null"`
	QRCode        string `json:"qr_code"`
}

// TableName specifies the table name
func (Article) TableName() string {
	return "articles"
}

// BelowMinimum reports whether current stock is at or below the reorder
// threshold.
func (a *Article) BelowMinimum() bool {
	return a.CurrentStock <= a.MinimumStock
}

// ArticleRepository defines the contract for article data access
type ArticleRepository interface {
	Create(article *Article) error
	FindByID(id string) (*Article, error)
	FindByNumber(articleNumber string) (*Article, error)
	FindAll() ([]Article, error)
	ExistsByNumber(articleNumber string) (bool, error)
	Update(article *Article) error
	Delete(id string) error
	Count() (int64, error)
}
