package domain

import (
	"errors"
	"time"
)

// Booking types.
const (
	TypeIn  = "in"
	TypeOut = "out"
)

// Errors surfaced by booking operations.
var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrValidation        = errors.New("validation failed")
)

// StockBooking represents one immutable inventory movement. Bookings are
// never updated or deleted after creation; the article name and the
// old/new stock values are snapshots taken at booking time.
type StockBooking struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	Type          string    `json:"type" gorm:"not null"`
	ArticleNumber string    `json:"article_number" gorm:"not null"`
	ArticleName   string    `json:"article_name" gorm:"not null"`
	Quantity      int       `json:"quantity" gorm:"not null"`
	Reason        string    `json:"reason,omitempty"`
	User          string    `json:"user" gorm:"not null"`
	Timestamp     string    `json:"timestamp" gorm:"not null"`
	OldStock      int       `json:"old_stock" gorm:"not null"`
	NewStock      int       `json:"new_stock" gorm:"not null"`
	CreatedAt     time.Time `json:"-"`
}

// TableName specifies the table name
func (StockBooking) TableName() string {
	return "stock_bookings"
}

// BookingRepository defines the contract for booking data access
type BookingRepository interface {
	Create(booking *StockBooking) error
	FindAll() ([]StockBooking, error)
	Count() (int64, error)
}
