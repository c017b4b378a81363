// Package schema owns table creation and one-time seeding for the four
// ledger tables: users, articles, stock_bookings and activity_log.
package schema

import (
	"fmt"

	activitydomain "github.com/twirth/lagerbestand/internal/activity/domain"
	articledomain "github.com/twirth/lagerbestand/internal/article/domain"
	bookingdomain "github.com/twirth/lagerbestand/internal/booking/domain"
	userdomain "github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/pkg/database"
)

// Migrate creates the four tables if absent. Safe to call on every startup.
func Migrate(store *database.Store) error {
	if err := store.DB().AutoMigrate(
		&userdomain.User{},
		&articledomain.Article{},
		&bookingdomain.StockBooking{},
		&activitydomain.Entry{},
	); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
