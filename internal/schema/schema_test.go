package schema

import (
	"path/filepath"
	"strings"
	"testing"

	activitydomain "github.com/twirth/lagerbestand/internal/activity/domain"
	articledomain "github.com/twirth/lagerbestand/internal/article/domain"
	bookingdomain "github.com/twirth/lagerbestand/internal/booking/domain"
	userdomain "github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/pkg/auth"
	"github.com/twirth/lagerbestand/pkg/database"
)

func setupStore(t *testing.T) *database.Store {
	t.Helper()

	store, err := database.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := Migrate(store); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	if err := Seed(store); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	return store
}

func TestSeedInitialData(t *testing.T) {
	store := setupStore(t)
	db := store.DB()

	var userCount, articleCount, activityCount, bookingCount int64
	db.Model(&userdomain.User{}).Count(&userCount)
	db.Model(&articledomain.Article{}).Count(&articleCount)
	db.Model(&activitydomain.Entry{}).Count(&activityCount)
	db.Model(&bookingdomain.StockBooking{}).Count(&bookingCount)

	if userCount != 1 {
		t.Errorf("users: got %d, want 1", userCount)
	}
	if articleCount != 10 {
		t.Errorf("articles: got %d, want 10", articleCount)
	}
	if activityCount != 10 {
		t.Errorf("activity entries: got %d, want 10", activityCount)
	}
	if bookingCount != 0 {
		t.Errorf("bookings: got %d, want 0", bookingCount)
	}
}

func TestSeedSuperadmin(t *testing.T) {
	store := setupStore(t)

	var admin userdomain.User
	if err := store.DB().Where("username = ?", "admin").First(&admin).Error; err != nil {
		t.Fatalf("superadmin row missing: %v", err)
	}

	if admin.ID != "1" {
		t.Errorf("superadmin id: got %q, want %q", admin.ID, "1")
	}
	if admin.Role != userdomain.RoleSuperAdmin {
		t.Errorf("superadmin role: got %q", admin.Role)
	}
	if !admin.IsActive {
		t.Error("superadmin not active")
	}
	if !auth.CheckPassword(admin.Password, "admin") {
		t.Error("seeded credential does not authenticate")
	}
}

func TestSeedArticleMasterData(t *testing.T) {
	store := setupStore(t)

	var screws articledomain.Article
	if err := store.DB().Where("article_number = ?", "SCR-M8-20").First(&screws).Error; err != nil {
		t.Fatalf("SCR-M8-20 missing: %v", err)
	}
	if screws.CurrentStock != 150 || screws.MinimumStock != 50 {
		t.Errorf("SCR-M8-20 stock: got %d/%d, want 150/50", screws.CurrentStock, screws.MinimumStock)
	}

	var all []articledomain.Article
	if err := store.DB().Find(&all).Error; err != nil {
		t.Fatal(err)
	}
	for _, a := range all {
		if !strings.HasPrefix(a.QRCode, articledomain.QRCodePrefix) {
			t.Errorf("article %s: qr code %q lacks prefix", a.ArticleNumber, a.QRCode)
		}
		if a.QRCode != articledomain.QRCodePrefix+a.ArticleNumber {
			t.Errorf("article %s: qr code %q not derived from article number", a.ArticleNumber, a.QRCode)
		}
	}
}

func TestSeedActivityEntries(t *testing.T) {
	store := setupStore(t)

	var entries []activitydomain.Entry
	if err := store.DB().Find(&entries).Error; err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Type != activitydomain.TypeCreate {
			t.Errorf("seed entry %s: type %q, want %q", e.ID, e.Type, activitydomain.TypeCreate)
		}
		if e.User != "System" {
			t.Errorf("seed entry %s: user %q, want System", e.ID, e.User)
		}
		if !strings.Contains(e.Details, "initialData") {
			t.Errorf("seed entry %s: details %q lack initialData marker", e.ID, e.Details)
		}
	}
}

func TestMigrateAndSeedAreIdempotent(t *testing.T) {
	store := setupStore(t)

	if err := Migrate(store); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	if err := Seed(store); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var userCount, articleCount, activityCount int64
	store.DB().Model(&userdomain.User{}).Count(&userCount)
	store.DB().Model(&articledomain.Article{}).Count(&articleCount)
	store.DB().Model(&activitydomain.Entry{}).Count(&activityCount)

	if userCount != 1 || articleCount != 10 || activityCount != 10 {
		t.Fatalf("reseeded: %d users, %d articles, %d entries", userCount, articleCount, activityCount)
	}
}

func TestSeedGuardHoldsAfterPartialDeletion(t *testing.T) {
	store := setupStore(t)

	if err := store.DB().Where("article_number <> ?", "SCR-M8-20").Delete(&articledomain.Article{}).Error; err != nil {
		t.Fatal(err)
	}

	if err := Seed(store); err != nil {
		t.Fatalf("Seed after deletion: %v", err)
	}

	var articleCount int64
	store.DB().Model(&articledomain.Article{}).Count(&articleCount)
	if articleCount != 1 {
		t.Fatalf("seed re-inserted master data: %d articles, want 1", articleCount)
	}
}
