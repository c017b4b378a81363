package schema

import (
	"fmt"
	"time"

	"github.com/twirth/lagerbestand/internal/activity"
	activitydomain "github.com/twirth/lagerbestand/internal/activity/domain"
	activityrepo "github.com/twirth/lagerbestand/internal/activity/repository"
	articledomain "github.com/twirth/lagerbestand/internal/article/domain"
	userdomain "github.com/twirth/lagerbestand/internal/user/domain"
	"github.com/twirth/lagerbestand/pkg/auth"
	"github.com/twirth/lagerbestand/pkg/database"
)

// Initial article master data, inserted only into an empty articles table.
var seedArticles = []articledomain.Article{
	{ID: "1", ArticleNumber: "SCR-M8-20", Name: "Schrauben M8x20", Description: "Edelstahl Innensechskant Schrauben", Manufacturer: "Würth", CurrentStock: 150, MinimumStock: 50, Location: "Regal A-12", LastUpdated: "2025-01-21", QRCode: "QR_SCR-M8-20"},
	{ID: "2", ArticleNumber: "DIC-STD-01", Name: "Dichtungsringe", Description: "Standard O-Ring Set", Manufacturer: "Fischer", CurrentStock: 25, MinimumStock: 100, Location: "Regal B-05", LastUpdated: "2025-01-21", QRCode: "QR_DIC-STD-01"},
	{ID: "3", ArticleNumber: "KAB-200-SW", Name: "Kabelbinder 200mm", Description: "Schwarz, UV-beständig", Manufacturer: "Hellermann Tyton", CurrentStock: 200, MinimumStock: 200, Location: "Regal C-08", LastUpdated: "2025-01-21", QRCode: "QR_KAB-200-SW"},
	{ID: "4", ArticleNumber: "MUT-M8-STD", Name: "Muttern M8", Description: "Sechskantmuttern M8, verzinkt", Manufacturer: "Würth", CurrentStock: 320, MinimumStock: 100, Location: "Regal A-13", LastUpdated: "2025-01-21", QRCode: "QR_MUT-M8-STD"},
	{ID: "5", ArticleNumber: "LED-12V-5M", Name: "LED-Strip 12V", Description: "LED-Streifen 5m, warmweiß, IP65", Manufacturer: "Philips", CurrentStock: 45, MinimumStock: 20, Location: "Regal D-02", LastUpdated: "2025-01-21", QRCode: "QR_LED-12V-5M"},
	{ID: "6", ArticleNumber: "BOH-10MM-HSS", Name: "Bohrer 10mm HSS", Description: "Spiralbohrer HSS, geschliffen", Manufacturer: "Bosch", CurrentStock: 12, MinimumStock: 25, Location: "Regal E-15", LastUpdated: "2025-01-21", QRCode: "QR_BOH-10MM-HSS"},
	{ID: "7", ArticleNumber: "KLE-EPOXY-2K", Name: "Epoxidkleber 2K", Description: "2-Komponenten Epoxidharz, 500ml", Manufacturer: "Henkel", CurrentStock: 8, MinimumStock: 15, Location: "Regal F-03", LastUpdated: "2025-01-21", QRCode: "QR_KLE-EPOXY-2K"},
	{ID: "8", ArticleNumber: "ROR-PVC-32", Name: "PVC-Rohr 32mm", Description: "PVC-Rohr 32mm, 2m Länge", Manufacturer: "Geberit", CurrentStock: 78, MinimumStock: 30, Location: "Lager Außen", LastUpdated: "2025-01-21", QRCode: "QR_ROR-PVC-32"},
	{ID: "9", ArticleNumber: "ISO-BAND-20", Name: "Isolierband 20m", Description: "Elektriker-Isolierband, schwarz", Manufacturer: "3M", CurrentStock: 156, MinimumStock: 50, Location: "Regal D-07", LastUpdated: "2025-01-21", QRCode: "QR_ISO-BAND-20"},
	{ID: "10", ArticleNumber: "FIL-M5-20", Name: "Gewindestange M5", Description: "Gewindestange M5x1000mm, verzinkt", Manufacturer: "Fischer", CurrentStock: 24, MinimumStock: 40, Location: "Regal A-20", LastUpdated: "2025-01-21", QRCode: "QR_FIL-M5-20"},
}

// Seed inserts the initial superadmin and the article master data, each
// guarded by a row-count check per table. Once any row exists the guard
// holds even after partial deletion, so seeding happens at most once per
// database lifetime.
func Seed(store *database.Store) error {
	store.Lock()
	defer store.Unlock()

	db := store.DB()
	seeded := false

	var userCount int64
	if err := db.Model(&userdomain.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount == 0 {
		hash, err := auth.HashPassword("admin")
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		admin := &userdomain.User{
			ID:        "1",
			Username:  "admin",
			Password:  hash,
			Role:      userdomain.RoleSuperAdmin,
			Email:     "admin@example.com",
			FirstName: "Super",
			LastName:  "Admin",
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to seed superadmin: %w", err)
		}
		seeded = true
	}

	var articleCount int64
	if err := db.Model(&articledomain.Article{}).Count(&articleCount).Error; err != nil {
		return fmt.Errorf("failed to count articles: %w", err)
	}
	if articleCount == 0 {
		recorder := activity.NewRecorder(activityrepo.NewGormActivityRepository(store))
		for i := range seedArticles {
			article := seedArticles[i]
			if err := db.Create(&article).Error; err != nil {
				return fmt.Errorf("failed to seed article %s: %w", article.ArticleNumber, err)
			}
			if err := recorder.Append(activity.Record{
				Type:          activitydomain.TypeCreate,
				ArticleNumber: article.ArticleNumber,
				ArticleName:   article.Name,
				User:          "System",
				Details:       map[string]interface{}{"initialData": true},
			}); err != nil {
				return err
			}
		}
		seeded = true
	}

	if seeded {
		return store.Persist()
	}
	return nil
}
