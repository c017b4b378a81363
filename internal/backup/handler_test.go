package backup

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"

	"github.com/twirth/lagerbestand/pkg/database"
	"github.com/twirth/lagerbestand/pkg/logger"
)

func setupRouter(t *testing.T) (*database.Store, *mux.Router) {
	t.Helper()

	logger.Init("backup-test", false)

	store, err := database.Open(filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	router := mux.NewRouter()
	passthrough := func(next http.HandlerFunc) http.HandlerFunc { return next }
	NewHandler(store).RegisterRoutes(router, passthrough)
	return store, router
}

func TestExportThenImportRoundTrip(t *testing.T) {
	store, router := setupRouter(t)

	if err := store.DB().Exec("CREATE TABLE items (name TEXT)").Error; err != nil {
		t.Fatal(err)
	}
	if err := store.DB().Exec("INSERT INTO items (name) VALUES ('Isolierband 20m')").Error; err != nil {
		t.Fatal(err)
	}
	if err := store.Persist(); err != nil {
		t.Fatal(err)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/backup/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("export: got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/x-sqlite3" {
		t.Errorf("content type: %q", ct)
	}
	image := rec.Body.Bytes()

	// Wipe the table, then restore from the exported image.
	if err := store.DB().Exec("DELETE FROM items").Error; err != nil {
		t.Fatal(err)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backup/import", bytes.NewReader(image)))
	if rec.Code != http.StatusOK {
		t.Fatalf("import: got %d: %s", rec.Code, rec.Body.String())
	}

	var name string
	if err := store.DB().Raw("SELECT name FROM items").Scan(&name).Error; err != nil {
		t.Fatal(err)
	}
	if name != "Isolierband 20m" {
		t.Fatalf("restored row: got %q", name)
	}
}

func TestImportRejectsInvalidImage(t *testing.T) {
	_, router := setupRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backup/import", bytes.NewReader([]byte("not a database"))))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestImportCorruptBodyKeepsStoreServing(t *testing.T) {
	store, router := setupRouter(t)

	if err := store.DB().Exec("CREATE TABLE items (name TEXT)").Error; err != nil {
		t.Fatal(err)
	}
	if err := store.DB().Exec("INSERT INTO items (name) VALUES ('PVC-Rohr 32mm')").Error; err != nil {
		t.Fatal(err)
	}
	if err := store.Persist(); err != nil {
		t.Fatal(err)
	}

	// Valid magic, corrupt content: rejected only once the engine opens it.
	image := append([]byte("SQLite format 3\x00"), bytes.Repeat([]byte{0xFF}, 4096)...)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/backup/import", bytes.NewReader(image)))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400: %s", rec.Code, rec.Body.String())
	}

	// The export endpoint must still serve the previous image.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/backup/export", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("export after rejected import: got %d: %s", rec.Code, rec.Body.String())
	}

	var name string
	if err := store.DB().Raw("SELECT name FROM items").Scan(&name).Error; err != nil {
		t.Fatalf("read after rejected import: %v", err)
	}
	if name != "PVC-Rohr 32mm" {
		t.Fatalf("row after rejected import: got %q", name)
	}
}
