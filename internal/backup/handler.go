// Package backup exposes the whole-database escape hatches: a downloadable
// image export and a wholesale import that replaces the current database.
package backup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/twirth/lagerbestand/pkg/database"
	"github.com/twirth/lagerbestand/pkg/logger"
)

// maxImportSize bounds the accepted image upload.
const maxImportSize = 64 << 20

// Handler serves the database image endpoints.
type Handler struct {
	store *database.Store
}

// NewHandler creates a new backup handler
func NewHandler(store *database.Store) *Handler {
	return &Handler{store: store}
}

// ExportImage handles GET /api/backup/export
func (h *Handler) ExportImage(w http.ResponseWriter, r *http.Request) {
	data, err := h.store.ExportImage()
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to export database image")
		respondError(w, http.StatusInternalServerError, "Failed to export database image")
		return
	}

	w.Header().Set("Content-Type", "application/x-sqlite3")
	w.Header().Set("Content-Disposition", `attachment; filename="lagerbestand.db"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}

// ImportImage handles POST /api/backup/import. The uploaded image replaces
// the database wholesale and is persisted immediately.
func (h *Handler) ImportImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Failed to read uploaded image")
		return
	}

	h.store.Lock()
	defer h.store.Unlock()

	if err := h.store.ImportImage(data); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to import database image")
		if errors.Is(err, database.ErrStoreInit) {
			respondError(w, http.StatusBadRequest, "Uploaded file is not a valid database image")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to import database image")
		return
	}

	logger.Info(r.Context()).Int("bytes", len(data)).Msg("Database image imported")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Database image imported successfully",
	})
}

// RegisterRoutes registers the backup routes
func (h *Handler) RegisterRoutes(router *mux.Router, authorize func(http.HandlerFunc) http.HandlerFunc) {
	router.HandleFunc("/api/backup/export", authorize(h.ExportImage)).Methods("GET")
	router.HandleFunc("/api/backup/import", authorize(h.ImportImage)).Methods("POST")
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
