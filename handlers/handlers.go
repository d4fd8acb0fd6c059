// backend/handlers/handlers.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/astrorient/skywatch/backend/models"
	"github.com/astrorient/skywatch/backend/services"
)

// Handler holds the service dependencies for every endpoint.
type Handler struct {
	db        *sql.DB
	tracking  *services.TrackingService
	catalog   *services.CatalogService
	feed      *services.FeedService
	listLimit int
}

func New(db *sql.DB, tracking *services.TrackingService, catalog *services.CatalogService, feed *services.FeedService, listLimit int) *Handler {
	return &Handler{
		db:        db,
		tracking:  tracking,
		catalog:   catalog,
		feed:      feed,
		listLimit: listLimit,
	}
}

// Routes registers every endpoint on the mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/health", h.Health)
	mux.HandleFunc("/api/position/latest", h.PositionLatest)
	mux.HandleFunc("/api/position/fetch", h.PositionFetch)
	mux.HandleFunc("/api/position/trend", h.PositionTrend)
	mux.HandleFunc("/api/catalog/sync", h.CatalogSync)
	mux.HandleFunc("/api/catalog/list", h.CatalogList)
	mux.HandleFunc("/api/feed/", h.FeedRouter) // /latest, /refresh, /summary sub-paths
}

// Health reports liveness, including a database ping so a dead pool surfaces
// here rather than at the first scheduled write.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	if err := h.db.Ping(); err != nil {
		log.Printf("Health check failed: DB ping error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "DATABASE_ERROR", "database connection error")
		return
	}
	respondWithJSON(w, http.StatusOK, models.SuccessResponse(models.Health{
		Status: "ok",
		Now:    time.Now().UTC(),
	}))
}

// Helper to respond with JSON.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		http.Error(w, `{"ok":false,"error":{"code":"INTERNAL","message":"failed to marshal response"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper to respond with an error in the uniform envelope.
func respondWithError(w http.ResponseWriter, httpStatus int, code, message string) {
	log.Printf("API Error %d (%s): %s", httpStatus, code, message)
	respondWithJSON(w, httpStatus, models.ErrorResponse(code, message))
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "INVALID_INPUT", "Only GET method is allowed")
		return false
	}
	return true
}
