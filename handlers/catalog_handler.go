// backend/handlers/catalog_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/astrorient/skywatch/backend/fetcher"
	"github.com/astrorient/skywatch/backend/models"
)

const maxListLimit = 500

// CatalogSync triggers an immediate catalog sync and reports how many items
// were written.
func (h *Handler) CatalogSync(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	written, err := h.catalog.Sync()
	if err != nil {
		if fetcher.IsFetchError(err) {
			respondWithError(w, http.StatusBadGateway, fetcher.CodeOf(err), err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		}
		return
	}
	respondWithJSON(w, http.StatusOK, models.SuccessResponse(map[string]interface{}{
		"written": written,
	}))
}

// CatalogList returns catalog items, newest insertions first. The limit
// query parameter defaults to the configured list limit and is bounded.
func (h *Handler) CatalogList(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	limit := h.listLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondWithError(w, http.StatusBadRequest, "INVALID_INPUT", "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	items, err := h.catalog.List(limit)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, models.SuccessResponse(map[string]interface{}{
		"items": items,
	}))
}
