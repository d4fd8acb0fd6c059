// backend/handlers/position_handler.go
package handlers

import (
	"net/http"

	"github.com/astrorient/skywatch/backend/fetcher"
	"github.com/astrorient/skywatch/backend/models"
)

// PositionLatest returns the most recent position sample. No data yet is a
// successful "no data" result, not an error.
func (h *Handler) PositionLatest(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	entry, err := h.tracking.Latest()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if entry == nil {
		respondWithJSON(w, http.StatusOK, models.SuccessResponse(map[string]interface{}{
			"message": "no data",
		}))
		return
	}
	respondWithJSON(w, http.StatusOK, models.SuccessResponse(entry))
}

// PositionFetch triggers an immediate fetch-and-store, then returns the
// latest sample. Fetch failures carry their classified code to the caller.
func (h *Handler) PositionFetch(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	if err := h.tracking.FetchAndStore(); err != nil {
		if fetcher.IsFetchError(err) {
			respondWithError(w, http.StatusBadGateway, fetcher.CodeOf(err), err.Error())
		} else {
			respondWithError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		}
		return
	}
	h.PositionLatest(w, r)
}

// PositionTrend returns the movement signal over the two newest samples.
func (h *Handler) PositionTrend(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	trend, err := h.tracking.Trend()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, models.SuccessResponse(trend))
}
