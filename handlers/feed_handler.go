// backend/handlers/feed_handler.go
package handlers

import (
	"net/http"
	"strings"

	"github.com/astrorient/skywatch/backend/models"
)

// FeedRouter dispatches the /api/feed/ sub-paths:
//
//	/api/feed/summary
//	/api/feed/refresh?src=a,b
//	/api/feed/{src}/latest
func (h *Handler) FeedRouter(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	// parts: ["api", "feed", ...]
	switch {
	case len(parts) == 3 && parts[2] == "summary":
		h.feedSummary(w)
	case len(parts) == 3 && parts[2] == "refresh":
		h.feedRefresh(w, r)
	case len(parts) == 4 && parts[3] == "latest":
		h.feedLatest(w, parts[2])
	default:
		respondWithError(w, http.StatusBadRequest, "INVALID_INPUT",
			"Expected /api/feed/summary, /api/feed/refresh, or /api/feed/{src}/latest")
	}
}

// feedLatest returns the most recent cache entry for one source tag.
func (h *Handler) feedLatest(w http.ResponseWriter, source string) {
	entry, err := h.feed.Latest(source)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	if entry == nil {
		respondWithJSON(w, http.StatusOK, models.SuccessResponse(map[string]interface{}{
			"source":  source,
			"message": "no data",
		}))
		return
	}
	respondWithJSON(w, http.StatusOK, models.SuccessResponse(entry))
}

// feedRefresh fetches the requested subset of sources (default: all
// registered) and reports which ones succeeded.
func (h *Handler) feedRefresh(w http.ResponseWriter, r *http.Request) {
	sourcesParam := r.URL.Query().Get("src")
	var sources []string
	if sourcesParam == "" {
		sources = h.feed.Tags()
	} else {
		sources = strings.Split(sourcesParam, ",")
		for i := range sources {
			sources[i] = strings.TrimSpace(sources[i])
		}
	}

	refreshed := h.feed.Refresh(sources)
	respondWithJSON(w, http.StatusOK, models.SuccessResponse(map[string]interface{}{
		"refreshed": refreshed,
	}))
}

// feedSummary returns the aggregated cross-source snapshot.
func (h *Handler) feedSummary(w http.ResponseWriter) {
	summary, err := h.feed.Summary()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "DATABASE_ERROR", err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, models.SuccessResponse(summary))
}
