package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/healthforge/healthforge/internal/logging"
	"github.com/healthforge/healthforge/internal/models"
)

const (
	defaultCatalogPageSize = 50
	maxCatalogPageSize     = 200
)

// CatalogReader exposes the stored catalog for browsing.
type CatalogReader interface {
	List(ctx context.Context, category models.Category, limit int) ([]models.Item, error)
	Count(ctx context.Context) (int, error)
}

type CatalogHandler struct {
	store CatalogReader
}

func NewCatalogHandler(store CatalogReader) *CatalogHandler {
	return &CatalogHandler{store: store}
}

type CatalogResponse struct {
	Items []models.Item `json:"items"`
	Total int           `json:"total"`
}

// List handles GET /api/catalog. An empty category returns items across all
// categories.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category != "" && !models.IsValidCategory(category) {
		writeError(w, http.StatusBadRequest, "Unknown category")
		return
	}

	limit := defaultCatalogPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		if parsed > maxCatalogPageSize {
			parsed = maxCatalogPageSize
		}
		limit = parsed
	}

	items, err := h.store.List(r.Context(), models.Category(category), limit)
	if err != nil {
		logging.Error("Failed to list catalog items", map[string]interface{}{
			"category": category,
			"error":    err.Error(),
		})
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	total, err := h.store.Count(r.Context())
	if err != nil {
		logging.Error("Failed to count catalog items", map[string]interface{}{
			"error": err.Error(),
		})
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if items == nil {
		items = []models.Item{}
	}
	writeJSON(w, http.StatusOK, CatalogResponse{Items: items, Total: total})
}
