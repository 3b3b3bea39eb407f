package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/store"
	"github.com/erazemk/tastelog/internal/validate"
)

// FiltersHandler handles filter endpoints.
type FiltersHandler struct {
	Filters *store.Filters
}

// List handles GET /api/filters.
func (h *FiltersHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, err := h.Filters.List(r.Context())
	if err != nil {
		jsonError(w, r, apperr.Internal("フィルターの取得に失敗しました", err))
		return
	}
	jsonResponse(w, http.StatusOK, filters)
}

// Create handles POST /api/filters.
func (h *FiltersHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	in, err := validate.Filter(payload)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	filter, err := h.Filters.Create(r.Context(), in)
	if err != nil {
		jsonError(w, r, apperr.Internal("フィルターの作成に失敗しました", err))
		return
	}

	slog.Info("filter created", "id", filter.ID, "name", filter.Name)
	jsonResponse(w, http.StatusCreated, filter)
}
