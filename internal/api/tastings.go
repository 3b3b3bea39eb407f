package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/store"
	"github.com/erazemk/tastelog/internal/validate"
)

// TastingsHandler handles tasting endpoints.
type TastingsHandler struct {
	Tastings *store.Tastings
}

// List handles GET /api/tastings.
func (h *TastingsHandler) List(w http.ResponseWriter, r *http.Request) {
	tastings, err := h.Tastings.List(r.Context())
	if err != nil {
		jsonError(w, r, apperr.Internal("テイスティング記録の取得に失敗しました", err))
		return
	}
	jsonResponse(w, http.StatusOK, tastings)
}

// Create handles POST /api/tastings.
func (h *TastingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	in, err := validate.Tasting(payload)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	tasting, err := h.Tastings.Create(r.Context(), in)
	if errors.Is(err, store.ErrInvalidReference) {
		jsonError(w, r, apperr.Validation("参照先の豆・ドリッパー・フィルターが存在しません"))
		return
	}
	if err != nil {
		jsonError(w, r, apperr.Internal("テイスティング記録の作成に失敗しました", err))
		return
	}

	slog.Info("tasting created", "id", tasting.ID)
	jsonResponse(w, http.StatusCreated, tasting)
}
