package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/store"
	"github.com/erazemk/tastelog/internal/validate"
)

// ShopsHandler handles shop endpoints.
type ShopsHandler struct {
	Shops *store.Shops
}

// List handles GET /api/shops.
func (h *ShopsHandler) List(w http.ResponseWriter, r *http.Request) {
	shops, err := h.Shops.List(r.Context())
	if err != nil {
		jsonError(w, r, apperr.Internal("ショップの取得に失敗しました", err))
		return
	}
	jsonResponse(w, http.StatusOK, shops)
}

// Create handles POST /api/shops.
func (h *ShopsHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	in, err := validate.Shop(payload)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	shop, err := h.Shops.Create(r.Context(), in)
	if err != nil {
		jsonError(w, r, apperr.Internal("ショップの作成に失敗しました", err))
		return
	}

	slog.Info("shop created", "id", shop.ID, "name", shop.Name)
	jsonResponse(w, http.StatusCreated, shop)
}
