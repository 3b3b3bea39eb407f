package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/store"
	"github.com/erazemk/tastelog/internal/validate"
)

// BeansHandler handles bean master endpoints.
type BeansHandler struct {
	Beans *store.Beans
}

// List handles GET /api/bean-masters.
func (h *BeansHandler) List(w http.ResponseWriter, r *http.Request) {
	beans, err := h.Beans.List(r.Context())
	if err != nil {
		jsonError(w, r, apperr.Internal("豆の取得に失敗しました", err))
		return
	}
	jsonResponse(w, http.StatusOK, beans)
}

// Create handles POST /api/bean-masters.
func (h *BeansHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	in, err := validate.BeanMaster(payload)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	bean, err := h.Beans.Create(r.Context(), in)
	if err != nil {
		jsonError(w, r, apperr.Internal("豆の作成に失敗しました", err))
		return
	}

	slog.Info("bean created", "id", bean.ID, "name", bean.Name)
	jsonResponse(w, http.StatusCreated, bean)
}
