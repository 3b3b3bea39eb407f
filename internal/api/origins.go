package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/store"
	"github.com/erazemk/tastelog/internal/validate"
)

// OriginsHandler handles origin endpoints.
type OriginsHandler struct {
	Origins *store.Origins
}

// List handles GET /api/origins.
func (h *OriginsHandler) List(w http.ResponseWriter, r *http.Request) {
	origins, err := h.Origins.List(r.Context())
	if err != nil {
		jsonError(w, r, apperr.Internal("産地の取得に失敗しました", err))
		return
	}
	jsonResponse(w, http.StatusOK, origins)
}

// Create handles POST /api/origins.
func (h *OriginsHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	in, err := validate.Origin(payload)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	origin, err := h.Origins.Create(r.Context(), in)
	if errors.Is(err, store.ErrDuplicate) {
		jsonError(w, r, apperr.Duplicate("この産地は既に登録されています"))
		return
	}
	if err != nil {
		jsonError(w, r, apperr.Internal("産地の作成に失敗しました", err))
		return
	}

	slog.Info("origin created", "id", origin.ID, "name", origin.Name)
	jsonResponse(w, http.StatusCreated, origin)
}
