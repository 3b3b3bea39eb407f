package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/store"
	"github.com/erazemk/tastelog/internal/validate"
)

// DrippersHandler handles dripper endpoints.
type DrippersHandler struct {
	Drippers *store.Drippers
}

// List handles GET /api/drippers.
func (h *DrippersHandler) List(w http.ResponseWriter, r *http.Request) {
	drippers, err := h.Drippers.List(r.Context())
	if err != nil {
		jsonError(w, r, apperr.Internal("ドリッパーの取得に失敗しました", err))
		return
	}
	jsonResponse(w, http.StatusOK, drippers)
}

// Create handles POST /api/drippers.
func (h *DrippersHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(w, r)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	in, err := validate.Dripper(payload)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	dripper, err := h.Drippers.Create(r.Context(), in)
	if err != nil {
		jsonError(w, r, apperr.Internal("ドリッパーの作成に失敗しました", err))
		return
	}

	slog.Info("dripper created", "id", dripper.ID, "name", dripper.Name)
	jsonResponse(w, http.StatusCreated, dripper)
}

// Delete handles DELETE /api/drippers/{id}.
func (h *DrippersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		jsonError(w, r, apperr.Validation("無効なIDです", apperr.FieldError{Field: "id", Message: "無効なIDです"}))
		return
	}

	err = h.Drippers.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, r, apperr.NotFound("ドリッパーが見つかりません"))
		return
	}
	if err != nil {
		jsonError(w, r, apperr.Internal("ドリッパーの削除に失敗しました", err))
		return
	}

	slog.Info("dripper deleted", "id", id)
	jsonResponse(w, http.StatusOK, map[string]string{"message": "ドリッパーを削除しました"})
}
