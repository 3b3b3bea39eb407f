package api

import (
	"context"
	"net/http"
	"time"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/db"
)

// HealthHandler reports whether the store is reachable.
type HealthHandler struct {
	DB *db.DB
}

// Check handles GET /api/health.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.PingContext(ctx); err != nil {
		jsonError(w, r, apperr.Unavailable("データベースに接続できません", err))
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": h.DB.Dialect().String(),
	})
}
