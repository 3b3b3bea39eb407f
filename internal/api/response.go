package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/imagestore"
	"github.com/erazemk/tastelog/internal/store"
)

// maxBodySize caps JSON request bodies.
const maxBodySize = 1 << 20

// jsonResponse writes a JSON response with the given status code.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			slog.Error("error encoding response", "error", err)
		}
	}
}

// jsonError converts err into exactly one client-safe JSON error response.
// The cause of a server error is logged and never sent.
func jsonError(w http.ResponseWriter, r *http.Request, err error) {
	ae := toAppError(err)
	if ae.HTTPStatus >= http.StatusInternalServerError {
		slog.Error(ae.Message,
			"error", ae.Cause,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", RequestIDFrom(r.Context()),
		)
	}
	jsonResponse(w, ae.HTTPStatus, ae)
}

// toAppError maps lower-layer errors onto the client error taxonomy.
func toAppError(err error) *apperr.Error {
	if ae := apperr.As(err); ae != nil {
		return ae
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperr.NotFound("見つかりません")
	case errors.Is(err, store.ErrDuplicate):
		return apperr.Duplicate("既に登録されています")
	case errors.Is(err, store.ErrInvalidReference):
		return apperr.Validation("参照先が存在しません")

	case errors.Is(err, imagestore.ErrPathTraversal):
		return apperr.PathTraversal("不正なパスです")
	case errors.Is(err, imagestore.ErrNotFound):
		return apperr.NotFound("画像が見つかりません")
	case errors.Is(err, imagestore.ErrInvalidCategory):
		return apperr.Validation("無効なカテゴリーです", apperr.FieldError{Field: "category", Message: "無効なカテゴリーです"})
	case errors.Is(err, imagestore.ErrUnsupportedType):
		return apperr.Validation("JPEG、PNG、WebP、GIF のみアップロードできます", apperr.FieldError{Field: "image", Message: "対応していない画像形式です"})
	case errors.Is(err, imagestore.ErrTooLarge):
		return apperr.Validation("画像サイズは5MB以下にしてください", apperr.FieldError{Field: "image", Message: "画像サイズが大きすぎます"})
	case errors.Is(err, imagestore.ErrEmpty):
		return apperr.Validation("画像ファイルが空です", apperr.FieldError{Field: "image", Message: "画像ファイルが空です"})
	case errors.Is(err, imagestore.ErrInvalidContent):
		return apperr.Validation("画像の内容が形式と一致しません", apperr.FieldError{Field: "image", Message: "画像の内容が形式と一致しません"})
	}

	return apperr.Internal("サーバーエラーが発生しました", err)
}

// decodePayload decodes a JSON object body into an untyped payload for the
// validation rules. Numbers are kept as json.Number.
func decodePayload(w http.ResponseWriter, r *http.Request) (map[string]any, error) {
	defer r.Body.Close()

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return nil, apperr.Validation("リクエストの形式が正しくありません")
	}
	return payload, nil
}
