package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/erazemk/tastelog/internal/apperr"
	"github.com/erazemk/tastelog/internal/imagestore"
)

// imageCacheControl is sent with every served image. Stored names are
// content hashes, so a path never changes meaning.
const imageCacheControl = "public, max-age=31536000, immutable"

// multipartOverhead allows for form boundaries and headers around the file.
const multipartOverhead = 1 << 20

// ImagesHandler handles image upload and serving.
type ImagesHandler struct {
	Images *imagestore.Store
}

type uploadResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Upload handles POST /api/uploads/{category}.
func (h *ImagesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	category, err := imagestore.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		jsonError(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, imagestore.MaxSize+multipartOverhead)
	if err := r.ParseMultipartForm(imagestore.MaxSize + multipartOverhead); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, r, imagestore.ErrTooLarge)
			return
		}
		jsonError(w, r, apperr.Validation("マルチパートフォームが不正です"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		jsonError(w, r, apperr.Validation("画像ファイルは必須です", apperr.FieldError{Field: "image", Message: "画像ファイルは必須です"}))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == imagestore.DefaultMIME {
		contentType = imagestore.MIMEForPath(header.Filename)
	}

	data, err := io.ReadAll(io.LimitReader(file, imagestore.MaxSize+1))
	if err != nil {
		jsonError(w, r, apperr.Internal("画像の読み込みに失敗しました", err))
		return
	}

	rel, err := h.Images.Ingest(r.Context(), category, contentType, data)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	imageUploads.WithLabelValues(string(category)).Inc()
	imageUploadBytes.Add(float64(len(data)))
	slog.Info("image uploaded", "path", rel, "bytes", len(data), "type", contentType)

	jsonResponse(w, http.StatusCreated, uploadResponse{
		Path: rel,
		URL:  "/api/images/" + rel,
	})
}

// Serve handles GET /api/images/*. The path is checked for traversal before
// the store touches the filesystem.
func (h *ImagesHandler) Serve(w http.ResponseWriter, r *http.Request) {
	rel, err := url.PathUnescape(chi.URLParam(r, "*"))
	if err != nil {
		jsonError(w, r, apperr.Validation("不正なパスです"))
		return
	}
	if err := imagestore.CheckPath(rel); err != nil {
		slog.Warn("rejected image path", "path", rel, "request_id", RequestIDFrom(r.Context()))
		jsonError(w, r, err)
		return
	}

	img, err := h.Images.Open(r.Context(), rel)
	if err != nil {
		jsonError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.Header().Set("Cache-Control", imageCacheControl)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(img.Data); err != nil {
		slog.Debug("writing image", "path", rel, "error", err)
	}
}
