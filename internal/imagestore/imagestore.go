// Package imagestore keeps uploaded photos for master data and tastings on
// the local filesystem, one directory per category.
package imagestore

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/erazemk/tastelog/internal/imaging"
)

// MaxSize is the largest accepted upload, in bytes.
const MaxSize = 5 << 20

// DefaultMIME is served for files whose extension is not in the table.
const DefaultMIME = "application/octet-stream"

// Errors returned by Store. All of them are client errors.
var (
	ErrInvalidCategory = errors.New("invalid image category")
	ErrUnsupportedType = errors.New("unsupported image content type")
	ErrTooLarge        = errors.New("image exceeds size limit")
	ErrEmpty           = errors.New("image is empty")
	ErrInvalidContent  = errors.New("image content does not match content type")
	ErrPathTraversal   = errors.New("path traversal attempt")
	ErrNotFound        = errors.New("image not found")
)

// Category is the subdirectory an image belongs to.
type Category string

// Categories.
const (
	CategoryBeans    Category = "beans"
	CategoryDrippers Category = "drippers"
	CategoryFilters  Category = "filters"
	CategoryTastings Category = "tastings"
)

// ParseCategory validates an untrusted category name.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryBeans, CategoryDrippers, CategoryFilters, CategoryTastings:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

// extByMIME is the set of accepted upload types and their file extensions.
var extByMIME = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

var mimeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".avif": "image/avif",
}

// MIMEForPath infers the content type from a file extension.
func MIMEForPath(p string) string {
	if m, ok := mimeByExt[strings.ToLower(path.Ext(p))]; ok {
		return m
	}
	return DefaultMIME
}

// Image is a stored file read back into memory.
type Image struct {
	Path        string
	Data        []byte
	ContentType string
}

// Store reads and writes images under a single root directory.
type Store struct {
	root string
}

// New creates the root directory if needed.
func New(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving upload directory: %w", err)
	}
	return &Store{root: abs}, nil
}

// Root returns the absolute upload root.
func (s *Store) Root() string {
	return s.root
}

// Ingest validates data against the declared content type and size limit,
// then writes it under <root>/<category>/. The file name is derived from the
// content hash, so identical uploads share one file. It returns the
// slash-separated path relative to the root.
func (s *Store) Ingest(ctx context.Context, category Category, contentType string, data []byte) (string, error) {
	if _, err := ParseCategory(string(category)); err != nil {
		return "", err
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, contentType)
	}
	ext, ok := extByMIME[mediaType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mediaType)
	}

	if len(data) == 0 {
		return "", ErrEmpty
	}
	if len(data) > MaxSize {
		return "", fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}

	if _, err := imaging.Verify(data, mediaType); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	sum := blake2b.Sum256(data)
	name := hex.EncodeToString(sum[:16]) + ext
	rel := path.Join(string(category), name)

	dir := filepath.Join(s.root, string(category))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating category directory: %w", err)
	}

	dest := filepath.Join(dir, name)
	if _, err := os.Stat(dest); err == nil {
		return rel, nil
	}

	if err := writeAtomic(dir, dest, data); err != nil {
		return "", err
	}
	return rel, nil
}

// writeAtomic writes data to a temporary file in dir and renames it into place.
func writeAtomic(dir, dest string, data []byte) error {
	f, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		removeTemp(tmp)
		return fmt.Errorf("writing image: %w", err)
	}
	if err := f.Close(); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("closing image: %w", err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("setting image permissions: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("storing image: %w", err)
	}
	return nil
}

func removeTemp(name string) {
	if err := os.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to remove temp upload", "file", name, "error", err)
	}
}

// CheckPath rejects any relative path containing a parent-directory segment.
// It never touches the filesystem.
func CheckPath(rel string) error {
	for _, seg := range strings.FieldsFunc(rel, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return ErrPathTraversal
		}
	}
	if strings.ContainsRune(rel, 0) {
		return ErrPathTraversal
	}
	return nil
}

// Open reads the image at the slash-separated relative path rel.
func (s *Store) Open(ctx context.Context, rel string) (*Image, error) {
	if err := CheckPath(rel); err != nil {
		return nil, err
	}

	full, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("stat image: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading image: %w", err)
	}

	return &Image{
		Path:        rel,
		Data:        data,
		ContentType: MIMEForPath(rel),
	}, nil
}

// resolve joins rel onto the root and makes sure the result stays inside it.
func (s *Store) resolve(rel string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if full == s.root {
		return "", ErrNotFound
	}
	if !strings.HasPrefix(full, s.root+string(filepath.Separator)) {
		return "", ErrPathTraversal
	}
	return full, nil
}
