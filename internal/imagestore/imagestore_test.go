package imagestore

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)
	return s
}

func createTestPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(1, 1, color.RGBA{200, 100, 50, 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestIngestAndOpen(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	data := createTestPNG(t)

	rel, err := s.Ingest(ctx, CategoryDrippers, "image/png", data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(rel, "drippers/"))
	assert.True(t, strings.HasSuffix(rel, ".png"))
	assert.FileExists(t, filepath.Join(s.Root(), filepath.FromSlash(rel)))

	img, err := s.Open(ctx, rel)
	require.NoError(t, err)
	assert.Equal(t, data, img.Data)
	assert.Equal(t, "image/png", img.ContentType)
}

func TestIngestIsContentAddressed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	data := createTestPNG(t)

	first, err := s.Ingest(ctx, CategoryBeans, "image/png", data)
	require.NoError(t, err)
	second, err := s.Ingest(ctx, CategoryBeans, "image/png; charset=binary", data)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(filepath.Join(s.Root(), "beans"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestIngestRejections(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	data := createTestPNG(t)

	tests := []struct {
		name        string
		category    Category
		contentType string
		data        []byte
		want        error
	}{
		{"unknown category", Category("avatars"), "image/png", data, ErrInvalidCategory},
		{"traversal category", Category("../beans"), "image/png", data, ErrInvalidCategory},
		{"unsupported type", CategoryBeans, "image/bmp", data, ErrUnsupportedType},
		{"not an image type", CategoryBeans, "application/pdf", data, ErrUnsupportedType},
		{"malformed type", CategoryBeans, "", data, ErrUnsupportedType},
		{"empty", CategoryBeans, "image/png", nil, ErrEmpty},
		{"too large", CategoryBeans, "image/png", make([]byte, MaxSize+1), ErrTooLarge},
		{"wrong content", CategoryBeans, "image/jpeg", data, ErrInvalidContent},
		{"garbage", CategoryBeans, "image/gif", []byte("GIF89a..."), ErrInvalidContent},
	}

	for _, tt := range tests {
		_, err := s.Ingest(ctx, tt.category, tt.contentType, tt.data)
		assert.ErrorIs(t, err, tt.want, tt.name)
	}
}

func TestIngestAtSizeLimitIsNotRejectedForSize(t *testing.T) {
	s := newTestStore(t)
	data := make([]byte, MaxSize)
	copy(data, createTestPNG(t))

	_, err := s.Ingest(context.Background(), CategoryFilters, "image/png", data)
	assert.NotErrorIs(t, err, ErrTooLarge)
}

func TestOpenRejectsTraversal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// A file outside the root that a traversal would reach.
	secret := filepath.Join(filepath.Dir(s.Root()), "secret.txt")
	require.NoError(t, os.WriteFile(secret, []byte("secret"), 0o600))

	for _, rel := range []string{
		"../secret.txt",
		"../../etc/passwd",
		"beans/../../secret.txt",
		"beans/..",
		`..\secret.txt`,
	} {
		_, err := s.Open(ctx, rel)
		assert.ErrorIs(t, err, ErrPathTraversal, rel)
	}
}

func TestOpenNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Open(ctx, "beans/missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, os.MkdirAll(filepath.Join(s.Root(), "beans"), 0o755))
	_, err = s.Open(ctx, "beans")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Open(ctx, "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOpenInfersMIMEFromExtension(t *testing.T) {
	s := newTestStore(t)
	dir := filepath.Join(s.Root(), "beans")
	require.NoError(t, os.MkdirAll(dir, 0o755))

	files := map[string]string{
		"photo.png":  "image/png",
		"photo.JPG":  "image/jpeg",
		"photo.jpeg": "image/jpeg",
		"photo.webp": "image/webp",
		"photo.gif":  "image/gif",
		"notes.txt":  DefaultMIME,
		"noext":      DefaultMIME,
	}
	for name, want := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))

		img, err := s.Open(context.Background(), "beans/"+name)
		require.NoError(t, err, name)
		assert.Equal(t, want, img.ContentType, name)
	}
}

func TestCheckPath(t *testing.T) {
	assert.NoError(t, CheckPath("beans/photo.png"))
	assert.NoError(t, CheckPath("beans/..photo.png"))
	assert.NoError(t, CheckPath("beans/photo..png"))
	assert.ErrorIs(t, CheckPath("beans/../photo.png"), ErrPathTraversal)
	assert.ErrorIs(t, CheckPath(".."), ErrPathTraversal)
	assert.ErrorIs(t, CheckPath("beans/photo.png\x00.txt"), ErrPathTraversal)
}

func TestParseCategory(t *testing.T) {
	for _, c := range []string{"beans", "drippers", "filters", "tastings"} {
		got, err := ParseCategory(c)
		require.NoError(t, err)
		assert.Equal(t, Category(c), got)
	}

	_, err := ParseCategory("Beans")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
