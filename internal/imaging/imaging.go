package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ErrUnrecognized is returned when the data is not a decodable image.
var ErrUnrecognized = errors.New("unrecognized image data")

// ErrMismatch is returned when the data is an image of a different format
// than the one declared by the client.
var ErrMismatch = errors.New("image format does not match declared content type")

// formatMIME maps image package format names to MIME types.
var formatMIME = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"webp": "image/webp",
}

// Info describes a verified image.
type Info struct {
	MIME   string
	Width  int
	Height int
}

// Detect decodes only the image header and reports the format by sniffing
// bytes, not trusting client headers.
func Detect(data []byte) (*Info, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnrecognized, err)
	}
	mime, ok := formatMIME[format]
	if !ok {
		return nil, fmt.Errorf("%w: format %s", ErrUnrecognized, format)
	}
	return &Info{MIME: mime, Width: cfg.Width, Height: cfg.Height}, nil
}

// Verify checks that data is an image of the declared MIME type.
func Verify(data []byte, declared string) (*Info, error) {
	info, err := Detect(data)
	if err != nil {
		return nil, err
	}
	if info.MIME != declared {
		return nil, fmt.Errorf("%w: declared %s, detected %s", ErrMismatch, declared, info.MIME)
	}
	return info, nil
}
