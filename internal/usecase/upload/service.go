// Package upload implements the cover image upload use case: MIME and size
// validation, collision-resistant filename generation and storage via the
// configured provider.
package upload

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// MaxFileSize is the upload size limit (5 MB).
const MaxFileSize = 5 << 20

// Sentinel errors for upload validation failures.
var (
	// ErrFileTooLarge indicates the upload exceeds MaxFileSize.
	ErrFileTooLarge = errors.New("file too large: must be 5MB or smaller")

	// ErrUnsupportedType indicates the file is not one of the allowed
	// image formats.
	ErrUnsupportedType = errors.New("unsupported file type: must be jpeg, png, gif or webp")
)

// allowedTypes maps accepted MIME types to the extension used in stored
// filenames.
var allowedTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// Store is the subset of the storage provider the upload use case needs.
type Store interface {
	Put(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)
}

// Result describes a stored upload.
type Result struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Service validates and stores cover image uploads.
type Service struct {
	Store Store

	// Now is overridable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Upload validates the file and stores it under a generated name.
// The content type is sniffed from the file bytes rather than trusted from
// the client's declared type.
// Returns ErrFileTooLarge or ErrUnsupportedType on validation failure.
func (s *Service) Upload(ctx context.Context, r io.Reader, size int64) (*Result, error) {
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}

	filename, err := generateFilename(s.now(), ext)
	if err != nil {
		return nil, fmt.Errorf("generate filename: %w", err)
	}

	body := io.MultiReader(bytes.NewReader(head), r)
	url, err := s.Store.Put(ctx, filename, body, size, contentType)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	return &Result{URL: url, Filename: filename}, nil
}

// generateFilename builds cover-<unix-ms>-<random>.<ext>. The random suffix
// makes simultaneous uploads collision resistant.
func generateFilename(now time.Time, ext string) (string, error) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}

	return fmt.Sprintf("cover-%d-%s.%s", now.UnixMilli(), buf, ext), nil
}
