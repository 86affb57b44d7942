package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalProvider stores uploads on the local filesystem and serves them
// under a static base URL (typically /uploads).
type LocalProvider struct {
	dir     string
	baseURL string
}

// NewLocalProvider creates a provider writing into dir. The directory is
// created if it does not exist.
func NewLocalProvider(dir, baseURL string) (*LocalProvider, error) {
	if dir == "" {
		dir = "uploads"
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalProvider{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// NewLocalProviderFromEnv reads STORAGE_LOCAL_DIR and STORAGE_LOCAL_BASE_URL.
func NewLocalProviderFromEnv() (*LocalProvider, error) {
	return NewLocalProvider(os.Getenv("STORAGE_LOCAL_DIR"), os.Getenv("STORAGE_LOCAL_BASE_URL"))
}

// Dir returns the directory uploads are written to, for static file serving.
func (p *LocalProvider) Dir() string { return p.dir }

func (p *LocalProvider) Put(_ context.Context, filename string, r io.Reader, _ int64, _ string) (string, error) {
	// Upload filenames are generated server side, but reject separators
	// anyway so a stored name can never escape the upload directory.
	if filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename: %q", filename)
	}

	path := filepath.Join(p.dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return p.baseURL + "/" + filename, nil
}

func (p *LocalProvider) Delete(_ context.Context, filename string) error {
	if filename != filepath.Base(filename) {
		return fmt.Errorf("invalid filename: %q", filename)
	}
	err := os.Remove(filepath.Join(p.dir, filename))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete upload file: %w", err)
	}
	return nil
}

func (p *LocalProvider) OwnsURL(url string) bool {
	return strings.HasPrefix(url, p.baseURL+"/")
}
