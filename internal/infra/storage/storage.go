// Package storage abstracts where uploaded cover images live. Two providers
// are implemented: S3-compatible object storage and the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Provider stores and removes uploaded files.
type Provider interface {
	// Put stores the file under the given name and returns its public URL.
	Put(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (string, error)

	// Delete removes a previously stored file. Deleting a file that does
	// not exist is not an error.
	Delete(ctx context.Context, filename string) error

	// OwnsURL reports whether the URL points at a file this provider
	// stores. Used to avoid deleting externally hosted images.
	OwnsURL(url string) bool
}

// FromEnv builds the storage provider selected by STORAGE_PROVIDER.
// Supported values are "s3" and "local" (the default).
func FromEnv(ctx context.Context) (Provider, error) {
	switch provider := os.Getenv("STORAGE_PROVIDER"); provider {
	case "s3":
		return NewS3ProviderFromEnv(ctx)
	case "", "local":
		return NewLocalProviderFromEnv()
	default:
		return nil, fmt.Errorf("unknown storage provider: %q", provider)
	}
}
