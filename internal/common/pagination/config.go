// Package pagination provides offset-based pagination helpers shared by
// list endpoints: query parameter parsing, offset math and the paginated
// response envelope.
package pagination

import (
	pkgconfig "portfolio-blog/pkg/config"
)

// Config holds pagination configuration settings.
// These values can be loaded from environment variables or config files.
type Config struct {
	DefaultPage     int // Default page number (typically 1)
	DefaultPageSize int // Default items per page (typically 10)
	MaxPageSize     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=1, pageSize=10, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage:     1,
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}
}

// LoadFromEnv loads pagination config from environment variables.
// Supported environment variables:
//   - PAGINATION_DEFAULT_PAGE: Default page number
//   - PAGINATION_DEFAULT_PAGE_SIZE: Default items per page
//   - PAGINATION_MAX_PAGE_SIZE: Maximum items per page
//
// Falls back to DefaultConfig() if environment variables are not set.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:     pkgconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultPageSize: pkgconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:     pkgconfig.GetEnvInt("PAGINATION_MAX_PAGE_SIZE", 100),
	}
}
