package config

import (
	"strings"

	pkgconfig "portfolio-blog/pkg/config"
)

// SiteConfig holds the public identity of the blog, used by the RSS feed
// and the sitemap.
type SiteConfig struct {
	BaseURL     string
	Title       string
	Description string
}

// LoadSiteConfig reads SITE_URL, SITE_TITLE and SITE_DESCRIPTION with
// development-friendly defaults.
func LoadSiteConfig() SiteConfig {
	return SiteConfig{
		BaseURL:     strings.TrimRight(pkgconfig.GetEnvString("SITE_URL", "http://localhost:3000"), "/"),
		Title:       pkgconfig.GetEnvString("SITE_TITLE", "Portfolio Blog"),
		Description: pkgconfig.GetEnvString("SITE_DESCRIPTION", "Articles on software engineering"),
	}
}
