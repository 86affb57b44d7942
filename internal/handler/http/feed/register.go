package feed

import (
	"net/http"

	"portfolio-blog/internal/config"
	"portfolio-blog/internal/content/htmlrender"
	artUC "portfolio-blog/internal/usecase/article"
)

// Register registers the feed endpoints with the given mux. Both are public.
func Register(mux *http.ServeMux, svc *artUC.Service, site config.SiteConfig, renderer *htmlrender.Renderer) {
	mux.Handle("GET    /rss.xml", RSSHandler{Svc: svc, Site: site, Renderer: renderer})
	mux.Handle("GET    /sitemap.xml", SitemapHandler{Svc: svc, Site: site})
}
