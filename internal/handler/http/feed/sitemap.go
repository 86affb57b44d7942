package feed

import (
	"encoding/xml"
	"net/http"
	"time"

	"portfolio-blog/internal/config"
	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapHandler serves /sitemap.xml: the static pages plus one entry per
// published article.
type SitemapHandler struct {
	Svc  *artUC.Service
	Site config.SiteConfig
}

func (h SitemapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slugs, err := h.Svc.PublishedSlugs(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	now := time.Now().UTC().Format("2006-01-02")
	set := urlSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []urlEntry{
			{Loc: h.Site.BaseURL + "/", LastMod: now, ChangeFreq: "weekly", Priority: "1.0"},
			{Loc: h.Site.BaseURL + "/blog", LastMod: now, ChangeFreq: "daily", Priority: "0.9"},
		},
	}
	for _, entry := range slugs {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        h.Site.BaseURL + "/blog/" + entry.Slug,
			LastMod:    entry.UpdatedAt.UTC().Format("2006-01-02"),
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	writeXML(w, set, "application/xml; charset=utf-8")
}
