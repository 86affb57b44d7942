// Package feed serves the public read-only projections over published
// articles: the RSS feed and the XML sitemap. Both are regenerated per
// request; the article volume of a personal blog does not justify caching.
package feed

import (
	"encoding/xml"
	"log/slog"
	"net/http"

	"portfolio-blog/internal/common/pagination"
	"portfolio-blog/internal/config"
	"portfolio-blog/internal/content/htmlrender"
	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

// rssItemLimit caps the feed at the most recent published articles.
const rssItemLimit = 20

type rssFeed struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	ContentNS string     `xml:"xmlns:content,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        string   `xml:"guid"`
	PubDate     string   `xml:"pubDate"`
	Description string   `xml:"description"`
	Content     *rssHTML `xml:"content:encoded,omitempty"`
}

type rssHTML struct {
	Text string `xml:",cdata"`
}

// RSSHandler serves /rss.xml.
type RSSHandler struct {
	Svc      *artUC.Service
	Site     config.SiteConfig
	Renderer *htmlrender.Renderer
}

func (h RSSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.ListPublic(r.Context(), artUC.ListOptions{
		Params: pagination.Params{Page: 1, PageSize: rssItemLimit},
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	channel := rssChannel{
		Title:       h.Site.Title,
		Link:        h.Site.BaseURL,
		Description: h.Site.Description,
		Language:    "en",
	}
	for _, art := range result.Data {
		item := rssItem{
			Title:       art.Title,
			Link:        h.Site.BaseURL + "/blog/" + art.Slug,
			GUID:        h.Site.BaseURL + "/blog/" + art.Slug,
			Description: art.Excerpt,
		}
		if art.PublishedAt != nil {
			item.PubDate = art.PublishedAt.Format(http.TimeFormat)
		}
		if h.Renderer != nil {
			html, err := h.Renderer.Render(art.Content)
			if err != nil {
				slog.Default().Warn("rss item render failed",
					slog.String("slug", art.Slug),
					slog.String("error", err.Error()))
			} else {
				item.Content = &rssHTML{Text: html}
			}
		}
		channel.Items = append(channel.Items, item)
	}
	if len(result.Data) > 0 && result.Data[0].PublishedAt != nil {
		channel.LastBuildDate = result.Data[0].PublishedAt.Format(http.TimeFormat)
	}

	writeXML(w, rssFeed{
		Version:   "2.0",
		ContentNS: "http://purl.org/rss/1.0/modules/content/",
		Channel:   channel,
	}, "application/rss+xml; charset=utf-8")
}

func writeXML(w http.ResponseWriter, v any, contentType string) {
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return
	}
	if err := xml.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("xml encode failed", slog.Any("error", err))
	}
}
