package article

import (
	"log/slog"
	"net/http"

	"portfolio-blog/internal/content/htmlrender"
	"portfolio-blog/internal/handler/http/pathutil"
	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

// SlugHandler serves the public article detail page by slug. Drafts are
// invisible here and report 404. The response includes the rendered HTML so
// the frontend does not need its own Markdown pipeline.
type SlugHandler struct {
	Svc      *artUC.Service
	Renderer *htmlrender.Renderer
}

// ServeHTTP retrieves a published article by slug.
// @Summary      Get published article by slug
// @Tags         articles
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {object} DTO "Published article with rendered HTML"
// @Failure      400 {string} string "Bad request - invalid slug"
// @Failure      404 {string} string "Not found or not published"
// @Router       /api/articles/slug/{slug} [get]
func (h SlugHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, "/api/articles/slug/", "")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.GetPublicBySlug(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	dto := FromEntity(art)
	if h.Renderer != nil {
		html, err := h.Renderer.Render(art.Content)
		if err != nil {
			// The raw Markdown is still usable; serve the article without
			// content_html rather than failing the page.
			slog.Default().Warn("article html render failed",
				slog.String("slug", slug),
				slog.String("error", err.Error()))
		} else {
			dto.ContentHTML = html
		}
	}

	respond.JSON(w, http.StatusOK, map[string]any{"data": dto})
}
