package article

import (
	"net/http"

	httphandler "portfolio-blog/internal/handler/http"
	"portfolio-blog/internal/handler/http/pathutil"
	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

type ViewHandler struct{ Svc *artUC.Service }

// ServeHTTP increments the view counter of a published article. The endpoint
// is fire-and-forget: unknown or unpublished slugs still return success.
// @Summary      Count article view
// @Tags         articles
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {object} object "{\"success\": true}"
// @Failure      400 {string} string "Bad request - invalid slug"
// @Router       /api/articles/{slug}/view [post]
func (h ViewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug, err := pathutil.ExtractSlug(r.URL.Path, "/api/articles/", "/view")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.IncrementView(r.Context(), slug); err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	httphandler.RecordArticleView()
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
