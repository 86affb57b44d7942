package article

import (
	"net/http"

	"portfolio-blog/internal/handler/http/pathutil"
	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP retrieves a single article by ID, drafts included.
// @Summary      Get article
// @Description  Returns the article with the given ID, whether published or draft.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Article ID (UUID)"
// @Success      200 {object} DTO "Article"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      401 {string} string "Authentication required"
// @Failure      404 {string} string "Not found"
// @Router       /api/articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"data": FromEntity(art)})
}
