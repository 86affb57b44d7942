package article

import (
	"net/http"

	"portfolio-blog/internal/handler/http/pathutil"
	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an article and, best effort, its stored cover image.
// @Summary      Delete article
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path string true "Article ID (UUID)"
// @Success      200 {object} object "{\"success\": true}"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      401 {string} string "Authentication required"
// @Failure      404 {string} string "Not found"
// @Router       /api/articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
