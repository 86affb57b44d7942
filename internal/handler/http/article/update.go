package article

import (
	"encoding/json"
	"net/http"

	"portfolio-blog/internal/handler/http/pathutil"
	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP partially updates an article. Absent fields keep their current
// values; derived fields follow the content unless supplied in the same call.
// @Summary      Update article
// @Description  Partially updates an article. Changing the content recomputes title, slug, excerpt and reading time unless the same request supplies them.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "Article ID (UUID)"
// @Param        article body object true "Fields to update"
// @Success      200 {object} DTO "Updated article"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required"
// @Failure      404 {string} string "Not found"
// @Failure      409 {string} string "Conflict - slug already exists"
// @Router       /api/articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/api/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title              *string   `json:"title"`
		Slug               *string   `json:"slug"`
		Content            *string   `json:"content"`
		Excerpt            *string   `json:"excerpt"`
		Tags               *[]string `json:"tags"`
		CoverImage         *string   `json:"cover_image"`
		CoverImagePosition *string   `json:"cover_image_position"`
		Published          *bool     `json:"published"`
		Featured           *bool     `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:                 id,
		Title:              req.Title,
		Slug:               req.Slug,
		Content:            req.Content,
		Excerpt:            req.Excerpt,
		Tags:               req.Tags,
		CoverImage:         req.CoverImage,
		CoverImagePosition: req.CoverImagePosition,
		Published:          req.Published,
		Featured:           req.Featured,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"data": FromEntity(art)})
}
