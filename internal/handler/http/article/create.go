package article

import (
	"encoding/json"
	"net/http"

	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new article.
// @Summary      Create article
// @Description  Creates an article. Title, slug and excerpt are derived from the Markdown content when omitted.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body object true "Article fields"
// @Success      201 {object} DTO "Created article"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required"
// @Failure      409 {string} string "Conflict - slug already exists"
// @Router       /api/articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title              string   `json:"title"`
		Slug               string   `json:"slug"`
		Content            string   `json:"content"`
		Excerpt            string   `json:"excerpt"`
		Tags               []string `json:"tags"`
		CoverImage         string   `json:"cover_image"`
		CoverImagePosition string   `json:"cover_image_position"`
		Published          bool     `json:"published"`
		Featured           bool     `json:"featured"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Create(r.Context(), artUC.CreateInput{
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

	respond.JSON(w, http.StatusCreated, map[string]any{"data": FromEntity(art)})
}
