package editor

import (
	"encoding/json"
	"net/http"

	"portfolio-blog/internal/content/mdx"
	"portfolio-blog/internal/handler/http/respond"
)

type MDXHandler struct{}

// ServeHTTP preprocesses editor Markdown for the MDX publish pipeline and
// extracts the table of contents.
// @Summary      Preprocess MDX
// @Tags         editor
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body object true "{\"content\": \"markdown\"}"
// @Success      200 {object} object "{\"content\": \"mdx\", \"toc\": [...]}"
// @Failure      400 {string} string "Bad request - invalid JSON body"
// @Failure      401 {string} string "Authentication required"
// @Router       /api/mdx [post]
func (h MDXHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"content": mdx.Preprocess(req.Content),
		"toc":     mdx.ExtractTOC(req.Content),
	})
}
