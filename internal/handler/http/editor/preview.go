// Package editor provides the privileged editing endpoints: the live
// Markdown preview and the MDX preprocessing step used on publish.
package editor

import (
	"encoding/json"
	"net/http"

	"portfolio-blog/internal/content/preview"
	"portfolio-blog/internal/handler/http/respond"
)

type PreviewHandler struct{}

// ServeHTTP renders editor Markdown into preview HTML.
// The renderer never fails on malformed input; unknown syntax degrades to
// plain paragraphs, so this endpoint has no content-dependent error path.
// @Summary      Render editor preview
// @Tags         editor
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body body object true "{\"content\": \"markdown\"}"
// @Success      200 {object} object "{\"html\": \"...\"}"
// @Failure      400 {string} string "Bad request - invalid JSON body"
// @Failure      401 {string} string "Authentication required"
// @Router       /api/preview [post]
func (h PreviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"html": preview.Render(req.Content)})
}
