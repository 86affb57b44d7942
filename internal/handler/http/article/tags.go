package article

import (
	"net/http"

	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

type TagsHandler struct{ Svc *artUC.Service }

// ServeHTTP lists the distinct tags across published articles, sorted
// alphabetically.
// @Summary      List tags
// @Tags         articles
// @Produce      json
// @Success      200 {object} object "{\"data\": [\"go\", \"web\"]}"
// @Router       /api/tags [get]
func (h TagsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tags, err := h.Svc.Tags(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}

	respond.JSON(w, http.StatusOK, map[string]any{"data": tags})
}
