package article

import (
	"errors"
	"net/http"

	"portfolio-blog/internal/domain/entity"
	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

// writeServiceError maps usecase errors onto HTTP status codes and writes the
// sanitized JSON error body.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *entity.ValidationError

	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &vErr):
		code = http.StatusBadRequest
	case errors.Is(err, artUC.ErrInvalidArticleID):
		code = http.StatusBadRequest
	case errors.Is(err, artUC.ErrArticleNotFound):
		code = http.StatusNotFound
	case errors.Is(err, artUC.ErrSlugConflict):
		code = http.StatusConflict
	}

	respond.SafeError(w, code, err)
}
