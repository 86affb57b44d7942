package article

import (
	"fmt"
	"net/http"
	"strconv"

	"portfolio-blog/internal/common/pagination"
	httphandler "portfolio-blog/internal/handler/http"
	"portfolio-blog/internal/handler/http/auth"
	"portfolio-blog/internal/handler/http/respond"
	artUC "portfolio-blog/internal/usecase/article"
)

// ListHandler serves the article listing. The public mode returns a paginated
// envelope of published articles; ?all=true switches to the privileged flat
// listing that includes drafts and requires a valid bearer credential.
type ListHandler struct {
	Svc    *artUC.Service
	Cfg    pagination.Config
	Policy auth.Policy
}

// ServeHTTP lists articles.
// @Summary      List articles
// @Description  Lists published articles with pagination and optional tag/featured filters. With all=true and a valid credential, returns every article including drafts.
// @Tags         articles
// @Produce      json
// @Param        page query int false "Page number (1-based)"
// @Param        pageSize query int false "Items per page"
// @Param        tag query string false "Filter by tag"
// @Param        featured query bool false "Restrict to featured articles when true"
// @Param        all query bool false "Privileged: return all articles including drafts"
// @Success      200 {object} pagination.Response[DTO] "Page of articles"
// @Failure      400 {string} string "Bad request - invalid query parameter"
// @Failure      401 {string} string "Authentication required for all=true"
// @Router       /api/articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("all") == "true" {
		h.listAll(w, r)
		return
	}

	params, err := pagination.ParseQueryParams(r, h.Cfg)
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	opts := artUC.ListOptions{
		Params: params,
		Tag:    r.URL.Query().Get("tag"),
	}
	if f := r.URL.Query().Get("featured"); f != "" {
		featured, err := strconv.ParseBool(f)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest,
				fmt.Errorf("invalid query parameter: featured must be a boolean"))
			return
		}
		// Only the featured subset is selectable; featured=false means no
		// filter, not "non-featured articles only".
		if featured {
			opts.Featured = &featured
		}
	}

	result, err := h.Svc.ListPublic(r.Context(), opts)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, pagination.NewResponse(FromEntities(result.Data), result.Total, params))
}

func (h ListHandler) listAll(w http.ResponseWriter, r *http.Request) {
	if err := auth.AuthenticateRequest(h.Policy, r); err != nil {
		respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
		return
	}

	articles, err := h.Svc.ListAll(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	// The full listing is the one place both publication states are known,
	// so refresh the gauges here.
	published := 0
	for _, a := range articles {
		if a.Published {
			published++
		}
	}
	httphandler.UpdateArticlesTotal(published, len(articles)-published)

	respond.JSON(w, http.StatusOK, map[string]any{"data": FromEntities(articles)})
}
