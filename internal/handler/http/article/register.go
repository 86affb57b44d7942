package article

import (
	"net/http"

	"portfolio-blog/internal/common/pagination"
	"portfolio-blog/internal/content/htmlrender"
	"portfolio-blog/internal/handler/http/auth"
	artUC "portfolio-blog/internal/usecase/article"
)

// Register registers all article HTTP handlers with the given mux.
// Public routes: listing, slug detail, view counting and the tag index.
// Privileged routes (create, update, delete, get-by-id) are wrapped with the
// auth middleware; the listing additionally honors ?all=true when the request
// carries a valid credential.
func Register(mux *http.ServeMux, svc *artUC.Service, cfg pagination.Config, renderer *htmlrender.Renderer, policy auth.Policy) {
	authz := auth.Middleware(policy)

	mux.Handle("GET    /api/articles", ListHandler{Svc: svc, Cfg: cfg, Policy: policy})
	mux.Handle("GET    /api/articles/slug/", SlugHandler{Svc: svc, Renderer: renderer})
	mux.Handle("POST   /api/articles/", ViewHandler{Svc: svc})
	mux.Handle("GET    /api/tags", TagsHandler{Svc: svc})

	mux.Handle("POST   /api/articles", authz(CreateHandler{Svc: svc}))
	mux.Handle("GET    /api/articles/", authz(GetHandler{Svc: svc}))
	mux.Handle("PUT    /api/articles/", authz(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /api/articles/", authz(DeleteHandler{Svc: svc}))
}
