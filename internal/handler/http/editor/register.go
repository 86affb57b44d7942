package editor

import (
	"net/http"

	"portfolio-blog/internal/handler/http/auth"
)

// Register registers the editor endpoints with the given mux. Both are
// privileged: the editor is an admin-only surface.
func Register(mux *http.ServeMux, policy auth.Policy) {
	authz := auth.Middleware(policy)

	mux.Handle("POST   /api/preview", authz(PreviewHandler{}))
	mux.Handle("POST   /api/mdx", authz(MDXHandler{}))
}
