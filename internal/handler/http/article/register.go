package article

import (
	"log/slog"
	"net/http"

	"newsflow/internal/usecase/catalog"
)

// Register registers all article-related HTTP handlers with the given mux.
// It sets up routes for listing, category filtering, fetching, creating,
// updating, and deleting articles. The category routes are registered with a
// longer pattern so they take precedence over the id routes.
func Register(mux *http.ServeMux, svc *catalog.Service, logger *slog.Logger) {
	mux.Handle("GET    /articles", ListHandler{Svc: svc, Logger: logger})
	mux.Handle("GET    /articles/category/", ListByCategoryHandler{svc})
	mux.Handle("GET    /articles/", GetHandler{svc})

	mux.Handle("POST   /articles", CreateHandler{svc})
	mux.Handle("PUT    /articles/", UpdateHandler{svc})
	mux.Handle("DELETE /articles/", DeleteHandler{svc})
}
