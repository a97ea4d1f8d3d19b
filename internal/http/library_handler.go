package http

import (
	"context"
	"net/http"

	"contenthub/internal/httpx"
	"contenthub/internal/library"
)

// CatalogFetcher produces the digital-library catalog. It never fails.
type CatalogFetcher interface {
	Fetch(ctx context.Context) []library.Book
}

type LibraryHandler struct {
	svc CatalogFetcher
}

func NewLibraryHandler(svc CatalogFetcher) *LibraryHandler {
	return &LibraryHandler{svc: svc}
}

// List handles GET /v1/library/books.
func (h *LibraryHandler) List(w http.ResponseWriter, r *http.Request) {
	books := h.svc.Fetch(r.Context())
	httpx.JSONSuccess(w, r, books, map[string]interface{}{"count": len(books)})
}
