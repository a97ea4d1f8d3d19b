package http

import (
	"context"
	"net/http"

	"contenthub/internal/entity"
	"contenthub/internal/httpx"
	"contenthub/internal/stats"
)

// BookRepository is the read surface the book pages need.
type BookRepository interface {
	List(ctx context.Context, f entity.BookFilter) ([]entity.Book, error)
}

type BookHandler struct {
	repo BookRepository
}

func NewBookHandler(repo BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

// List handles GET /v1/books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	f := entity.BookFilter{Status: r.URL.Query().Get("status")}
	f.Limit, f.Offset = pagination(r)

	books, err := h.repo.List(r.Context(), f)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, books, map[string]interface{}{"count": len(books)})
}

// Stats handles GET /v1/books/stats.
func (h *BookHandler) Stats(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.List(r.Context(), entity.BookFilter{})
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, stats.Books(books), nil)
}
