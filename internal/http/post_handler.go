package http

import (
	"context"
	"errors"
	"net/http"

	"contenthub/internal/entity"
	"contenthub/internal/httpx"
	"contenthub/internal/stats"
	"contenthub/internal/store"
)

// PostRepository is the read surface the blog pages need.
type PostRepository interface {
	List(ctx context.Context, f entity.PostFilter) ([]entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (entity.Post, error)
}

type PostHandler struct {
	repo PostRepository
}

func NewPostHandler(repo PostRepository) *PostHandler {
	return &PostHandler{repo: repo}
}

// List handles GET /v1/posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	f := entity.PostFilter{
		Status: r.URL.Query().Get("status"),
		Tag:    r.URL.Query().Get("tag"),
	}
	f.Limit, f.Offset = pagination(r)

	posts, err := h.repo.List(r.Context(), f)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, posts, map[string]interface{}{"count": len(posts)})
}

// GetBySlug handles GET /v1/posts/{slug}.
func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		httpx.JSONError(w, r, http.StatusNotFound, "not_found", "Post not found")
		return
	}

	post, err := h.repo.GetBySlug(r.Context(), slug)
	switch {
	case errors.Is(err, store.ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "not_found", "Post not found")
		return
	case err != nil:
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, post, nil)
}

// Stats handles GET /v1/posts/stats.
func (h *PostHandler) Stats(w http.ResponseWriter, r *http.Request) {
	posts, err := h.repo.List(r.Context(), entity.PostFilter{})
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, stats.Posts(posts), nil)
}
