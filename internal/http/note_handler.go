package http

import (
	"context"
	"net/http"

	"contenthub/internal/entity"
	"contenthub/internal/httpx"
	"contenthub/internal/stats"
)

// NoteRepository is the read surface the notes pages need.
type NoteRepository interface {
	List(ctx context.Context, f entity.NoteFilter) ([]entity.Note, error)
}

type NoteHandler struct {
	repo NoteRepository
}

func NewNoteHandler(repo NoteRepository) *NoteHandler {
	return &NoteHandler{repo: repo}
}

// List handles GET /v1/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	f := entity.NoteFilter{
		Category:     r.URL.Query().Get("category"),
		FavoriteOnly: r.URL.Query().Get("favorite") == "true",
	}
	f.Limit, f.Offset = pagination(r)

	notes, err := h.repo.List(r.Context(), f)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, notes, map[string]interface{}{"count": len(notes)})
}

// Stats handles GET /v1/notes/stats.
func (h *NoteHandler) Stats(w http.ResponseWriter, r *http.Request) {
	notes, err := h.repo.List(r.Context(), entity.NoteFilter{})
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, stats.Notes(notes), nil)
}
