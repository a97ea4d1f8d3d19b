package http

import (
	"context"
	"net/http"

	"contenthub/internal/entity"
	"contenthub/internal/httpx"
)

// Counting surfaces used by the dashboard overview.
type (
	TodoCounter interface {
		CountActive(ctx context.Context) (int, error)
	}
	NoteCounter interface {
		Count(ctx context.Context) (int, error)
	}
	StatusCounter interface {
		CountByStatus(ctx context.Context, status string) (int, error)
	}
)

// DashboardStats is the overview card row on the dashboard page.
type DashboardStats struct {
	ActiveTodos    int `json:"active_todos"`
	Notes          int `json:"notes"`
	PublishedPosts int `json:"published_posts"`
	BooksReading   int `json:"books_reading"`
	ActiveProjects int `json:"active_projects"`
}

type DashboardHandler struct {
	todos    TodoCounter
	notes    NoteCounter
	posts    StatusCounter
	books    StatusCounter
	projects StatusCounter
}

func NewDashboardHandler(todos TodoCounter, notes NoteCounter, posts, books, projects StatusCounter) *DashboardHandler {
	return &DashboardHandler{todos: todos, notes: notes, posts: posts, books: books, projects: projects}
}

// Stats handles GET /v1/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var s DashboardStats
	var err error

	s.ActiveTodos, err = h.todos.CountActive(ctx)
	if err == nil {
		s.Notes, err = h.notes.Count(ctx)
	}
	if err == nil {
		s.PublishedPosts, err = h.posts.CountByStatus(ctx, entity.PostPublished)
	}
	if err == nil {
		s.BooksReading, err = h.books.CountByStatus(ctx, entity.BookReading)
	}
	if err == nil {
		s.ActiveProjects, err = h.projects.CountByStatus(ctx, entity.ProjectInProgress)
	}
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, s, nil)
}
