package http

import (
	"context"
	"net/http"
	"time"

	"contenthub/internal/entity"
	"contenthub/internal/httpx"
	"contenthub/internal/stats"
)

// TodoRepository is the read surface the todo pages need.
type TodoRepository interface {
	List(ctx context.Context, f entity.TodoFilter) ([]entity.Todo, error)
}

type TodoHandler struct {
	repo TodoRepository
	now  func() time.Time
}

func NewTodoHandler(repo TodoRepository) *TodoHandler {
	return &TodoHandler{repo: repo, now: time.Now}
}

// List handles GET /v1/todos.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	f := entity.TodoFilter{
		Priority:    r.URL.Query().Get("priority"),
		PendingOnly: r.URL.Query().Get("pending") == "true",
	}
	f.Limit, f.Offset = pagination(r)

	todos, err := h.repo.List(r.Context(), f)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, todos, map[string]interface{}{"count": len(todos)})
}

// Stats handles GET /v1/todos/stats. The evaluation instant is captured
// once so every todo in the response is classified against the same clock
// reading.
func (h *TodoHandler) Stats(w http.ResponseWriter, r *http.Request) {
	todos, err := h.repo.List(r.Context(), entity.TodoFilter{})
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, stats.Todos(todos, h.now()), nil)
}
