package http

import (
	"context"
	"net/http"

	"contenthub/internal/entity"
	"contenthub/internal/httpx"
	"contenthub/internal/stats"
)

// ProjectRepository is the read surface the project pages need.
type ProjectRepository interface {
	List(ctx context.Context, f entity.ProjectFilter) ([]entity.Project, error)
}

type ProjectHandler struct {
	repo ProjectRepository
}

func NewProjectHandler(repo ProjectRepository) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

// List handles GET /v1/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	f := entity.ProjectFilter{
		Status:       r.URL.Query().Get("status"),
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
	}
	f.Limit, f.Offset = pagination(r)

	projects, err := h.repo.List(r.Context(), f)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, projects, map[string]interface{}{"count": len(projects)})
}

// Stats handles GET /v1/projects/stats.
func (h *ProjectHandler) Stats(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.List(r.Context(), entity.ProjectFilter{})
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "internal_error", "Internal server error")
		return
	}

	httpx.JSONSuccess(w, r, stats.Projects(projects), nil)
}
