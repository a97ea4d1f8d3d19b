package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounts struct {
	active   int
	notes    int
	byStatus map[string]int
	err      error
}

func (f *fakeCounts) CountActive(context.Context) (int, error) { return f.active, f.err }
func (f *fakeCounts) Count(context.Context) (int, error)       { return f.notes, f.err }
func (f *fakeCounts) CountByStatus(_ context.Context, status string) (int, error) {
	return f.byStatus[status], f.err
}

func TestDashboardHandlerStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		counts := &fakeCounts{
			active: 12,
			notes:  45,
			byStatus: map[string]int{
				"published":   8,
				"reading":     3,
				"in_progress": 4,
			},
		}
		h := NewDashboardHandler(counts, counts, counts, counts, counts)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		h.Stats(w, r)

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data DashboardStats `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, DashboardStats{
			ActiveTodos:    12,
			Notes:          45,
			PublishedPosts: 8,
			BooksReading:   3,
			ActiveProjects: 4,
		}, resp.Data)
	})

	t.Run("count error", func(t *testing.T) {
		counts := &fakeCounts{err: errors.New("db down")}
		h := NewDashboardHandler(counts, counts, counts, counts, counts)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
		h.Stats(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
