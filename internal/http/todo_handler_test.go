package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contenthub/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockTodoRepo struct {
	mock.Mock
}

func (m *mockTodoRepo) List(ctx context.Context, f entity.TodoFilter) ([]entity.Todo, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Todo), args.Error(1)
}

func TestTodoHandlerList(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockTodoRepo)
		repo.On("List", mock.Anything, entity.TodoFilter{Priority: "high", Limit: 20}).
			Return([]entity.Todo{{ID: "t1", Title: "ship it", Priority: "high"}}, nil)
		h := NewTodoHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/todos?priority=high", nil)
		h.List(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		repo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(mockTodoRepo)
		repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))
		h := NewTodoHandler(repo)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/todos", nil)
		h.List(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestTodoHandlerStats(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)

	repo := new(mockTodoRepo)
	repo.On("List", mock.Anything, entity.TodoFilter{}).Return([]entity.Todo{
		{ID: "t1", Completed: true},
		{ID: "t2", DueDate: &past},
		{ID: "t3"},
	}, nil)
	h := NewTodoHandler(repo)
	h.now = func() time.Time { return now }

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/todos/stats", nil)
	h.Stats(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Total    int            `json:"total"`
			ByStatus map[string]int `json:"by_status"`
			Overdue  int            `json:"overdue"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Data.Total)
	assert.Equal(t, 1, resp.Data.ByStatus["completed"])
	assert.Equal(t, 2, resp.Data.ByStatus["pending"])
	assert.Equal(t, 1, resp.Data.Overdue)
}
