package store

import (
	"context"

	"contenthub/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TodoPG struct {
	db *pgxpool.Pool
}

func NewTodoPG(db *pgxpool.Pool) *TodoPG {
	return &TodoPG{db: db}
}

func (r *TodoPG) List(ctx context.Context, f entity.TodoFilter) ([]entity.Todo, error) {
	query := `
	SELECT id, title, COALESCE(description, ''), completed, priority,
	       due_date, COALESCE(category, ''), created_at, updated_at
	FROM todos
	WHERE ($1 = '' OR priority = $1)
	AND (NOT $2 OR NOT completed)
	ORDER BY created_at DESC
	LIMIT NULLIF($3, 0) OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, f.Priority, f.PendingOnly, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []entity.Todo
	for rows.Next() {
		var t entity.Todo
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.Priority,
			&t.DueDate, &t.Category, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (r *TodoPG) CountActive(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM todos WHERE NOT completed`).Scan(&n)
	return n, err
}
