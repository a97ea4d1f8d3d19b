package store

import (
	"context"

	"contenthub/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type NotePG struct {
	db *pgxpool.Pool
}

func NewNotePG(db *pgxpool.Pool) *NotePG {
	return &NotePG{db: db}
}

func (r *NotePG) List(ctx context.Context, f entity.NoteFilter) ([]entity.Note, error) {
	query := `
	SELECT id, title, content, tags, COALESCE(category, ''), is_favorite,
	       created_at, updated_at
	FROM notes
	WHERE ($1 = '' OR category = $1)
	AND (NOT $2 OR is_favorite)
	ORDER BY created_at DESC
	LIMIT NULLIF($3, 0) OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, f.Category, f.FavoriteOnly, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []entity.Note
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Tags, &n.Category,
			&n.IsFavorite, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *NotePG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notes`).Scan(&n)
	return n, err
}
