// Package store holds the Postgres repositories for the content
// collections. All repositories are read-only: the hub renders rows, it
// never mutates them.
package store

import (
	"context"

	"contenthub/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

func (r *BookPG) List(ctx context.Context, f entity.BookFilter) ([]entity.Book, error) {
	query := `
	SELECT id, title, author, COALESCE(isbn, ''), COALESCE(cover_image_url, ''),
	       status, rating, pages_total, pages_read, started_at, completed_at,
	       created_at, updated_at
	FROM books
	WHERE ($1 = '' OR status = $1)
	ORDER BY created_at DESC
	LIMIT NULLIF($2, 0) OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, f.Status, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []entity.Book
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.ISBN, &b.CoverImageURL,
			&b.Status, &b.Rating, &b.PagesTotal, &b.PagesRead, &b.StartedAt, &b.CompletedAt,
			&b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *BookPG) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE status = $1`, status).Scan(&n)
	return n, err
}
