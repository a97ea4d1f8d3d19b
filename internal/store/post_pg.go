package store

import (
	"context"
	"errors"

	"contenthub/internal/entity"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a single-row lookup matches nothing.
var ErrNotFound = errors.New("not found")

type PostPG struct {
	db *pgxpool.Pool
}

func NewPostPG(db *pgxpool.Pool) *PostPG {
	return &PostPG{db: db}
}

const postColumns = `
	id, title, slug, COALESCE(content, ''), COALESCE(excerpt, ''),
	COALESCE(cover_image_url, ''), status, tags, published_at,
	created_at, updated_at`

func (r *PostPG) List(ctx context.Context, f entity.PostFilter) ([]entity.Post, error) {
	query := `
	SELECT ` + postColumns + `
	FROM blog_posts
	WHERE ($1 = '' OR status = $1)
	AND ($2 = '' OR $2 = ANY(tags))
	ORDER BY created_at DESC
	LIMIT NULLIF($3, 0) OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, f.Status, f.Tag, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []entity.Post
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt,
			&p.CoverImageURL, &p.Status, &p.Tags, &p.PublishedAt,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *PostPG) GetBySlug(ctx context.Context, slug string) (entity.Post, error) {
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE slug = $1`

	var p entity.Post
	err := r.db.QueryRow(ctx, query, slug).Scan(&p.ID, &p.Title, &p.Slug, &p.Content,
		&p.Excerpt, &p.CoverImageURL, &p.Status, &p.Tags, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return entity.Post{}, ErrNotFound
	}
	return p, err
}

func (r *PostPG) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts WHERE status = $1`, status).Scan(&n)
	return n, err
}
