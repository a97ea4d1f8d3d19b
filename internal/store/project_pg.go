package store

import (
	"context"

	"contenthub/internal/entity"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectPG struct {
	db *pgxpool.Pool
}

func NewProjectPG(db *pgxpool.Pool) *ProjectPG {
	return &ProjectPG{db: db}
}

func (r *ProjectPG) List(ctx context.Context, f entity.ProjectFilter) ([]entity.Project, error) {
	query := `
	SELECT id, name, COALESCE(description, ''), status, priority,
	       start_date, end_date, progress, tags,
	       COALESCE(repository_url, ''), COALESCE(live_url, ''), tech_stack,
	       featured, created_at, updated_at
	FROM projects
	WHERE ($1 = '' OR status = $1)
	AND (NOT $2 OR featured)
	ORDER BY created_at DESC
	LIMIT NULLIF($3, 0) OFFSET $4
	`
	rows, err := r.db.Query(ctx, query, f.Status, f.FeaturedOnly, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []entity.Project
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.Priority,
			&p.StartDate, &p.EndDate, &p.Progress, &p.Tags,
			&p.RepositoryURL, &p.LiveURL, &p.TechStack,
			&p.Featured, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectPG) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE status = $1`, status).Scan(&n)
	return n, err
}
