package prefs

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore keeps the theme on the user_preferences singleton row (id=1).
type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Theme(ctx context.Context) (Theme, error) {
	var theme string
	err := s.db.QueryRow(ctx, `SELECT theme FROM user_preferences WHERE id = 1`).Scan(&theme)
	if err != nil {
		return "", err
	}
	return Theme(theme), nil
}

func (s *PGStore) SetTheme(ctx context.Context, t Theme) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_preferences (id, theme, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE SET theme = EXCLUDED.theme, updated_at = now()
	`, string(t))
	return err
}
