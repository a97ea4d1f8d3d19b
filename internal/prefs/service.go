package prefs

import (
	"context"
	"log"
)

// Service reads and writes the theme through a primary store, degrading to
// a fallback store when the primary is unavailable. Reads never fail: when
// both stores come up empty the default theme is returned.
type Service struct {
	primary  Store
	fallback Store
}

func NewService(primary, fallback Store) *Service {
	return &Service{primary: primary, fallback: fallback}
}

// Theme returns the current theme.
func (s *Service) Theme(ctx context.Context) Theme {
	if t, err := s.primary.Theme(ctx); err == nil && t.Valid() {
		return t
	}
	if t, err := s.fallback.Theme(ctx); err == nil && t.Valid() {
		return t
	}
	return DefaultTheme
}

// SetTheme persists t, writing to the fallback store only when the primary
// write fails.
func (s *Service) SetTheme(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}
	if err := s.primary.SetTheme(ctx, t); err != nil {
		log.Printf("primary preference store unavailable, using fallback: %v", err)
		return s.fallback.SetTheme(ctx, t)
	}
	return nil
}
