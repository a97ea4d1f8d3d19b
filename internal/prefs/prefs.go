// Package prefs manages the single-user display preferences. The theme is
// persisted to the user_preferences singleton row, with a local file
// standing in whenever the database is unreachable.
package prefs

import (
	"context"
	"errors"
)

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is served when no store has a value.
const DefaultTheme = ThemeDark

// ErrInvalidTheme is returned when a theme value is not recognized.
var ErrInvalidTheme = errors.New("invalid theme")

// Valid reports whether t is a recognized theme.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Store persists the theme preference.
type Store interface {
	Theme(ctx context.Context) (Theme, error)
	SetTheme(ctx context.Context, t Theme) error
}
