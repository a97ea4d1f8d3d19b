package entity

import "time"

// Note is one quick note. Category is empty when the note is uncategorized.
type Note struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Tags       []string  `json:"tags"`
	Category   string    `json:"category,omitempty"`
	IsFavorite bool      `json:"is_favorite"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NoteFilter narrows a note listing. Limit 0 means no limit.
type NoteFilter struct {
	Category     string
	FavoriteOnly bool
	Limit        int
	Offset       int
}
