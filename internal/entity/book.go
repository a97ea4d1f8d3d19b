package entity

import "time"

// Book statuses.
const (
	BookWantToRead = "want_to_read"
	BookReading    = "reading"
	BookCompleted  = "completed"
	BookAbandoned  = "abandoned"
)

// Book is one entry on the personal reading shelf.
type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	ISBN          string     `json:"isbn,omitempty"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	Status        string     `json:"status"`
	Rating        *int       `json:"rating,omitempty"`
	PagesTotal    *int       `json:"pages_total,omitempty"`
	PagesRead     int        `json:"pages_read"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BookFilter narrows a book listing. Limit 0 means no limit.
type BookFilter struct {
	Status string
	Limit  int
	Offset int
}
