package entity

import "time"

// Post statuses.
const (
	PostDraft     = "draft"
	PostPublished = "published"
	PostArchived  = "archived"
)

// Post is one blog post.
type Post struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content,omitempty"`
	Excerpt       string     `json:"excerpt,omitempty"`
	CoverImageURL string     `json:"cover_image_url,omitempty"`
	Status        string     `json:"status"`
	Tags          []string   `json:"tags"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PostFilter narrows a post listing. Limit 0 means no limit.
type PostFilter struct {
	Status string
	Tag    string
	Limit  int
	Offset int
}
