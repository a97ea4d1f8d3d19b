package entity

import "time"

// Project statuses.
const (
	ProjectPlanning   = "planning"
	ProjectInProgress = "in_progress"
	ProjectCompleted  = "completed"
	ProjectOnHold     = "on_hold"
	ProjectCancelled  = "cancelled"
)

// Project is one portfolio project.
type Project struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	Progress      int        `json:"progress"`
	Tags          []string   `json:"tags"`
	RepositoryURL string     `json:"repository_url,omitempty"`
	LiveURL       string     `json:"live_url,omitempty"`
	TechStack     []string   `json:"tech_stack"`
	Featured      bool       `json:"featured"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ProjectFilter narrows a project listing. Limit 0 means no limit.
type ProjectFilter struct {
	Status       string
	FeaturedOnly bool
	Limit        int
	Offset       int
}
