// Package stats reduces content collections into the summary counters shown
// above each listing page. All reducers are pure: they never fail, and an
// empty collection yields an all-zero Summary.
package stats

import (
	"time"

	"contenthub/internal/entity"
)

// Summary holds derived counters for one content collection. The status
// counts are mutually exclusive, so their sum always equals Total.
type Summary struct {
	Total              int            `json:"total"`
	ByStatus           map[string]int `json:"by_status"`
	Favorites          int            `json:"favorites"`
	DistinctCategories int            `json:"distinct_categories"`
	Overdue            int            `json:"overdue"`
}

func newSummary(total int, statuses ...string) Summary {
	byStatus := make(map[string]int, len(statuses))
	for _, st := range statuses {
		byStatus[st] = 0
	}
	return Summary{Total: total, ByStatus: byStatus}
}

// Todos counts completed, pending and overdue tasks. A task is overdue when
// it is not completed and its due date lies before now. The caller captures
// now once so every record in the call is classified against the same
// instant.
func Todos(todos []entity.Todo, now time.Time) Summary {
	s := newSummary(len(todos), "completed", "pending")
	for _, t := range todos {
		if t.Completed {
			s.ByStatus["completed"]++
			continue
		}
		s.ByStatus["pending"]++
		if t.DueDate != nil && t.DueDate.Before(now) {
			s.Overdue++
		}
	}
	return s
}

// Notes counts favorites and distinct non-empty categories.
func Notes(notes []entity.Note) Summary {
	s := newSummary(len(notes))
	categories := make([]string, 0, len(notes))
	for _, n := range notes {
		if n.IsFavorite {
			s.Favorites++
		}
		categories = append(categories, n.Category)
	}
	s.DistinctCategories = distinctNonEmpty(categories)
	return s
}

// Projects breaks projects down by status and counts featured ones.
func Projects(projects []entity.Project) Summary {
	s := newSummary(len(projects),
		entity.ProjectPlanning, entity.ProjectInProgress, entity.ProjectCompleted,
		entity.ProjectOnHold, entity.ProjectCancelled)
	for _, p := range projects {
		s.ByStatus[p.Status]++
		if p.Featured {
			s.Favorites++
		}
	}
	return s
}

// Books breaks shelf entries down by reading status. The grouping field for
// distinct counting is the author, mirroring the library page's "categories"
// card.
func Books(books []entity.Book) Summary {
	s := newSummary(len(books),
		entity.BookWantToRead, entity.BookReading, entity.BookCompleted, entity.BookAbandoned)
	authors := make([]string, 0, len(books))
	for _, b := range books {
		s.ByStatus[b.Status]++
		authors = append(authors, b.Author)
	}
	s.DistinctCategories = distinctNonEmpty(authors)
	return s
}

// Posts breaks blog posts down by publication status.
func Posts(posts []entity.Post) Summary {
	s := newSummary(len(posts), entity.PostDraft, entity.PostPublished, entity.PostArchived)
	for _, p := range posts {
		s.ByStatus[p.Status]++
	}
	return s
}

// distinctNonEmpty counts unique values, ignoring empty ones. Records
// without a grouping value do not contribute to the count.
func distinctNonEmpty(values []string) int {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		seen[v] = struct{}{}
	}
	return len(seen)
}
