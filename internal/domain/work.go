// Package domain defines the core entities of the memorial application.
package domain

import (
	"strings"
	"time"
)

// Category classifies a work in the catalog.
type Category string

const (
	// CategoryBook covers published books and study bibles.
	CategoryBook Category = "book"
	// CategorySermon covers sermons and preaching series.
	CategorySermon Category = "sermon"
	// CategoryMinistry covers churches and ministry organizations.
	CategoryMinistry Category = "ministry"
	// CategoryTeaching is the default for everything else.
	CategoryTeaching Category = "teaching"
)

// Work represents a single entry in the memorial catalog - a book, sermon,
// ministry, or teaching associated with Dr. Stanley's life and work.
// Works are insert-only and visible to every visitor.
type Work struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	Category    string    `json:"category"`
	URL         string    `json:"url,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// CategorizeTitle derives a category from a work's title using keyword
// matching. Matching is case-insensitive and the first matching group wins:
// sermon keywords, then book keywords, then ministry keywords. Anything
// unmatched is classified as teaching.
func CategorizeTitle(title string) Category {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "sermon") || strings.Contains(lower, "preach"):
		return CategorySermon
	case strings.Contains(lower, "book") || strings.Contains(lower, "published"):
		return CategoryBook
	case strings.Contains(lower, "church") || strings.Contains(lower, "ministry") || strings.Contains(lower, "baptist"):
		return CategoryMinistry
	default:
		return CategoryTeaching
	}
}
