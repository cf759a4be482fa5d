package domain

import (
	"context"
)

// DateLayout is the only calendar form post dates accept: four-digit year,
// two-digit month, two-digit day, dash-separated.
const DateLayout = "2006-01-02"

// Field names shared by validation, sorting and searching.
const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldAuthor  = "author"
	FieldDate    = "date"
)

// Post represents a blog post
// The JSON tags double as the persisted shape: the file-backed repository
// stores exactly what the API serves. Author and Date are omitted from the
// encoded form when empty so a minimal-schema collection keeps the two-field
// layout on disk.
type Post struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author,omitempty"`
	Date    string `json:"date,omitempty"`
}

// PostRepository persists the post collection as a whole. Every operation on
// posts loads the current collection through Load, mutates its own copy, and
// writes the result back through Save; nothing is cached between operations.
type PostRepository interface {
	// Load returns the stored collection in insertion order. A store with no
	// persisted state yet yields an empty collection, not an error.
	Load(ctx context.Context) ([]Post, error)

	// Save replaces the stored collection. Implementations must never leave a
	// partially written collection observable to a concurrent Load.
	Save(ctx context.Context, posts []Post) error
}

// NextID returns the identifier the next created post receives:
// one past the highest id currently in the collection, or 1 when empty.
// Deleting the highest-numbered post therefore frees its id for reuse.
func NextID(posts []Post) int {
	max := 0
	for _, p := range posts {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}
