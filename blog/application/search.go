package application

import (
	"strings"

	"github.com/dfryer1193/masterblog/blog/domain"
)

// SearchFilter holds the optional per-field queries of a search. An empty
// string means that field is not filtered on.
type SearchFilter struct {
	Title   string
	Content string
	Author  string
	Date    string
}

// IsEmpty reports whether no filter is set at all.
func (f SearchFilter) IsEmpty() bool {
	return f.Title == "" && f.Content == "" && f.Author == "" && f.Date == ""
}

// searchPosts returns the posts matching every supplied filter, in stored
// order. The combination is conjunctive: a post must satisfy all filters
// present. With no filters the result is empty rather than the whole
// collection, so the search endpoint can never become an accidental full
// dump.
func searchPosts(posts []domain.Post, filter SearchFilter) []domain.Post {
	matches := make([]domain.Post, 0)
	if filter.IsEmpty() {
		return matches
	}

	for _, p := range posts {
		if filter.Title != "" && !containsFold(p.Title, filter.Title) {
			continue
		}
		if filter.Content != "" && !containsFold(p.Content, filter.Content) {
			continue
		}
		if filter.Author != "" && !containsFold(p.Author, filter.Author) {
			continue
		}
		// Dates match by exact string equality; no substring or range form.
		if filter.Date != "" && filter.Date != p.Date {
			continue
		}
		matches = append(matches, p)
	}
	return matches
}

// containsFold reports whether s contains substr ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
