package application

import (
	"sort"
	"strings"
	"time"

	"github.com/dfryer1193/masterblog/blog/domain"
)

// Sort directions accepted by List. An empty direction means ascending.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// sortPosts returns a copy of posts ordered by field in the given direction.
// The input slice is never reordered: sorting is a view over the collection,
// not a mutation of the stored order. The sort is stable, so posts with equal
// keys keep their stored relative order in both directions.
func sortPosts(posts []domain.Post, field, direction string) ([]domain.Post, error) {
	switch field {
	case domain.FieldTitle, domain.FieldContent, domain.FieldAuthor, domain.FieldDate:
	default:
		return nil, domain.ErrInvalidSortField
	}

	switch direction {
	case "":
		direction = DirectionAsc
	case DirectionAsc, DirectionDesc:
	default:
		return nil, domain.ErrInvalidDirection
	}

	// Decorate each post with its comparison key up front. Dates are parsed
	// rather than compared lexically so a malformed stored date surfaces as
	// an error instead of quietly landing in the wrong place. An empty date
	// (legal under the minimal schema) sorts as the zero time.
	type keyed struct {
		str  string
		date time.Time
		post domain.Post
	}
	keys := make([]keyed, len(posts))
	for i, p := range posts {
		k := keyed{post: p}
		if field == domain.FieldDate {
			if p.Date != "" {
				t, err := time.Parse(domain.DateLayout, p.Date)
				if err != nil {
					return nil, domain.ErrInvalidDate
				}
				k.date = t
			}
		} else {
			k.str = strings.ToLower(stringField(p, field))
		}
		keys[i] = k
	}

	less := func(i, j int) bool {
		if field == domain.FieldDate {
			return keys[i].date.Before(keys[j].date)
		}
		return keys[i].str < keys[j].str
	}
	if direction == DirectionDesc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}
	sort.SliceStable(keys, less)

	ordered := make([]domain.Post, len(keys))
	for i, k := range keys {
		ordered[i] = k.post
	}
	return ordered, nil
}

// stringField returns the value of a string-sortable field. Date is handled
// separately by the caller.
func stringField(p domain.Post, field string) string {
	switch field {
	case domain.FieldTitle:
		return p.Title
	case domain.FieldContent:
		return p.Content
	case domain.FieldAuthor:
		return p.Author
	}
	return ""
}
