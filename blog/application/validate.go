package application

import (
	"strings"
	"time"

	"github.com/dfryer1193/masterblog/blog/domain"
)

// PostDraft is the raw field set of a post being created, before trimming
// and validation.
type PostDraft struct {
	Title   string
	Content string
	Author  string
	Date    string
}

// PostPatch is a partial update. A nil field is left untouched on the
// existing post; a non-nil field is validated and applied. The pointer split
// keeps "not supplied" distinct from "explicitly cleared".
type PostPatch struct {
	Title   *string
	Content *string
	Author  *string
	Date    *string
}

// validateDraft trims every field of a new post and checks it against the
// active schema. The returned post has no id assigned yet.
func validateDraft(draft PostDraft, schema domain.Schema) (domain.Post, error) {
	post := domain.Post{
		Title:   strings.TrimSpace(draft.Title),
		Content: strings.TrimSpace(draft.Content),
		Author:  strings.TrimSpace(draft.Author),
		Date:    strings.TrimSpace(draft.Date),
	}

	required := []struct {
		name  string
		value string
	}{
		{domain.FieldTitle, post.Title},
		{domain.FieldContent, post.Content},
		{domain.FieldAuthor, post.Author},
		{domain.FieldDate, post.Date},
	}
	for _, f := range required {
		if f.value == "" && schema.Requires(f.name) {
			return domain.Post{}, &domain.MissingFieldError{Field: f.name}
		}
	}

	// An optional date still has to be a real calendar date when supplied.
	if post.Date != "" {
		if err := validateDate(post.Date); err != nil {
			return domain.Post{}, err
		}
	}

	return post, nil
}

// applyPatch validates the supplied fields of patch and returns a copy of
// post with them applied. No field is applied unless every supplied field
// passes, so a bad date cannot leave a half-updated post behind.
func applyPatch(post domain.Post, patch PostPatch, schema domain.Schema) (domain.Post, error) {
	updated := post

	fields := []struct {
		name string
		src  *string
		dst  *string
	}{
		{domain.FieldTitle, patch.Title, &updated.Title},
		{domain.FieldContent, patch.Content, &updated.Content},
		{domain.FieldAuthor, patch.Author, &updated.Author},
		{domain.FieldDate, patch.Date, &updated.Date},
	}

	for _, f := range fields {
		if f.src == nil {
			continue
		}
		trimmed := strings.TrimSpace(*f.src)
		if trimmed == "" && schema.Requires(f.name) {
			return domain.Post{}, &domain.MissingFieldError{Field: f.name}
		}
		if f.name == domain.FieldDate && trimmed != "" {
			if err := validateDate(trimmed); err != nil {
				return domain.Post{}, err
			}
		}
		*f.dst = trimmed
	}

	return updated, nil
}

// validateDate checks that s is a real calendar date in strict YYYY-MM-DD
// form. time.Parse with the zero-padded layout rejects single-digit months
// and days as well as impossible dates like 2021-02-30.
func validateDate(s string) error {
	if _, err := time.Parse(domain.DateLayout, s); err != nil {
		return domain.ErrInvalidDate
	}
	return nil
}
