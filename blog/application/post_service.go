package application

import (
	"context"

	"github.com/dfryer1193/masterblog/blog/domain"
	"github.com/rs/zerolog/log"
)

// PostService owns every operation on the post collection. Each call loads
// the collection fresh from the repository and, for mutations, writes the
// full collection back before returning. The service keeps no state between
// calls, so two concurrent mutations are last-writer-wins by design.
type PostService struct {
	repo   domain.PostRepository
	schema domain.Schema
}

func NewPostService(repo domain.PostRepository, schema domain.Schema) *PostService {
	return &PostService{
		repo:   repo,
		schema: schema,
	}
}

// List returns the collection, ordered by sortField/direction when sortField
// is set. Without a sort field posts come back in stored order and the
// direction value is not inspected at all.
func (s *PostService) List(ctx context.Context, sortField, direction string) ([]domain.Post, error) {
	posts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if sortField == "" {
		return posts, nil
	}
	return sortPosts(posts, sortField, direction)
}

// Create validates draft against the active schema, assigns the next id and
// persists the grown collection. The returned post is the stored one,
// trimmed fields and id included.
func (s *PostService) Create(ctx context.Context, draft PostDraft) (domain.Post, error) {
	post, err := validateDraft(draft, s.schema)
	if err != nil {
		return domain.Post{}, err
	}

	posts, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Post{}, err
	}

	post.ID = domain.NextID(posts)
	if err := s.repo.Save(ctx, append(posts, post)); err != nil {
		return domain.Post{}, err
	}

	log.Info().Int("id", post.ID).Msg("Created post")
	return post, nil
}

// Update applies the supplied fields of patch to the post with the given id.
// Every supplied field is validated before any of them is applied, so a bad
// value leaves the stored post exactly as it was. An empty patch is legal and
// still re-persists the collection unchanged.
func (s *PostService) Update(ctx context.Context, id int, patch PostPatch) (domain.Post, error) {
	posts, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Post{}, err
	}

	idx := indexOf(posts, id)
	if idx < 0 {
		return domain.Post{}, domain.ErrPostNotFound
	}

	updated, err := applyPatch(posts[idx], patch, s.schema)
	if err != nil {
		return domain.Post{}, err
	}

	posts[idx] = updated
	if err := s.repo.Save(ctx, posts); err != nil {
		return domain.Post{}, err
	}

	log.Info().Int("id", id).Msg("Updated post")
	return updated, nil
}

// Delete removes the post with the given id, persists the reduced collection
// and reports the removed id back for confirmation.
func (s *PostService) Delete(ctx context.Context, id int) (int, error) {
	posts, err := s.repo.Load(ctx)
	if err != nil {
		return 0, err
	}

	idx := indexOf(posts, id)
	if idx < 0 {
		return 0, domain.ErrPostNotFound
	}

	posts = append(posts[:idx], posts[idx+1:]...)
	if err := s.repo.Save(ctx, posts); err != nil {
		return 0, err
	}

	log.Info().Int("id", id).Msg("Deleted post")
	return id, nil
}

// Search returns the posts matching filter in stored order. Filters never
// fail; only the underlying load can.
func (s *PostService) Search(ctx context.Context, filter SearchFilter) ([]domain.Post, error) {
	posts, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	return searchPosts(posts, filter), nil
}

func indexOf(posts []domain.Post, id int) int {
	for i, p := range posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}
