package persistence

import (
	"context"
	"sync"

	"github.com/dfryer1193/masterblog/blog/domain"
)

var _ domain.PostRepository = (*MemoryPostRepository)(nil)

// MemoryPostRepository implements domain.PostRepository on a slice guarded by
// a RWMutex. Nothing survives a restart; it exists for tests and for running
// the server without touching disk.
type MemoryPostRepository struct {
	mu    sync.RWMutex
	posts []domain.Post
}

// NewMemoryPostRepository creates an empty in-memory repository, optionally
// seeded with an initial collection.
func NewMemoryPostRepository(seed ...domain.Post) *MemoryPostRepository {
	r := &MemoryPostRepository{posts: make([]domain.Post, 0, len(seed))}
	r.posts = append(r.posts, seed...)
	return r
}

// Load returns a copy of the collection so callers can never alias the
// repository's own slice.
func (r *MemoryPostRepository) Load(ctx context.Context) ([]domain.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Post, len(r.posts))
	copy(out, r.posts)
	return out, nil
}

// Save replaces the collection with a copy of posts.
func (r *MemoryPostRepository) Save(ctx context.Context, posts []domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = make([]domain.Post, len(posts))
	copy(r.posts, posts)
	return nil
}
