package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/dfryer1193/masterblog/blog/domain"
	"github.com/rs/zerolog/log"
)

var _ domain.PostRepository = (*FilePostRepository)(nil)

// FilePostRepository implements domain.PostRepository on a single flat JSON
// file. Every Load re-reads the file and every Save rewrites it in full, so
// external edits to the file are picked up on the next request.
type FilePostRepository struct {
	path string
	mu   sync.Mutex
}

// NewFilePostRepository creates a repository backed by the JSON file at path.
// The file does not need to exist yet; it is created on the first Save.
func NewFilePostRepository(path string) *FilePostRepository {
	return &FilePostRepository{path: path}
}

// Load reads the whole collection from disk. A missing or unparseable file
// yields an empty collection rather than an error, so a fresh deployment and
// a hand-mangled file both start the server in a usable state.
func (r *FilePostRepository) Load(ctx context.Context) ([]domain.Post, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make([]domain.Post, 0), nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}

	var posts []domain.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		log.Warn().Err(err).Str("path", r.path).Msg("post file is not valid JSON, starting from an empty collection")
		return make([]domain.Post, 0), nil
	}
	if posts == nil {
		posts = make([]domain.Post, 0)
	}

	return posts, nil
}

// Save rewrites the whole collection. The new content lands in a temporary
// file first and is renamed over the target, so readers never observe a
// half-written file.
func (r *FilePostRepository) Save(ctx context.Context, posts []domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if posts == nil {
		posts = make([]domain.Post, 0)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(posts); err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}

	if err := r.writeAtomic(buf.Bytes()); err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}

	return nil
}

func (r *FilePostRepository) writeAtomic(data []byte) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
