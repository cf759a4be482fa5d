package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dfryer1193/masterblog/blog/domain"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "storage.json")
}

func TestFileRepository_LoadMissingFile(t *testing.T) {
	repo := NewFilePostRepository(tempStorePath(t))

	posts, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if posts == nil {
		t.Fatal("Load should return empty slice, not nil")
	}
	if len(posts) != 0 {
		t.Errorf("Load returned %d posts, want 0", len(posts))
	}
}

func TestFileRepository_SaveThenLoad(t *testing.T) {
	repo := NewFilePostRepository(tempStorePath(t))
	ctx := context.Background()

	want := []domain.Post{
		{ID: 1, Title: "First post", Content: "Hello, world!", Author: "Jo", Date: "2024-05-01"},
		{ID: 2, Title: "Grüße aus 東京", Content: "Ümläüts & <markup>", Author: "Bo", Date: "2024-05-02"},
	}

	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Load returned %d posts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("post %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFileRepository_WritesHumanReadableJSON(t *testing.T) {
	path := tempStorePath(t)
	repo := NewFilePostRepository(path)

	posts := []domain.Post{
		{ID: 1, Title: "Grüße aus 東京", Content: "Fish & Chips", Author: "Jo", Date: "2024-05-01"},
	}
	if err := repo.Save(context.Background(), posts); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading store file: %v", err)
	}
	content := string(raw)

	if !strings.Contains(content, `    "id": 1`) {
		t.Errorf("file is not indented with four spaces:\n%s", content)
	}
	if !strings.Contains(content, "Grüße aus 東京") {
		t.Errorf("non-ASCII text was escaped:\n%s", content)
	}
	if !strings.Contains(content, "Fish & Chips") {
		t.Errorf("HTML-significant characters were escaped:\n%s", content)
	}
}

func TestFileRepository_CorruptFileYieldsEmptyCollection(t *testing.T) {
	path := tempStorePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("seeding corrupt file: %v", err)
	}

	repo := NewFilePostRepository(path)
	posts, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("Load of corrupt file returned %d posts, want 0", len(posts))
	}
}

func TestFileRepository_NullFileYieldsEmptyCollection(t *testing.T) {
	path := tempStorePath(t)
	if err := os.WriteFile(path, []byte("null"), 0644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	repo := NewFilePostRepository(path)
	posts, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if posts == nil {
		t.Fatal("Load should return empty slice, not nil")
	}
	if len(posts) != 0 {
		t.Errorf("Load returned %d posts, want 0", len(posts))
	}
}

func TestFileRepository_SaveReplacesPreviousContent(t *testing.T) {
	repo := NewFilePostRepository(tempStorePath(t))
	ctx := context.Background()

	if err := repo.Save(ctx, []domain.Post{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := repo.Save(ctx, []domain.Post{{ID: 9, Title: "only"}}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	posts, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != 9 {
		t.Errorf("Load = %+v, want the single replacement post", posts)
	}
}

func TestFileRepository_PicksUpExternalEdits(t *testing.T) {
	path := tempStorePath(t)
	repo := NewFilePostRepository(path)
	ctx := context.Background()

	if err := repo.Save(ctx, []domain.Post{{ID: 1, Title: "from repo"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	edited := `[{"id": 5, "title": "edited by hand", "content": "outside the server"}]`
	if err := os.WriteFile(path, []byte(edited), 0644); err != nil {
		t.Fatalf("editing file: %v", err)
	}

	posts, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != 5 || posts[0].Title != "edited by hand" {
		t.Errorf("Load did not pick up external edit: %+v", posts)
	}
}

func TestFileRepository_SaveNilWritesEmptyArray(t *testing.T) {
	path := tempStorePath(t)
	repo := NewFilePostRepository(path)

	if err := repo.Save(context.Background(), nil); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading store file: %v", err)
	}
	if strings.TrimSpace(string(raw)) != "[]" {
		t.Errorf("file content = %q, want empty JSON array", string(raw))
	}
}

func TestFileRepository_LoadErrorIsStorageError(t *testing.T) {
	// Pointing the repository at a directory makes the read fail for a
	// reason other than a missing file.
	repo := NewFilePostRepository(t.TempDir())

	_, err := repo.Load(context.Background())
	var storageErr *domain.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("Load error = %v, want StorageError", err)
	}
	if storageErr.Op != "load" {
		t.Errorf("StorageError.Op = %q, want %q", storageErr.Op, "load")
	}
}

func TestFileRepository_SaveErrorIsStorageError(t *testing.T) {
	repo := NewFilePostRepository(t.TempDir())

	err := repo.Save(context.Background(), []domain.Post{{ID: 1, Title: "t"}})
	var storageErr *domain.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("Save error = %v, want StorageError", err)
	}
	if storageErr.Op != "save" {
		t.Errorf("StorageError.Op = %q, want %q", storageErr.Op, "save")
	}
}

func TestFileRepository_InterfaceCompliance(t *testing.T) {
	var _ domain.PostRepository = (*FilePostRepository)(nil)
}
