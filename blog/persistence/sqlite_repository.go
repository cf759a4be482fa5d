package persistence

import (
	"context"
	"database/sql"

	"github.com/dfryer1193/masterblog/blog/domain"
	"github.com/dfryer1193/masterblog/shared/db"
)

var _ domain.PostRepository = (*SQLitePostRepository)(nil)

// SQLitePostRepository implements domain.PostRepository on a SQL database
// (SQLite). The whole collection is written per Save to keep the same
// replace-everything contract as the file backend, with the position column
// preserving insertion order across reloads.
type SQLitePostRepository struct {
	db *sql.DB
}

// NewSQLitePostRepository creates a new SQLitePostRepository from a standard sql.DB
func NewSQLitePostRepository(db *sql.DB) *SQLitePostRepository {
	return &SQLitePostRepository{
		db: db,
	}
}

const loadPostsQuery = `
	SELECT id, title, content, author, date
	FROM posts
	ORDER BY position
`

// Load retrieves the full collection in stored order.
func (r *SQLitePostRepository) Load(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.db.QueryContext(ctx, loadPostsQuery)
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.Date); err != nil {
			return nil, &domain.StorageError{Op: "load", Err: err}
		}
		posts = append(posts, p)
	}

	if err = rows.Err(); err != nil {
		return nil, &domain.StorageError{Op: "load", Err: err}
	}

	return posts, nil
}

const clearPostsQuery = `DELETE FROM posts`

const insertPostQuery = `
	INSERT INTO posts (position, id, title, content, author, date)
	VALUES (?, ?, ?, ?, ?, ?)
`

// Save replaces the stored collection with posts inside a single transaction,
// so a failed write leaves the previous collection intact.
func (r *SQLitePostRepository) Save(ctx context.Context, posts []domain.Post) error {
	err := db.RunInTransaction(ctx, r.db, func(txCtx context.Context) error {
		executor := db.GetExecutor(txCtx, r.db)

		if _, err := executor.ExecContext(txCtx, clearPostsQuery); err != nil {
			return err
		}

		for i, p := range posts {
			_, err := executor.ExecContext(txCtx, insertPostQuery,
				i,
				p.ID,
				p.Title,
				p.Content,
				p.Author,
				p.Date,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}

	return nil
}
