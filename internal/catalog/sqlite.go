package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const booksSchema = `
CREATE TABLE IF NOT EXISTS books (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL UNIQUE,
	authors TEXT,
	publisher TEXT,
	published_date TEXT,
	isbn TEXT,
	page_count INTEGER,
	average_rating REAL,
	language TEXT,
	categories TEXT,
	copies INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_books_isbn ON books(isbn);
`

// SQLiteStore implements the Store interface on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (creating if needed) the catalog database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(booksSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create books table: %w", err)
	}
	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

// Existing looks up which of the given titles or ISBNs are already persisted.
// Both sets are returned in one membership map keyed by the raw value.
func (s *SQLiteStore) Existing(ctx context.Context, titles []string, isbns []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(titles) == 0 && len(isbns) == 0 {
		return existing, nil
	}

	var clauses []string
	var args []any
	if len(titles) > 0 {
		clauses = append(clauses, fmt.Sprintf("title IN (%s)", placeholders(len(titles))))
		for _, t := range titles {
			args = append(args, t)
		}
	}
	if len(isbns) > 0 {
		clauses = append(clauses, fmt.Sprintf("isbn IN (%s)", placeholders(len(isbns))))
		for _, i := range isbns {
			args = append(args, i)
		}
	}

	query := fmt.Sprintf("SELECT title, isbn FROM books WHERE %s", strings.Join(clauses, " OR "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing books: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var title, isbn string
		if err := rows.Scan(&title, &isbn); err != nil {
			return nil, fmt.Errorf("failed to scan existing book: %w", err)
		}
		existing[title] = true
		if isbn != "" {
			existing[isbn] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read existing books: %w", err)
	}
	return existing, nil
}

// InsertBatch persists all books in a single transaction and returns the
// assigned row IDs in insertion order. Any failure rolls the whole batch back.
func (s *SQLiteStore) InsertBatch(ctx context.Context, books []Book) ([]int64, error) {
	ids := make([]int64, 0, len(books))
	if len(books) == 0 {
		return ids, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// No-op after commit.
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO books
		(title, authors, publisher, published_date, isbn, page_count, average_rating, language, categories, copies)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, book := range books {
		res, err := stmt.ExecContext(ctx,
			book.Title,
			joinSet(book.Authors),
			book.Publisher,
			formatDate(book.PublishedDate),
			book.ISBN,
			book.PageCount,
			book.AverageRating,
			book.Language,
			joinSet(book.Categories),
			book.Copies,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert book %q: %w", book.Title, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to read assigned ID for %q: %w", book.Title, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit batch: %w", err)
	}
	return ids, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// joinSet stores a string set as a comma-joined column value.
func joinSet(values []string) string {
	return strings.Join(values, ", ")
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
