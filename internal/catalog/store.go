package catalog

import "context"

// Store is the persistence boundary. It owns final uniqueness and ID
// assignment; the concurrent phase of the pipeline never touches it.
type Store interface {
	// Existing returns the subset of the given titles and ISBNs that are
	// already persisted, as a membership set.
	Existing(ctx context.Context, titles []string, isbns []string) (map[string]bool, error)

	// InsertBatch persists all books in one transaction and returns their
	// assigned IDs in insertion order. On error nothing is applied.
	InsertBatch(ctx context.Context, books []Book) ([]int64, error)

	// Close releases the underlying connection.
	Close() error
}
