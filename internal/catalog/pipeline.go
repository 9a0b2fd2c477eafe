package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	librserrors "libris/internal/errors"
	"libris/internal/googlebooks"
)

// DefaultMaxConcurrent is the safety ceiling on criterion fan-out. Requests
// with more criteria than this still work; excess tasks queue behind the
// limit instead of spawning unbounded goroutines.
const DefaultMaxConcurrent = 20

// VolumeSearcher fetches every raw volume for one provider query. The
// googlebooks.Client satisfies this; tests substitute fakes.
type VolumeSearcher interface {
	FetchAll(ctx context.Context, query string) []googlebooks.Volume
}

// Pipeline runs one concurrent fetch task per search criterion and hands the
// merged result to the catalog store in a single batch.
type Pipeline struct {
	provider      VolumeSearcher
	store         Store
	maxConcurrent int
}

// NewPipeline creates a Pipeline. maxConcurrent values below one fall back to
// the default ceiling.
func NewPipeline(provider VolumeSearcher, store Store, maxConcurrent int) *Pipeline {
	if maxConcurrent < 1 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Pipeline{
		provider:      provider,
		store:         store,
		maxConcurrent: maxConcurrent,
	}
}

// Ingest runs the full pipeline for one request and returns the IDs assigned
// to newly persisted books. Criterion-level failures degrade to empty
// contributions; an empty result is returned rather than an error when no new
// records are found. Only invalid requests and store failures surface.
func (p *Pipeline) Ingest(ctx context.Context, req SearchRequest) ([]int64, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// One slot per criterion; tasks write only their own slot, so the merge
	// needs no locking.
	contributions := make([][]Book, len(req.Criteria))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxConcurrent)
	for i, criterion := range req.Criteria {
		g.Go(func() error {
			contributions[i] = p.processCriterion(gctx, criterion, req.Copies)
			return nil
		})
	}
	// Tasks never return errors; failures are absorbed per criterion.
	_ = g.Wait()

	var merged []Book
	for _, books := range contributions {
		merged = append(merged, books...)
	}
	slog.Debug("Criterion fan-in complete", "criteria", len(req.Criteria), "merged", len(merged))
	if len(merged) == 0 {
		return []int64{}, nil
	}

	fresh, err := p.filterExisting(ctx, merged)
	if err != nil {
		return nil, librserrors.NewPersistenceError("existence check", err)
	}
	if len(fresh) == 0 {
		slog.Info("No new books to persist", "fetched", len(merged))
		return []int64{}, nil
	}

	ids, err := p.store.InsertBatch(ctx, fresh)
	if err != nil {
		return nil, librserrors.NewPersistenceError("insert batch", err)
	}
	slog.Info("Persisted new books", "count", len(ids))
	return ids, nil
}

// processCriterion runs query build, pagination, normalization and
// per-criterion dedup for one criterion. Any failure, including a panic in
// conversion, leaves that criterion's contribution empty instead of aborting
// the request.
func (p *Pipeline) processCriterion(ctx context.Context, c SearchCriterion, copies int) (books []Book) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Criterion task failed", "criterion", c, "panic", r)
			books = nil
		}
	}()

	query := googlebooks.BuildQuery(googlebooks.Query{
		Author:  c.Author,
		Title:   c.Title,
		Subject: c.Category,
		ISBN:    c.ISBN,
		Exact:   c.ExactMatch,
	})

	volumes := p.provider.FetchAll(ctx, query)
	books = make([]Book, 0, len(volumes))
	for _, v := range volumes {
		if book, ok := NormalizeVolume(v, copies); ok {
			books = append(books, book)
		}
	}
	slog.Debug("Criterion processed", "query", query, "raw", len(volumes), "normalized", len(books))
	return DedupeByTitle(books)
}

// filterExisting drops books whose title or ISBN is already persisted, and
// in-batch duplicates surfaced by different criteria (first one wins).
func (p *Pipeline) filterExisting(ctx context.Context, books []Book) ([]Book, error) {
	titles := make([]string, 0, len(books))
	var isbns []string
	for _, b := range books {
		titles = append(titles, b.Title)
		if b.ISBN != "" {
			isbns = append(isbns, b.ISBN)
		}
	}

	existing, err := p.store.Existing(ctx, titles, isbns)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(books))
	fresh := make([]Book, 0, len(books))
	for _, b := range books {
		if existing[b.Title] || (b.ISBN != "" && existing[b.ISBN]) {
			continue
		}
		if seen[b.Title] || (b.ISBN != "" && seen[b.ISBN]) {
			continue
		}
		seen[b.Title] = true
		if b.ISBN != "" {
			seen[b.ISBN] = true
		}
		fresh = append(fresh, b)
	}
	return fresh, nil
}
