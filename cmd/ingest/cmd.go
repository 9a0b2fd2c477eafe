// Package ingest wires the CLI ingest command to the catalog pipeline.
package ingest

import (
	"context"
	"log/slog"

	"libris/internal/catalog"
	"libris/internal/config"
	"libris/internal/googlebooks"
)

// Options carries everything the ingest command needs from flags and config.
type Options struct {
	RequestFile string

	// Single-criterion flags, used when no request file is given.
	Author   string
	Title    string
	Category string
	ISBN     string
	Exact    bool
	Copies   int

	DBFile        string
	MaxConcurrent int
}

// RunWithParams assembles the search request, runs the pipeline and reports
// the outcome. An ingest that finds nothing new is a success, not an error.
func RunWithParams(opts Options) error {
	req, err := buildRequest(opts)
	if err != nil {
		return err
	}

	store, err := catalog.NewSQLiteStore(opts.DBFile)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	client := googlebooks.NewClient(config.GoogleBooksAPIKey)
	pipeline := catalog.NewPipeline(client, store, opts.MaxConcurrent)

	ids, err := pipeline.Ingest(context.Background(), req)
	if err != nil {
		return err
	}

	slog.Info("Ingest complete",
		"criteria", len(req.Criteria),
		"new_books", len(ids))
	return nil
}

// buildRequest prefers the request file; otherwise the flags describe a
// single criterion.
func buildRequest(opts Options) (catalog.SearchRequest, error) {
	if opts.RequestFile != "" {
		return loadRequestFile(opts.RequestFile)
	}

	copies := opts.Copies
	if copies < 1 {
		copies = catalog.DefaultCopies
	}
	req := catalog.SearchRequest{
		Criteria: []catalog.SearchCriterion{{
			Author:     opts.Author,
			Title:      opts.Title,
			Category:   opts.Category,
			ISBN:       opts.ISBN,
			ExactMatch: opts.Exact,
		}},
		Copies: copies,
	}
	return req, req.Validate()
}
