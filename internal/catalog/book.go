// Package catalog implements the ingestion pipeline that turns search
// criteria into persisted, deduplicated catalog records.
package catalog

import (
	"log/slog"
	"time"
)

// Book is the normalized catalog record produced by the pipeline. A zero
// PublishedDate means the provider gave no parsable date.
type Book struct {
	ID            int64
	Title         string
	Authors       []string
	Publisher     string
	PublishedDate time.Time
	ISBN          string
	PageCount     int
	AverageRating float64
	Language      string
	Categories    []string
	Copies        int
}

// parsePublishedDate accepts the three shapes the provider emits: a full date,
// a year-month (day defaults to the 1st) and a bare year (January 1st).
// Anything else yields a zero time; a bad date never fails normalization.
func parsePublishedDate(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	var layout string
	switch len(raw) {
	case 10:
		layout = "2006-01-02"
	case 7:
		layout = "2006-01"
	case 4:
		layout = "2006"
	default:
		slog.Debug("Unparsable published date", "value", raw)
		return time.Time{}
	}
	parsed, err := time.Parse(layout, raw)
	if err != nil {
		slog.Debug("Unparsable published date", "value", raw, "error", err)
		return time.Time{}
	}
	return parsed
}
