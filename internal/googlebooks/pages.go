package googlebooks

import (
	"context"
	"log/slog"
)

// FetchAll drives FetchPage from offset zero until the provider is exhausted
// and returns every raw volume for the query. The reported total is captured
// from the first non-empty page only; later pages' totals are ignored even if
// they disagree, since the provider's count is authoritative at offset zero.
//
// A transport failure mid-pagination terminates the loop and the partial
// accumulation (possibly empty) is returned. FetchAll never fails: one bad
// criterion must not abort a multi-criterion request.
func (c *Client) FetchAll(ctx context.Context, query string) []Volume {
	var accumulated []Volume
	offset := 0
	total := -1 // unknown until the first non-empty page

	for {
		page, err := c.FetchPage(ctx, query, offset)
		if err != nil {
			slog.Warn("Page fetch failed, keeping partial results",
				"query", query,
				"startIndex", offset,
				"fetched", len(accumulated),
				"error", err)
			return accumulated
		}
		if len(page.Items) == 0 {
			return accumulated
		}
		if total < 0 {
			total = page.TotalItems
		}
		accumulated = append(accumulated, page.Items...)
		offset += PageSize
		if offset >= total {
			return accumulated
		}
	}
}
