package catalog

// DedupeByTitle collapses books sharing an exact title into the single best
// record per title: the one with the latest published date. A zero date loses
// against any dated record; on equal dates the first encountered wins, so the
// result is reproducible. Surviving books keep first-encounter order.
func DedupeByTitle(books []Book) []Book {
	best := make(map[string]int, len(books))
	var out []Book

	for _, book := range books {
		idx, seen := best[book.Title]
		if !seen {
			best[book.Title] = len(out)
			out = append(out, book)
			continue
		}
		if book.PublishedDate.After(out[idx].PublishedDate) {
			out[idx] = book
		}
	}
	return out
}
