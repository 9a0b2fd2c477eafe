package googlebooks

import (
	"net/url"
	"strings"
)

// Query describes one search criterion in provider terms. Empty fields are
// omitted from the generated query string.
type Query struct {
	Author  string
	Title   string
	Subject string
	ISBN    string
	// Exact quotes field values so the provider matches the full phrase.
	Exact bool
}

// BuildQuery turns a Query into the q= parameter for the volumes endpoint.
// Present fields contribute a field:value token; tokens are joined with "+",
// which the provider interprets as logical AND. Values are escaped so the
// result can be embedded in a URL as-is.
func BuildQuery(q Query) string {
	var tokens []string
	appendIfPresent(&tokens, "inauthor", q.Author, q.Exact)
	appendIfPresent(&tokens, "intitle", q.Title, q.Exact)
	appendIfPresent(&tokens, "subject", q.Subject, q.Exact)
	appendIfPresent(&tokens, "isbn", q.ISBN, q.Exact)
	return strings.Join(tokens, "+")
}

func appendIfPresent(tokens *[]string, field, value string, exact bool) {
	if value == "" {
		return
	}
	if exact {
		value = `"` + value + `"`
	}
	*tokens = append(*tokens, field+":"+url.QueryEscape(value))
}
