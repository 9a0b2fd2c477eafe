package catalog

import (
	"fmt"

	librserrors "libris/internal/errors"
)

// DefaultCopies is the number of copies recorded per book when a request does
// not say otherwise.
const DefaultCopies = 3

// SearchCriterion is one user-supplied search filter. At least one of the
// four fields must be present; ExactMatch quotes values for phrase matching.
type SearchCriterion struct {
	Author     string
	Title      string
	Category   string
	ISBN       string
	ExactMatch bool
}

// Empty reports whether the criterion carries no searchable field.
func (c SearchCriterion) Empty() bool {
	return c.Author == "" && c.Title == "" && c.Category == "" && c.ISBN == ""
}

// SearchRequest is one batch of criteria consumed by the pipeline. Copies is
// stamped onto every book the request produces.
type SearchRequest struct {
	Criteria []SearchCriterion
	Copies   int
}

// Validate rejects requests the pipeline must not dispatch any work for.
func (r SearchRequest) Validate() error {
	if len(r.Criteria) == 0 {
		return librserrors.NewInvalidRequestError("at least one search criterion must be provided")
	}
	for i, c := range r.Criteria {
		if c.Empty() {
			return librserrors.NewInvalidRequestError(
				fmt.Sprintf("criterion %d: at least one of author, title, category or isbn must be set", i))
		}
	}
	if r.Copies < 1 {
		return librserrors.NewInvalidRequestError("copies must be at least 1")
	}
	return nil
}
