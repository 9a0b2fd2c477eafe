package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"libris/internal/catalog"
)

// requestFile is the YAML shape of a batch ingest request:
//
//	copies: 3
//	criteria:
//	  - author: Frank Herbert
//	    title: Dune
//	    exact_match: true
//	  - category: Science Fiction
type requestFile struct {
	Copies   int `yaml:"copies"`
	Criteria []struct {
		Author     string `yaml:"author"`
		Title      string `yaml:"title"`
		Category   string `yaml:"category"`
		ISBN       string `yaml:"isbn"`
		ExactMatch bool   `yaml:"exact_match"`
	} `yaml:"criteria"`
}

// loadRequestFile reads and validates a YAML request file. A missing copies
// value falls back to the default.
func loadRequestFile(path string) (catalog.SearchRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return catalog.SearchRequest{}, fmt.Errorf("failed to read request file: %w", err)
	}

	var parsed requestFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return catalog.SearchRequest{}, fmt.Errorf("failed to parse request file %s: %w", path, err)
	}

	req := catalog.SearchRequest{Copies: parsed.Copies}
	if req.Copies == 0 {
		req.Copies = catalog.DefaultCopies
	}
	for _, c := range parsed.Criteria {
		req.Criteria = append(req.Criteria, catalog.SearchCriterion{
			Author:     c.Author,
			Title:      c.Title,
			Category:   c.Category,
			ISBN:       c.ISBN,
			ExactMatch: c.ExactMatch,
		})
	}

	if err := req.Validate(); err != nil {
		return catalog.SearchRequest{}, err
	}
	return req, nil
}
