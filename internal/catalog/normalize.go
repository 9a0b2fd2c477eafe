package catalog

import (
	"strings"

	"libris/internal/googlebooks"
)

// Inclusion filter and identifier scheme for normalization. Records outside
// these are dropped silently, not treated as errors.
const (
	acceptedLanguage    = "en"
	acceptedPrintType   = "BOOK"
	preferredIdentifier = "ISBN_13"
)

// NormalizeVolume converts one raw provider volume into a Book. The second
// return value is false when the volume fails the inclusion filter. Copies is
// passed in explicitly; conversion runs concurrently across criteria and must
// not read request state through shared fields.
func NormalizeVolume(v googlebooks.Volume, copies int) (Book, bool) {
	info := v.VolumeInfo
	if info.Language != acceptedLanguage || info.PrintType != acceptedPrintType {
		return Book{}, false
	}

	return Book{
		Title:         info.Title,
		Authors:       info.Authors,
		Publisher:     info.Publisher,
		PublishedDate: parsePublishedDate(info.PublishedDate),
		ISBN:          extractISBN(info.IndustryIdentifiers),
		PageCount:     info.PageCount,
		AverageRating: info.AverageRating,
		Language:      acceptedLanguage,
		Categories:    info.Categories,
		Copies:        copies,
	}, true
}

// extractISBN returns the first identifier of the preferred scheme,
// case-insensitively. A volume without one keeps an empty ISBN; that is not a
// failure.
func extractISBN(identifiers []googlebooks.IndustryIdentifier) string {
	for _, id := range identifiers {
		if strings.EqualFold(id.Type, preferredIdentifier) {
			return id.Identifier
		}
	}
	return ""
}
