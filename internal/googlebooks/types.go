package googlebooks

// Volume represents one item in a Google Books volumes response.
type Volume struct {
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo holds the provider-native metadata for a single volume.
type VolumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	Publisher           string               `json:"publisher"`
	PublishedDate       string               `json:"publishedDate"`
	PageCount           int                  `json:"pageCount"`
	Categories          []string             `json:"categories"`
	AverageRating       float64              `json:"averageRating"`
	Language            string               `json:"language"`
	PrintType           string               `json:"printType"`
	IndustryIdentifiers []IndustryIdentifier `json:"industryIdentifiers"`
}

// IndustryIdentifier is one (type, value) identifier pair, e.g. ISBN_13.
type IndustryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

// volumesResponse matches the Google Books API search response structure.
type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// Page is the result of a single volumes round trip. A page with no items and
// TotalItems zero is the sentinel for "nothing more to fetch".
type Page struct {
	Items      []Volume
	TotalItems int
	StartIndex int
}
