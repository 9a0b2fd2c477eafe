package config

import (
	"github.com/spf13/viper"
)

// Global configuration variables
var (
	// GoogleBooksAPIKey is the static credential sent to the Google Books API
	GoogleBooksAPIKey string
	// CatalogDBFile is the path to the catalog SQLite database
	CatalogDBFile string
	// MaxConcurrent caps how many search criteria are fetched in parallel
	MaxConcurrent int
)

// InitConfig initializes the global configuration
func InitConfig() {
	// Set default values
	viper.SetDefault("catalog.dbfile", "./libris.db")
	viper.SetDefault("ingest.maxconcurrent", 20)

	// Get values from viper
	GoogleBooksAPIKey = viper.GetString("GoogleBooksAPIKey")
	CatalogDBFile = viper.GetString("catalog.dbfile")
	MaxConcurrent = viper.GetInt("ingest.maxconcurrent")
}

// SetCatalogDBFile sets the catalog database path
func SetCatalogDBFile(path string) {
	CatalogDBFile = path
}

// SetMaxConcurrent sets the concurrency ceiling for criterion fan-out
func SetMaxConcurrent(n int) {
	MaxConcurrent = n
}
