package cmd

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"libris/cmd/ingest"
	"libris/internal/config"
)

var runIngest = ingest.RunWithParams

// CLI represents the complete command structure for the libris application
type CLI struct {
	// Global flags
	DBFile        string `help:"Path to catalog SQLite database file" default:"./libris.db"`
	MaxConcurrent int    `help:"Maximum number of search criteria fetched in parallel" default:"20"`

	Ingest IngestCmd `cmd:"" help:"Search the Google Books API and persist new catalog records"`
}

// IngestCmd represents the ingest command
type IngestCmd struct {
	File     string `short:"f" help:"Path to YAML request file with search criteria"`
	Author   string `help:"Author to search for"`
	Title    string `help:"Title to search for"`
	Category string `help:"Category/subject to search for"`
	ISBN     string `help:"ISBN to search for"`
	Exact    bool   `help:"Match field values as exact phrases"`
	Copies   int    `help:"Number of copies to record per book" default:"3"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	var cli CLI

	ctx := kong.Parse(&cli,
		kong.Name("libris"),
		kong.Description("A tool to ingest book metadata from the Google Books API into a local catalog."),
		kong.UsageOnError(),
	)

	updateGlobalConfig(&cli)

	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("catalog.dbfile", "./libris.db")
	viper.SetDefault("ingest.maxconcurrent", 20)

	// Enable environment variable support
	viper.AutomaticEnv()
	if err := viper.BindEnv("GoogleBooksAPIKey", "GOOGLE_BOOKS_API_KEY"); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("Config file not found, using defaults")
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	config.SetCatalogDBFile(cli.DBFile)
	config.SetMaxConcurrent(cli.MaxConcurrent)
}

// Run executes the ingest command
func (i *IngestCmd) Run() error {
	return runIngest(ingest.Options{
		RequestFile:   i.File,
		Author:        i.Author,
		Title:         i.Title,
		Category:      i.Category,
		ISBN:          i.ISBN,
		Exact:         i.Exact,
		Copies:        i.Copies,
		DBFile:        config.CatalogDBFile,
		MaxConcurrent: config.MaxConcurrent,
	})
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
