// Command seed_catalog creates a sqlite catalog database with the sample
// authors, categories and books used by the demo.
// Usage: go run cmd/seed_catalog/main.go [-db path/to/catalog.db]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/demo"
	"github.com/mrlokans/catalog/internal/logging"
	"github.com/mrlokans/catalog/internal/services"
)

const defaultSeedDatabasePath = "./catalog.db"

func main() {
	dbPath := flag.String("db", defaultSeedDatabasePath, "path to the catalog database file")
	logSQL := flag.Bool("log-sql", false, "log every SQL statement")
	flag.Parse()

	log, err := logging.New(config.Log{Level: "info", Format: config.LogFormatConsole}, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.Info().Msgf("Seeding catalog database at %s...", *dbPath)

	// Delete existing database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Msg("Failed to remove existing database")
	}

	cfg := config.Database{
		Driver: config.DriverSQLite,
		DSN:    "file:" + *dbPath + "?_fk=1",
	}
	db, err := database.NewDatabase(cfg, logging.NewGormLogger(log, *logSQL))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create database")
	}

	if _, err := demo.Seed(services.NewCatalog(db), log); err != nil {
		db.Close()
		log.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing database")
	}
	log.Info().Msg("Catalog database seeded successfully!")
}
