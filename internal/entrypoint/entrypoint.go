package entrypoint

import (
	"io"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/database"
	"github.com/mrlokans/catalog/internal/demo"
	"github.com/mrlokans/catalog/internal/logging"
	"github.com/mrlokans/catalog/internal/services"
)

// Run opens the database, runs the demo scenario and closes the database
// on every path out. A returned *database.ConnectionInitError means the
// database could not be reached at all.
func Run(cfg *config.Config, version string, stdout, stderr io.Writer) error {
	log, err := logging.New(cfg.Log, stdout, stderr)
	if err != nil {
		return err
	}

	log.Info().Msgf("Starting library catalog v%s", version)

	db, err := database.NewDatabase(cfg.Database, logging.NewGormLogger(log, cfg.Database.LogSQL))
	if err != nil {
		log.Error().Err(err).Msg("Error initializing database connection")
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing database")
		}
	}()

	log.Info().Str("driver", db.Driver()).Msg("Successfully connected to the database!")

	scenario := demo.NewScenario(services.NewCatalog(db), log)
	result, err := scenario.Run()
	if err != nil {
		log.Error().Err(err).Msg("Demo aborted")
		return err
	}

	if len(result.FailedSteps) > 0 {
		log.Warn().Msgf("Demo finished with %d failed steps", len(result.FailedSteps))
		return nil
	}
	log.Info().Msg("Demo finished")
	return nil
}
