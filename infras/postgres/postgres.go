package postgres

//nolint:revive
import (
	"fmt"
	"time"

	"hotel/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const maxConnections = 10

// Connect dials the write database, retrying up to DB_POSTGRES_MAX_RETRY times.
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	pg := cfg.DB.Postgres
	wait := time.Duration(pg.RetryWaitTime) * time.Second
	attempts := max(pg.MaxRetry, 1)

	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect("postgres", cfg.PostgresURL(nil))
		if err == nil {
			db.SetMaxIdleConns(maxConnections)
			db.SetMaxOpenConns(maxConnections)

			log.Info().
				Str("host", pg.Write.Host).
				Str("database", cfg.PostgresDatabase()).
				Msg("Connected to postgres")

			return db, nil
		}

		lastErr = err

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("of", attempts).
			Msg("Postgres not reachable")

		if attempt < attempts {
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("failed to connect to postgres after %d attempts: %w", attempts, lastErr)
}
