package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"

	"hotel/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const MigrationSource = "file://migrations/postgres"

const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionStepUp = "step-up"
	DirectionDrop   = "drop"
)

var ErrUnknownDirection = errors.New("unknown migration direction")

var steps = map[string]func(*migrate.Migrate) error{
	DirectionUp:     (*migrate.Migrate).Up,
	DirectionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
	DirectionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
	DirectionDrop:   (*migrate.Migrate).Down,
}

// Directions lists the accepted directions in a stable order.
func Directions() []string {
	return []string{DirectionUp, DirectionDown, DirectionStepUp, DirectionDrop}
}

// Migrate applies the collection schema in the given direction. Having nothing to do is not an error.
func Migrate(cfg *config.Config, direction string) error {
	step, ok := steps[direction]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
	}

	params := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		params.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	mig, err := migrate.New(MigrationSource, cfg.PostgresURL(params))
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}
	defer mig.Close()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	log.Info().Str("direction", direction).Uint("version", version).Bool("dirty", dirty).Msg("Migration finished")

	return nil
}
