package timezone

import (
	"sync"
	"time"

	"hotel/config"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
	mu          sync.RWMutex
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Debug().Msg("No timezone configured, using UTC as default")
		SetLocation(time.UTC)

		return
	}

	if err := Load(cfg.App.Timezone); err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC")
		SetLocation(time.UTC)
	}
}

// Load switches the application zone to the named IANA location.
func Load(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return err //nolint:wrapcheck
	}

	SetLocation(loc)
	log.Debug().Str("timezone", loc.String()).Msg("Application timezone initialized")

	return nil
}

func SetLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()

	appLocation = loc
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	mu.RLock()
	defer mu.RUnlock()

	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}
