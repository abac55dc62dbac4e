package logger

import (
	"io"
	"os"
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure picks the writer for the environment: human readable console output while developing,
// JSON lines everywhere else.
func Configure(cfg *config.Config, out io.Writer) {
	if out == nil {
		out = os.Stdout
	}

	if cfg.Server.Env == constant.ServerEnvDevelopment || cfg.Server.Env == constant.Empty {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Str("app", cfg.App.Name).Logger()
	}

	SetLogLevel(cfg)
}

// Silence routes everything to io.Discard; the CLI uses it unless --verbose is set.
func Silence() {
	log.Logger = zerolog.New(io.Discard)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL before anything is logged with it, so a stricter level also
// hides its own trace line. Unknown or empty values mean trace.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.TraceLevel
	}

	zerolog.SetGlobalLevel(level)

	if err != nil || cfg.Server.LogLevel == constant.Empty {
		log.Trace().Str("loglevel", level.String()).Msg("Environment has no log level set up, using default.")
	} else {
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}
}
