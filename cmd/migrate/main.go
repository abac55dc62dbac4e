package main

import (
	"os"
	"strings"

	"hotel/config"
	"hotel/helper"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()
	logger.Configure(cfg, os.Stdout)

	if len(os.Args) != 2 {
		log.Fatal().Msgf("usage: migrate <%s>", strings.Join(helper.Directions(), "|"))
	}

	if err := helper.Migrate(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
