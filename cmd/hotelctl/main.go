package main

import (
	"os"

	"hotel/config"
	"hotel/di"
	"hotel/internal/cli"
	"hotel/shared/logger"
)

func main() {
	logger.Configure(config.Get(), os.Stderr)

	os.Exit(cli.Execute(cli.NewRootCommand(di.InitializeCLI), os.Stderr))
}
