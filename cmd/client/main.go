package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-prompt-tracker/internal/adapter"
	"github.com/MKhiriev/go-prompt-tracker/internal/config"
	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("go-prompt-tracker-client")

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(args) > 0 && args[0] == "build-info" {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	if err = dispatch(context.Background(), serverAdapter, args, os.Stdout); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
