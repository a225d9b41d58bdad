package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-prompt-tracker/internal/config"
	"github.com/MKhiriev/go-prompt-tracker/internal/handler"
	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/server"
	"github.com/MKhiriev/go-prompt-tracker/internal/service"
	"github.com/MKhiriev/go-prompt-tracker/internal/store"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-prompt-tracker-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("db_driver", cfg.Storage.DB.Driver).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
