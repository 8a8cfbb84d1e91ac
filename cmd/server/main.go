package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stock-keeper/internal/config"
	handlerhttp "github.com/MKhiriev/stock-keeper/internal/handler/http"
	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/server"
	"github.com/MKhiriev/stock-keeper/internal/service"
	"github.com/MKhiriev/stock-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("stock-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.App, log)

	if err := services.AuthService.EnsureDefaultUser(ctx); err != nil {
		log.Fatal().Err(err).Msg("error seeding default user")
	}

	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
