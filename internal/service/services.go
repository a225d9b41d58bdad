package service

import (
	"fmt"

	"github.com/MKhiriev/go-prompt-tracker/internal/config"
	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/store"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

type Services struct {
	AuthService       AuthService
	EnrichmentService EnrichmentService
	PromptService     PromptService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	enrichmentService := NewEnrichmentService()

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, cfg.App, logger),
		EnrichmentService: enrichmentService,
		PromptService:     NewPromptValidationService().Wrap(NewPromptService(storages.PromptRepository, enrichmentService, logger)),
		AppInfoService:    appInfoService,
	}, nil
}
