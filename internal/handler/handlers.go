package handler

import (
	"github.com/MKhiriev/go-prompt-tracker/internal/config"
	"github.com/MKhiriev/go-prompt-tracker/internal/handler/grpc"
	"github.com/MKhiriev/go-prompt-tracker/internal/handler/http"
	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/service"
)

// Handlers holds one handler per configured transport. A transport without
// an address is left nil.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
