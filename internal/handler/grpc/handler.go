package grpc

import (
	"context"

	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/utils"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// Service names reported by the health endpoint next to the overall "" entry.
const (
	AuthServiceName   = "prompttracker.Auth"
	PromptServiceName = "prompttracker.Prompt"
)

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1.Health service for load balancers and orchestrators.
type Handler struct {
	health   *health.Server
	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

// NewHandler builds a Handler whose health server reports SERVING for the
// whole server and for each application service.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health:   health.NewServer(),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}

	for _, name := range []string{"", AuthServiceName, PromptServiceName} {
		h.health.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches every service of the handler to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every reported status to NOT_SERVING. Watchers are notified
// before the transport stops.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("gRPC health set to NOT_SERVING")
	h.health.Shutdown()
}

// ServingStatus returns the status currently reported for service, "" being
// the whole server.
func (h *Handler) ServingStatus(service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}
