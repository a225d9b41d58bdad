package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// traceIDMetadataKey mirrors the HTTP X-Trace-ID header; metadata keys are lower case.
const traceIDMetadataKey = "x-trace-id"

// UnaryLoggingInterceptor attaches a trace_id child logger to the call context
// and writes one access line per call.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	traceID := h.traceIDFromMetadata(ctx)

	ctx = h.logger.WithTraceID(traceID).WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

func (h *Handler) traceIDFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return h.traceIDs.Generate()
}
