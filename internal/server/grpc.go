package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-prompt-tracker/internal/config"
	myGRPC "github.com/MKhiriev/go-prompt-tracker/internal/handler/grpc"
	"github.com/MKhiriev/go-prompt-tracker/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

// RunServer listens and serves until Shutdown. A clean GracefulStop returns
// nil.
func (g *grpcServer) RunServer() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC listen on %s: %w", g.address, err)
	}

	g.logger.Info().Str("address", lis.Addr().String()).Msg("gRPC server listening")
	if err = g.server.Serve(lis); err != nil {
		return fmt.Errorf("gRPC server on %s: %w", g.address, err)
	}
	return nil
}

// Shutdown reports NOT_SERVING first so health watchers see the drain, then
// waits for in-flight calls.
func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
