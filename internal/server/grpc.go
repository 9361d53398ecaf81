package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	myGRPC "github.com/MKhiriev/go-identity-vault/internal/handler/grpc"
	"github.com/MKhiriev/go-identity-vault/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryLogging))
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	return g.serve(ctx, listener)
}

func (g *grpcServer) serve(ctx context.Context, listener net.Listener) error {
	g.logger.Info().Str("address", listener.Addr().String()).Msg("launching gRPC server")

	errCh := make(chan error, 1)
	go func() {
		if err := g.server.Serve(listener); err != nil {
			errCh <- fmt.Errorf("gRPC server Serve: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	g.handler.Shutdown()
	g.server.GracefulStop()

	g.logger.Info().Msg("gRPC server stopped")
	return nil
}
