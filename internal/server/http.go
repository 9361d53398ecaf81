package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("HTTP server listen on %s: %w", h.server.Addr, err)
	}
	return h.serve(ctx, listener)
}

func (h *httpServer) serve(ctx context.Context, listener net.Listener) error {
	h.logger.Info().Str("address", listener.Addr().String()).Msg("launching HTTP server")

	errCh := make(chan error, 1)
	go func() {
		if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server Serve: %w", err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Err(err).Str("func", "*httpServer.serve").Msg("HTTP server shutdown")
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	h.logger.Info().Msg("HTTP server stopped")
	return nil
}
