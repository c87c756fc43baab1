package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/maksimkurb/wgconf/src/internal/config"
	"github.com/maksimkurb/wgconf/src/internal/log"
)

// Server represents the API server
type Server struct {
	httpServer *http.Server
}

// ListenAddress joins the configured address and port. IPv6 addresses are
// written in square brackets in the settings file.
func ListenAddress(cfg *config.APIConfig) string {
	host := strings.TrimSuffix(strings.TrimPrefix(cfg.ListenAddr, "["), "]")
	return net.JoinHostPort(host, strconv.Itoa(int(cfg.ListenPort)))
}

// NewServer creates a new API server
func NewServer(cfg *config.Config, version VersionInfo) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         ListenAddress(cfg.API),
			Handler:      NewRouter(cfg, version),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Addr returns the address the server listens on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Infof("[API] Listening on http://%s/api/v1", s.httpServer.Addr)
		serverErrors <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infof("[API] Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		if closeErr := s.httpServer.Close(); closeErr != nil {
			log.Errorf("[API] Failed to close server: %v", closeErr)
		}
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}
