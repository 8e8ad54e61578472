package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vijaycharanme-code/doc-manager/internal/config"
	"github.com/vijaycharanme-code/doc-manager/internal/handler"
	"github.com/vijaycharanme-code/doc-manager/internal/logger"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	workers    Runner
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handlers. workers may be nil.
func NewServer(handlers *handler.Handlers, workers Runner, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: workers, logger: logger}

	if handlers != nil && handlers.HTTP != nil && cfg.HTTPAddress != "" {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves HTTP and runs the workers until ctx is done or SIGTERM,
// SIGINT or SIGQUIT arrives, then shuts everything down gracefully.
func (s *server) RunServer(ctx context.Context) error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(s.httpServer.RunServer)
	if s.workers != nil {
		g.Go(func() error {
			return s.workers.Run(gctx)
		})
	}

	// listen for stop signals
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
