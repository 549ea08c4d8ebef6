package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pankajshindecodes-stack/Eventroop/internal/config"
	"github.com/pankajshindecodes-stack/Eventroop/internal/handler"
	"github.com/pankajshindecodes-stack/Eventroop/internal/logger"
	"github.com/pankajshindecodes-stack/Eventroop/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the application server over the wired handlers and the
// background worker pool. addr is the resolved bind address
// ("host:port"); binding happens here, so the returned error already covers
// an occupied or malformed port.
func NewServer(handlers *handler.Handlers, pool *workers.Workers, addr string, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandlersProvided
	}

	httpServer, err := newHTTPServer(handlers.HTTP.Init(), addr, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &server{
		httpServer: httpServer,
		workers:    pool,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.run()
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

func (s *server) run() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// stop accepting requests, drain in-flight ones
		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	if s.workers != nil {
		s.logger.Info().Msg("launching background workers")
		s.workers.Run(ctx)
	}

	s.logger.Info().Str("addr", s.httpServer.Addr()).Msg("launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed

	// the workers share the signal context; wait for them to wind down
	if s.workers != nil {
		s.workers.Wait()
	}

	s.logger.Info().Msg("server shut down gracefully")
}
