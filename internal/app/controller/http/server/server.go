package http

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type HTTPServer struct {
	server *http.Server
}

func New(addr string, handler http.Handler) *HTTPServer {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return &HTTPServer{
		server: server,
	}
}

// StartHTTPServer serves until SIGINT or SIGTERM and then drains in-flight
// requests, so a checkout that is being captured gets to finish.
func (s *HTTPServer) StartHTTPServer() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	serveErr := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			zap.L().Error("fatal error while starting server", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	zap.L().Info("Got interruption signal. Shutting down HTTP server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("error while shutting down server", zap.Error(err))
		return err
	}

	return nil
}
