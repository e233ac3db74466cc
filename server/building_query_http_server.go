package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

type BuildingQueryHttpServer struct {
	router          *Router
	muxRouter       *mux.Router
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

func NewBuildingQueryHttpServer(router *Router, muxRouter *mux.Router, logger *slog.Logger, shutdownTimeout time.Duration) *BuildingQueryHttpServer {
	return &BuildingQueryHttpServer{
		router:          router,
		muxRouter:       muxRouter,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// ListenAndServe binds addr and serves until ctx is done.
func (s *BuildingQueryHttpServer) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *BuildingQueryHttpServer) Serve(ctx context.Context, ln net.Listener) error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Handler:           s.muxRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server.starting", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server.shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errCh
	s.logger.Info("server.exited")
	return nil
}
