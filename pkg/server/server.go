package server

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Server wraps http.Server with logging on start and shutdown.
type Server struct {
	http.Server
	Logger *logrus.Logger
}

func (s *Server) ListenAndServe() {
	s.Logger.WithField("addr", s.Addr).Info("http server is listening")

	if err := s.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.Logger.WithError(err).Error("http server stopped unexpectedly")
	}
}

func (s *Server) Shutdown(ctx context.Context) {
	s.Logger.Info("http server is shutting down")

	if err := s.Server.Shutdown(ctx); err != nil {
		s.Logger.WithError(err).Error("http server shutdown failed")
	}
}
