package metrics

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"socialuni/internal/config"
)

type Server struct {
	Logger *slog.Logger
	Config *config.Config

	srv *http.Server
}

func (s *Server) Init(context.Context) error {
	s.Logger = s.Logger.With("component", "metrics.Server")

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	s.srv = &http.Server{Addr: s.Config.MetricsAddr, Handler: mux}

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}

	s.Logger.Info("serving metrics", "addr", s.srv.Addr)
	go s.srv.Serve(ln) //nolint:errcheck

	return nil
}

func (s *Server) HealthCheck(context.Context) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
