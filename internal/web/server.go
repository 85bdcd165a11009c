package web

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"procpeek/internal/logging"
)

// Server exposes the I/O metrics registry via HTTP. It is optional and
// only started when a listen address is configured, so the counters can
// be scraped while the interactive session runs.
type Server struct {
	Logger *logging.Logger

	Registry      *prometheus.Registry
	TelemetryPath string
	ListenAddr    string
}

// Start serves metrics until ctx is cancelled, then attempts a graceful
// shutdown.
func (s *Server) Start(ctx context.Context) error {
	if s.TelemetryPath == "" {
		s.TelemetryPath = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(s.TelemetryPath, promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              s.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ln, err := net.Listen("tcp", s.ListenAddr)
	if err != nil {
		return err
	}

	if s.Logger != nil {
		s.Logger.Info("metrics server started", "addr", s.ListenAddr, "path", s.TelemetryPath)
	}

	errCh := make(chan error, 1)
	go func() {
		err := srv.Serve(ln)
		if err == http.ErrServerClosed {
			err = nil
		}
		errCh <- err
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
