package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"aqcalc/internal/config"
	"aqcalc/internal/export"
	"aqcalc/internal/logging"
	"aqcalc/internal/metrics"
	"aqcalc/internal/pipeline"
	"aqcalc/internal/segment"
)

const (
	defaultBind         = "127.0.0.1:7488"
	defaultMaxBodyBytes = 1 << 20
	shutdownTimeout     = 5 * time.Second
)

// Options controls the HTTP host.
type Options struct {
	Bind         string
	MaxBodyBytes int64
	DefaultMode  segment.Mode
	Export       export.Options
}

// OptionsFromConfig derives host options from the loaded configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		Bind:         cfg.Server.Bind,
		MaxBodyBytes: cfg.Server.MaxBodyBytes,
		DefaultMode:  cfg.DefaultMode(),
		Export: export.Options{
			Basename:  cfg.Export.Basename,
			SheetName: cfg.Export.SheetName,
		},
	}
}

// Server is the HTTP host around a Pipeline.
type Server struct {
	opts     Options
	pipeline *pipeline.Pipeline
	metrics  *metrics.Metrics
	logger   *slog.Logger
	handler  http.Handler

	listener net.Listener
	server   *http.Server
	stopOnce sync.Once
}

// New wires the routes. m may be nil, in which case /metrics is not served.
func New(opts Options, p *pipeline.Pipeline, m *metrics.Metrics, logger *slog.Logger) *Server {
	if strings.TrimSpace(opts.Bind) == "" {
		opts.Bind = defaultBind
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		opts:     opts,
		pipeline: p,
		metrics:  m,
		logger:   logging.NewComponentLogger(logger, "server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/score", s.handleScore)
	mux.HandleFunc("/api/export/{format}", s.handleExport)
	mux.HandleFunc("/healthz", s.handleHealth)
	if m != nil {
		mux.Handle("/metrics", m.Handler())
	}
	s.handler = m.Middleware(mux)

	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the routed handler, including metrics middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and serves in the background.
// The server shuts down gracefully when ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Bind)
	if err != nil {
		return fmt.Errorf("server listen: %w", err)
	}
	s.listener = listener

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", logging.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	s.logger.Info("server listening", logging.String("address", listener.Addr().String()))
	return nil
}

// Addr returns the bound address once Start has succeeded.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the server down, waiting up to five seconds for in-flight
// requests. It is safe to call more than once.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("server shutdown incomplete", logging.Error(err))
		}
	})
}
