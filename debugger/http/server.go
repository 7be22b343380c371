// CLASSIFICATION: COMMUNITY
// Filename: server.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"guidebug/debugger/api"
	"guidebug/debugger/files"
	"guidebug/internal/logger"
)

// Config holds server configuration.
type Config struct {
	Bind    string
	Port    int
	LogFile string

	// Dir and Suffix build the default lister and are reported by /api/status.
	Dir    string
	Suffix string
	// Lister overrides the filesystem lister, mainly for tests.
	Lister api.Lister

	// RateLimit is requests per second on /api/files; zero disables limiting.
	RateLimit rate.Limit
	RateBurst int

	Logger *slog.Logger
}

// Server wraps the HTTP server and router.
type Server struct {
	cfg     Config
	router  *chi.Mux
	metrics *api.Metrics
	log     *slog.Logger
	logFile *os.File

	mu  sync.Mutex
	srv *http.Server
}

// New returns an initialized server.
func New(cfg Config) (*Server, error) {
	if cfg.Suffix == "" {
		cfg.Suffix = files.DefaultSuffix
	}
	if cfg.Lister == nil {
		cfg.Lister = files.NewLister(cfg.Dir, cfg.Suffix)
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(cfg.RateLimit, burst)
	}

	s := &Server{
		cfg:     cfg,
		metrics: api.NewMetrics(time.Now(), limiter),
		log:     log,
	}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open access log: %w", err)
		}
		s.logFile = f
	}
	s.router = s.routes(limiter)
	return s, nil
}

// Router returns the underlying router, useful for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Metrics returns the live request counters.
func (s *Server) Metrics() *api.Metrics {
	return s.metrics
}

// Addr returns the listening address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Bind, fmt.Sprint(s.cfg.Port))
}

// Start begins serving until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.srv = srv
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		ctxTo, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := srv.Shutdown(ctxTo); err != nil {
			s.log.Warn("http shutdown", slog.Any("error", err))
		}
	}()
	s.log.Info("gui debugger listening", slog.String("addr", s.Addr()), slog.String("dir", s.cfg.Dir))
	err := srv.ListenAndServe()
	s.Close()
	return err
}

// Close releases the access log file.
func (s *Server) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logFile == nil {
		return nil
	}
	err := s.logFile.Close()
	s.logFile = nil
	return err
}

func (s *Server) writeAccess(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logFile == nil {
		return
	}
	if _, err := s.logFile.WriteString(line); err != nil {
		s.log.Warn("write access log", slog.Any("error", err))
	}
}
