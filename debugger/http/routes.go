// CLASSIFICATION: COMMUNITY
// Filename: routes.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package http

import (
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"guidebug/debugger/api"
	"guidebug/internal/logger"
)

func (s *Server) routes(limiter *rate.Limiter) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.counter)
	if s.logFile != nil {
		r.Use(s.accessLogger)
	}

	files := api.Files(s.cfg.Lister, s.metrics)
	if limiter != nil {
		r.With(rateLimit(limiter, s.metrics)).Get("/api/files", files)
	} else {
		r.Get("/api/files", files)
	}
	r.Get("/api/status", api.Status(time.Now(), s.cfg.Dir, s.cfg.Suffix))
	r.Get("/api/metrics", api.MetricsHandler(s.metrics))
	return r
}

// counter counts requests and attaches the server logger to the request.
func (s *Server) counter(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		s.metrics.Request()
		ctx := logger.WithContext(r.Context(), s.log)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) accessLogger(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		status := ww.Status()
		if status == 0 {
			status = stdhttp.StatusOK
		}
		s.writeAccess(fmt.Sprintf("%s %s %s %d\n", r.RemoteAddr, r.Method, r.URL.Path, status))
	})
}

func rateLimit(limiter *rate.Limiter, m *api.Metrics) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			allowed := limiter.Allow()
			m.RateDecision(allowed)
			if !allowed {
				stdhttp.Error(w, "rate limit exceeded", stdhttp.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
