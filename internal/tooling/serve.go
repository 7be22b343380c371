// CLASSIFICATION: COMMUNITY
// Filename: serve.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-18
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package tooling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"guidebug/debugger"
	debughttp "guidebug/debugger/http"
	"guidebug/debugger/health"
	"guidebug/internal/config"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve GET /api/files until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	log.Info("effective configuration",
		slog.String("dir", cfg.Dir),
		slog.String("suffix", cfg.Suffix),
		slog.String("bind", cfg.Bind),
		slog.Int("port", cfg.Port),
		slog.Int("grpc_port", cfg.GRPCPort),
		slog.Float64("rate_limit", cfg.RateLimit))

	srv, err := debugger.New(debughttp.Config{
		Bind:      cfg.Bind,
		Port:      cfg.Port,
		LogFile:   cfg.LogFile,
		Dir:       cfg.Dir,
		Suffix:    cfg.Suffix,
		RateLimit: rate.Limit(cfg.RateLimit),
		RateBurst: cfg.RateBurst,
		Logger:    log,
	})
	if err != nil {
		return err
	}
	defer srv.Close()

	g, gctx := errgroup.WithContext(ctx)
	if cfg.GRPCPort > 0 {
		lis, err := net.Listen("tcp", net.JoinHostPort(cfg.Bind, fmt.Sprint(cfg.GRPCPort)))
		if err != nil {
			return fmt.Errorf("listen grpc health: %w", err)
		}
		hs := health.New(log)
		hs.SetServing(true)
		g.Go(func() error { return hs.Serve(gctx, lis) })
	}
	g.Go(func() error {
		err := srv.Start(gctx)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("gui debugger stopped")
	return nil
}
