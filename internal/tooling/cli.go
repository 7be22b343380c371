// CLASSIFICATION: COMMUNITY
// Filename: cli.go v0.3
// Date Modified: 2026-10-18
// Author: Lukas Bower
//
// ─────────────────────────────────────────────────────────────
// guidebug · command tree
//
//   guidebug serve     run the HTTP API (and optional gRPC health)
//   guidebug list      print the matching files once as JSON
//   guidebug version
//
// Settings come from flags, GUIDEBUG_* env vars or guidebug.yaml.
// ─────────────────────────────────────────────────────────────
package tooling

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"guidebug/debugger/files"
	"guidebug/internal/config"
	"guidebug/internal/logger"
)

// Version is overridden at link time.
var Version = "v0.1.0"

// NewRootCommand builds the CLI. Tests construct fresh trees; Execute uses
// one bound to os.Stdout.
func NewRootCommand(ctx context.Context, stdout io.Writer) *cobra.Command {
	v := config.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "guidebug",
		Short:         "Serve the GUI debugger scratch directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.ReadFile(v, cfgFile)
		},
	}
	root.SetContext(ctx)
	root.SetOut(stdout)
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./guidebug.yaml or $HOME/.guidebug/guidebug.yaml)")
	if err := config.BindFlags(v, root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(newServeCommand(v), newListCommand(v), &cobra.Command{
		Use:   "version",
		Short: "Print guidebug version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "guidebug %s\n", Version)
		},
	})
	return root
}

func newListCommand(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the matching files as a JSON array",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			records, err := files.NewLister(cfg.Dir, cfg.Suffix).List(cmd.Context())
			if err != nil {
				return err
			}
			if records == nil {
				records = []files.Record{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		},
	}
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	lcfg := logger.ConfigDefault()
	lcfg.Level = level
	lcfg.Format = format
	return logger.New(lcfg)
}

// Execute runs the CLI. Typically called from main().
func Execute(ctx context.Context) {
	if err := NewRootCommand(ctx, os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
