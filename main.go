// Package main provides the entry point for the granular CLI tool.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hannajonsd/granular-imports/config"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	configPath string
	verbose    bool
	quiet      bool
)

func main() {
	rootCmd := newRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "granular",
		Short: "Rewrite react namespace imports into granular bindings",
		Long: `granular rewrites "import React from 'react'" style imports so that each
file destructures only the members it uses.

Commands:
  rewrite   Rewrite files in place or print the result
  usage     Show per-import usage counts and decisions
  config    Inspect the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .granular.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(newRewriteCommand())
	rootCmd.AddCommand(newUsageCommand())
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "granular %s\n", version)
		},
	}
}

// loadConfig reads the configuration and builds the logger for a command.
// --verbose and --quiet override logging.level.
func loadConfig(stderr io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	switch {
	case quiet:
		cfg.Logging.Level = "error"
	case verbose:
		cfg.Logging.Level = "debug"
	}

	logger, err := cfg.NewLogger(stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
