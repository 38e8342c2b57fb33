/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jfmyers9/lastfmclient/internal/config"
	"github.com/jfmyers9/lastfmclient/internal/session"
	"github.com/jfmyers9/lastfmclient/pkg/lastfm"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	cfgFile  string
	logLevel string
	cfg      *config.Config
	logger   zerolog.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lastfm",
	Short: "Command line client for the Last.fm API",
	Long: `lastfm is a command line client for the Last.fm API 2.0.

It authorizes accounts, stores their session keys, and calls any API
method with signed requests. The serve command runs the example web
authorization flow.`,
	Version:           fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.config/lastfm/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error (overrides config)")
}

// initializeApp loads configuration and sets up the logger
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	logger = setupLogger(cfg.LogLevel, os.Stderr)
	return nil
}

// setupLogger configures the zerolog logger. Terminals get console output,
// anything else gets JSON lines.
func setupLogger(level string, out *os.File) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}

	var w io.Writer = out
	if isTerminal(out) {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// clientConfig builds the SDK configuration from the loaded config.
func clientConfig() lastfm.Config {
	return lastfm.Config{
		APIKey:     cfg.LastFM.APIKey,
		APISecret:  cfg.LastFM.APISecret,
		SessionKey: cfg.LastFM.SessionKey,
		BaseURL:    cfg.LastFM.BaseURL,
		UserAgent:  "lastfm-cli/" + version,
		Logger:     &logger,
	}
}

// newClient creates a blocking client, requiring stored credentials.
func newClient() (*lastfm.Client, error) {
	if !cfg.HasCredentials() {
		return nil, fmt.Errorf("no API credentials configured, run 'lastfm auth' first")
	}
	return lastfm.NewClient(clientConfig())
}

// openStore opens the session database in the data directory.
func openStore() (*session.Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return session.NewStore(filepath.Join(cfg.DataDir, "sessions.db"))
}
