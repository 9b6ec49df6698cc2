package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rxglitch/claimcheck/internal/exitcode"
	"github.com/rxglitch/claimcheck/internal/logging"
	"github.com/rxglitch/claimcheck/internal/refdata"
	"github.com/rxglitch/claimcheck/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive claim-validation form",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&cfg.ListenAddr, "listen", ":8080", "Listen address")
	f.StringVar(&cfg.SharedSecret, "secret", os.Getenv("APP_PASSWORD"), "Shared access secret (or set APP_PASSWORD; empty disables the gate)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Msg("config overrides failed to load")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	catalog := refdata.Load(cfg.DataDir, log)
	cfg.Apply(catalog)

	srv := server.New(log, catalog, cfg.SharedSecret)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.ListenAddr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server failed")
			os.Exit(exitcode.ServeError)
		}
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
			os.Exit(exitcode.ServeError)
		}
	}
	return nil
}
