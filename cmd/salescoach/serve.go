package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "github.com/nsfeld/salescoach/internal/adapters/http"
	"github.com/nsfeld/salescoach/internal/cli"
	"github.com/nsfeld/salescoach/internal/config"
	"github.com/nsfeld/salescoach/internal/logging"
	"github.com/nsfeld/salescoach/pkg/observability"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the training API server",
	Long:  `Starts the HTTP server exposing session start/turn/result endpoints, module discovery, health and Prometheus metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		logger := logging.New(level)

		metrics := observability.NewMetrics(nil)
		engine, cleanup, err := cli.BuildEngine(cfg, logger, metrics.Hooks())
		if err != nil {
			return err
		}
		defer cleanup()

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: httpadapter.NewHandler(engine, logger),
		}

		serverErrors := make(chan error, 1)
		go func() {
			logger.Info("server listening", "addr", srv.Addr, "store", cfg.Store.Driver)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return fmt.Errorf("server error: %w", err)

		case sig := <-shutdown:
			logger.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown failed, closing", "err", err)
				return srv.Close()
			}
			logger.Info("server stopped")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides config)")
}
