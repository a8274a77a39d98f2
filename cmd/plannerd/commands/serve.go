package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mallaplan/planner/internal/httpapi"
	"github.com/mallaplan/planner/internal/metrics"
)

var (
	addr          string
	softTimeout   time.Duration
	shutdownGrace time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if addr == "" {
			addr = cfg.ListenAddr
		}
		if softTimeout == 0 {
			softTimeout = cfg.RequestTimeout
		}

		registry := prometheus.NewRegistry()
		m := metrics.New(registry)
		server := httpapi.NewServer(m, softTimeout)

		httpServer := &http.Server{
			Addr:    addr,
			Handler: server.Handler(),
		}

		go func() {
			log.Info().Str("addr", addr).Msg("starting HTTP server")
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("HTTP server error")
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("HTTP server shutdown error")
			return err
		}

		log.Info().Msg("shutdown complete")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to PLANNER_LISTEN_ADDR)")
	serveCmd.Flags().DurationVar(&softTimeout, "soft-timeout", 0, "per-request plan timeout (defaults to PLANNER_REQUEST_TIMEOUT_SECONDS)")
	serveCmd.Flags().DurationVar(&shutdownGrace, "shutdown-grace", 10*time.Second, "time allowed to drain in-flight requests")
}
