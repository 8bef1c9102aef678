package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"classical-ciphers-backend/config"
	"classical-ciphers-backend/handlers"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			lvl, err := log.ParseLevel(cfg.Log.Level)
			if err != nil {
				return err
			}
			// --verbose wins over the configured level
			logger := loggerFromContext(cmd.Context())
			if logger.GetLevel() != log.DebugLevel {
				logger.SetLevel(lvl)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the TOML config file")
	return cmd
}

// serve runs the HTTP host until ctx is cancelled, then shuts it down
// gracefully. A listen failure is returned immediately.
func serve(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Server.Port),
		Handler:           handlers.NewRouter(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Server starting", "port", cfg.Server.Port, "origins", cfg.Server.AllowedOrigins)
	logger.Info("API endpoints:")
	logger.Info("  GET  /api/v1/health")
	logger.Info("  GET  /api/v1/ciphers")
	logger.Info("  POST /api/v1/cipher/{caesar,vigenere,columnar,atbash}")

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
