package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solar_kiosk/internal/handlers"
	"solar_kiosk/internal/logger"
	"solar_kiosk/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

// NewServeCommand runs the engine behind the HTTP API until SIGINT/SIGTERM.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the kiosk engine and HTTP API in the foreground",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Log.Level != logger.DebugLevel {
				gin.SetMode(gin.ReleaseMode)
			}

			a, err := newApp(cfg, log, true)
			if err != nil {
				return err
			}
			defer a.close()

			apiHandler := handlers.NewHandler(a.services, log)
			apiHandler.SetStreamInterval(cfg.WS.DefaultInterval)

			a.services.Telemetry.Start()
			log.Infow("kiosk_started", "port", cfg.Port, "db", cfg.DB.Path,
				"telemetry_interval", cfg.Telemetry.Interval.String())

			srv := &server.Server{}
			errCh := make(chan error, 1)
			go func() { errCh <- srv.Run(cfg.Port, apiHandler.InitRoutes()) }()

			return waitForShutdown(srv, a, errCh, log)
		},
	}
}

// waitForShutdown blocks until a signal or a server failure, then stops the engines and the server.
func waitForShutdown(srv *server.Server, a *app, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case sig := <-quit:
		log.Infow("shutting down server...", "signal", sig.String())
	case runErr = <-errCh:
		log.Errorw("error starting server", "err", runErr)
	}

	// stop engines first so no tick lands after the journal closes
	a.services.Telemetry.Stop()
	a.services.Sessions.Cancel(context.Background())

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
		if runErr == nil {
			runErr = err
		}
	}
	return runErr
}
