package main

import (
	"fmt"
	"os"

	"solar_kiosk/internal/config"
	"solar_kiosk/internal/logger"

	"github.com/spf13/cobra"
)

var (
	configDir = "configs"
	envFile   = ".env"
	logLevel  = ""
)

// @title        Solar Kiosk API
// @version      1.0
// @description  Telemetry, charging sessions and event journal of a solar charging kiosk.
// @BasePath     /
func main() {
	if err := NewCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// NewCommand builds the kiosk root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kiosk",
		Short: "kiosk runs the solar charging kiosk engine",
		Long: `kiosk runs the telemetry generator and charging session engine of a
solar charging kiosk, serving them over HTTP and a dashboard WebSocket.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVar(&configDir, "config-dir", configDir, "directory holding config.yml")
	globalFlags.StringVar(&envFile, "env-file", envFile, "dotenv file loaded before the config")
	globalFlags.StringVarP(&logLevel, "log-level", "l", logLevel, "override log.level (debug, info, warn, error)")

	cmd.AddCommand(
		NewServeCommand(),
		NewSimulateCommand(),
	)
	return cmd
}

// loadConfig reads the configuration and builds the process logger from it.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(config.Options{ConfigDir: configDir, EnvFile: envFile})
	if err != nil {
		return nil, nil, fmt.Errorf("error reading config: %w", err)
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	log := logger.Init(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	return cfg, log, nil
}
