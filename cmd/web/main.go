package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rev-tools/salespulse/pkg/server"
	"github.com/rev-tools/salespulse/pkg/services/analytics"
	"github.com/rev-tools/salespulse/pkg/services/config"
	"github.com/rev-tools/salespulse/pkg/services/dashboard"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the Sales Pulse dashboard server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to an optional salespulse.yaml config file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadApp(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.BaseURL == "" {
		// Not fatal: every fetch fails and the dashboard shows its error
		// state with the seed action instead.
		logger.Warn().Msg("no analytics backend configured (SALESPULSE_BASE_URL is empty)")
	} else {
		logger.Info().Str("base_url", cfg.BaseURL).Msg("analytics backend configured")
	}

	client := analytics.NewClient(cfg.BaseURL, cfg.Timeout(), logger)
	controller := dashboard.NewController(client, logger)

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	api := server.NewWebAPI(logger, server.Config{
		Addr:            addr,
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Dashboard: controller,
			Analytics: client,
		},
	})

	return api.Start()
}
