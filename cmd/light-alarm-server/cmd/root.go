package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/light-alarm/internal/config"
	"github.com/oshokin/light-alarm/internal/service/server"
	"github.com/oshokin/light-alarm/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// httpAddress overrides the HTTP API listen address.
	httpAddress string

	// rootCmd represents the base command for running the alarm scheduler.
	rootCmd = &cobra.Command{
		Use:   "light-alarm-server [listen-address]",
		Short: "Run the light alarm scheduler and its gRPC API.",
		Long: `Starts the alarm scheduler that fires light transitions on milight bulbs.

Only the port from grpc_addr config is used for listening (e.g., :50051).
Listen address can be provided as argument to override config (e.g., :9090, 0.0.0.0:8080).
Alarms are persisted to the configured storage and reloaded on restart.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			var listenAddress string
			if len(args) > 0 {
				listenAddress = args[0]
			}

			options := &server.Options{
				ConfigPath:    configPath,
				ListenAddress: listenAddress,
				HTTPAddress:   httpAddress,
			}

			return server.Run(ctx, options)
		},
	}
)

// Execute runs the light-alarm-server CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.Flags().StringVar(&httpAddress, "http", "", "HTTP API listen address, overrides http_addr")
}
