package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/light-alarm/internal/config"
	"github.com/oshokin/light-alarm/internal/logger"
	"github.com/oshokin/light-alarm/internal/service/client"
	"github.com/oshokin/light-alarm/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// serverAddress overrides the server address from the configuration.
	serverAddress string
	// logLevel is the minimum level of messages printed by the CLI.
	logLevel string

	// rootCmd represents the base command for administering the scheduler.
	rootCmd = &cobra.Command{
		Use:   "light-alarm-ctl",
		Short: "Manage alarms of a running light-alarm-server.",
		Long: `Creates, lists and deletes alarms, controls the active alarm and
manages the clock of a running light-alarm-server. Results are printed as YAML.`,
		SilenceUsage: true,
	}
)

// Execute runs the light-alarm-ctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&serverAddress, "server", "s", "", "server address, overrides grpc_addr")
	flags.StringVar(&logLevel, "log-level", "warn", "minimum level of printed log messages")

	rootCmd.AddCommand(
		newCreateCommand(),
		newListCommand(),
		newGetCommand(),
		newDeleteCommand(),
		newClearCommand(),
		newStatusCommand(),
		newStopCommand(),
		newSnoozeCommand(),
		newCancelAutoOffCommand(),
		newTimeCommand(),
	)
}

// withSession opens a session for the command, runs fn and closes the session.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *client.Session) error) error {
	threshold, err := logger.WithLevelName(logLevel)
	if err != nil {
		return err
	}

	ctx := logger.ToContext(cmd.Context(), logger.Logger().WithOptions(threshold))
	ctx = logger.WithName(ctx, "light-alarm-ctl")

	session, err := client.Open(ctx, &client.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
		Output:        cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	defer func() {
		_ = session.Close()
	}()

	return fn(ctx, session)
}
