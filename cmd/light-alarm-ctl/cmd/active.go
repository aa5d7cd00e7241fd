package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/oshokin/light-alarm/internal/service/client"
)

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the scheduler state, the active alarm and the stored ids.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.Status(ctx)
			})
		},
	}
}

func newStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the active alarm.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.StopAlarm(ctx)
			})
		},
	}
}

func newSnoozeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snooze",
		Short: "Snooze the active alarm for five minutes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.SnoozeAlarm(ctx)
			})
		},
	}
}

func newCancelAutoOffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel-auto-off",
		Short: "Disarm the pending automatic turn-off.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.CancelAutoTurnOff(ctx)
			})
		},
	}
}
