package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/light-alarm/internal/service/client"
)

func newTimeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Show or change the scheduler clock.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.Time(ctx)
			})
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <unix-seconds|RFC3339>",
			Short: "Set the scheduler clock. Refused when a queued alarm would be skipped.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				unix, err := parseTime(args[0])
				if err != nil {
					return err
				}

				return withSession(cmd, func(ctx context.Context, s *client.Session) error {
					return s.SetTime(ctx, unix)
				})
			},
		},
		&cobra.Command{
			Use:   "sync",
			Short: "Set the scheduler clock from network time.",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withSession(cmd, func(ctx context.Context, s *client.Session) error {
					return s.SyncTime(ctx)
				})
			},
		},
	)

	return cmd
}

// parseTime accepts unix seconds or an RFC 3339 timestamp.
func parseTime(arg string) (int64, error) {
	if unix, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return unix, nil
	}

	t, err := time.Parse(time.RFC3339, arg)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: expected unix seconds or RFC 3339", arg)
	}

	return t.Unix(), nil
}
