package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	pb "github.com/oshokin/light-alarm/internal/pb/v1"
	"github.com/oshokin/light-alarm/internal/service/client"
)

// createFlags holds the flags of the create command.
type createFlags struct {
	file        string
	name        string
	alias       string
	utcTime     int64
	time        string
	date        string
	repeat      uint32
	autoTurnOff uint32
	field       string
	startValue  uint32
	endValue    uint32
	duration    uint32
	init        string
}

func newCreateCommand() *cobra.Command {
	var f createFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an alarm.",
		Long: `Creates an alarm from flags or from a YAML definition file.

The trigger time is given as --utc-time (unix seconds), as a relative
--time +HH:MM:SS, or as --date YYYY-MM-DD with --time HH:MM:SS in UTC.
Flags override values read from --file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.request(cmd)
			if err != nil {
				return err
			}

			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.CreateAlarm(ctx, req)
			})
		},
	}

	f.bind(cmd)

	return cmd
}

// bind registers the flags on cmd.
func (f *createFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.file, "file", "f", "", "YAML alarm definition")
	flags.StringVar(&f.name, "name", "", "display name")
	flags.StringVarP(&f.alias, "alias", "a", "", "bulb alias")
	flags.Int64Var(&f.utcTime, "utc-time", 0, "trigger time in unix seconds")
	flags.StringVarP(&f.time, "time", "t", "", "trigger time, +HH:MM:SS or HH:MM:SS with --date")
	flags.StringVarP(&f.date, "date", "d", "", "trigger date YYYY-MM-DD")
	flags.Uint32Var(&f.repeat, "repeat", 0, "repeat interval in seconds")
	flags.Uint32Var(&f.autoTurnOff, "auto-turn-off", 0, "seconds after the effect before the bulb is switched off")
	flags.StringVar(&f.field, "field", "", "transitioned field: hue, saturation, brightness, level, kelvin, color_temp")
	flags.Uint32Var(&f.startValue, "start", 0, "field value when the effect starts")
	flags.Uint32Var(&f.endValue, "end", 0, "field value when the effect ends")
	flags.Uint32Var(&f.duration, "duration", 0, "effect length in seconds")
	flags.StringVar(&f.init, "init", "", "initial state document as YAML or JSON")
}

// request builds the create request from the file and the changed flags.
//
//nolint:cyclop // One branch per flag.
func (f *createFlags) request(cmd *cobra.Command) (*pb.CreateAlarmRequest, error) {
	req := new(pb.CreateAlarmRequest)

	if f.file != "" {
		loaded, err := client.LoadCreateRequest(f.file)
		if err != nil {
			return nil, err
		}

		req = loaded
	}

	changed := cmd.Flags().Changed

	if changed("name") {
		req.Name = f.name
	}

	if changed("alias") {
		req.Alias = f.alias
	}

	if changed("utc-time") {
		req.UtcTime = &f.utcTime
	}

	if changed("time") {
		req.Time = f.time
	}

	if changed("date") {
		req.Date = f.date
	}

	if changed("repeat") {
		req.RepeatTime = f.repeat
	}

	if changed("auto-turn-off") {
		req.AutoTurnOff = f.autoTurnOff
	}

	if changed("field") {
		req.Field = f.field
	}

	if changed("start") {
		req.StartValue = &f.startValue
	}

	if changed("end") {
		req.EndValue = &f.endValue
	}

	if changed("duration") {
		req.Duration = &f.duration
	}

	if changed("init") {
		doc, err := client.ParseInit(f.init)
		if err != nil {
			return nil, err
		}

		req.Init = doc
	}

	return req, nil
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List queued alarms in trigger order.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.ListAlarms(ctx)
			})
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one queued alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.GetAlarm(ctx, id)
			})
		},
	}
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one queued alarm.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.DeleteAlarm(ctx, id)
			})
		},
	}
}

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every alarm, queued and persisted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(ctx context.Context, s *client.Session) error {
				return s.ClearAlarms(ctx)
			})
		},
	}
}

// parseID parses an alarm id argument.
func parseID(arg string) (uint32, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid alarm id %q: %w", arg, err)
	}

	return uint32(id), nil
}
