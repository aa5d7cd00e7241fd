package client

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/light-alarm/internal/config"
	"github.com/oshokin/light-alarm/internal/logger"
	pb "github.com/oshokin/light-alarm/internal/pb/v1"
	"github.com/oshokin/light-alarm/internal/service/common"
)

// yamlIndent is the indentation of printed results.
const yamlIndent = 2

// marshalOptions keeps proto field names and zero values in printed results.
//
//nolint:gochecknoglobals // Immutable rendering options.
var marshalOptions = protojson.MarshalOptions{UseProtoNames: true, EmitUnpopulated: true}

// Options configures a ctl session.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Output receives the rendered results.
	Output io.Writer
}

// alarmService is the part of common.Client the commands use.
type alarmService interface {
	CreateAlarm(ctx context.Context, actor *pb.Actor, req *pb.CreateAlarmRequest) (*pb.Alarm, error)
	GetAlarm(ctx context.Context, id uint32) (*pb.Alarm, error)
	ListAlarms(ctx context.Context) ([]*pb.Alarm, error)
	DeleteAlarm(ctx context.Context, actor *pb.Actor, id uint32) (bool, error)
	ClearAlarms(ctx context.Context, actor *pb.Actor) error
	StopAlarm(ctx context.Context, actor *pb.Actor) error
	SnoozeAlarm(ctx context.Context, actor *pb.Actor) error
	CancelAutoTurnOff(ctx context.Context, actor *pb.Actor) (bool, error)
	Status(ctx context.Context) (*pb.StatusResponse, error)
	Time(ctx context.Context) (*pb.TimeResponse, error)
	SetTime(ctx context.Context, actor *pb.Actor, unix int64) (*pb.TimeResponse, error)
	SyncTime(ctx context.Context, actor *pb.Actor) (*pb.TimeResponse, error)
	Close() error
}

// Session is a connection to the alarm server on behalf of the local actor.
type Session struct {
	// api sends the requests.
	api alarmService
	// actor is recorded by the server for mutations.
	actor *pb.Actor
	// out receives the rendered results.
	out io.Writer
}

// Open loads settings, identifies the local actor and connects to the server.
func Open(ctx context.Context, opts *Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	serverAddress := cfg.GRPCAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	actor, err := common.DetectActor()
	if err != nil {
		return nil, err
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Connected to alarm server", "server_address", serverAddress, "actor", actor.GetUsername())

	return newSession(client, actor, opts.Output), nil
}

// newSession builds a session over an existing client.
func newSession(api alarmService, actor *pb.Actor, out io.Writer) *Session {
	return &Session{
		api:   api,
		actor: actor,
		out:   out,
	}
}

// Close releases the connection.
func (s *Session) Close() error {
	return s.api.Close()
}

// CreateAlarm queues a new alarm and prints it.
func (s *Session) CreateAlarm(ctx context.Context, req *pb.CreateAlarmRequest) error {
	a, err := s.api.CreateAlarm(ctx, s.actor, req)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Alarm created", "id", a.GetId(), "next_time", a.GetNextTime())

	return s.render(a)
}

// GetAlarm prints one queued alarm.
func (s *Session) GetAlarm(ctx context.Context, id uint32) error {
	a, err := s.api.GetAlarm(ctx, id)
	if err != nil {
		return err
	}

	return s.render(a)
}

// ListAlarms prints the queued alarms in trigger order.
func (s *Session) ListAlarms(ctx context.Context) error {
	list, err := s.api.ListAlarms(ctx)
	if err != nil {
		return err
	}

	return s.render(&pb.ListAlarmsResponse{Alarms: list})
}

// DeleteAlarm removes one alarm.
func (s *Session) DeleteAlarm(ctx context.Context, id uint32) error {
	deleted, err := s.api.DeleteAlarm(ctx, s.actor, id)
	if err != nil {
		return err
	}

	return s.render(&pb.DeleteAlarmResponse{Deleted: deleted})
}

// ClearAlarms removes every alarm.
func (s *Session) ClearAlarms(ctx context.Context) error {
	if err := s.api.ClearAlarms(ctx, s.actor); err != nil {
		return err
	}

	logger.Info(ctx, "All alarms cleared")

	return nil
}

// StopAlarm stops the active alarm.
func (s *Session) StopAlarm(ctx context.Context) error {
	if err := s.api.StopAlarm(ctx, s.actor); err != nil {
		return err
	}

	logger.Info(ctx, "Alarm stopped")

	return nil
}

// SnoozeAlarm snoozes the active alarm.
func (s *Session) SnoozeAlarm(ctx context.Context) error {
	if err := s.api.SnoozeAlarm(ctx, s.actor); err != nil {
		return err
	}

	logger.Info(ctx, "Alarm snoozed")

	return nil
}

// CancelAutoTurnOff disarms the turn-off timer.
func (s *Session) CancelAutoTurnOff(ctx context.Context) error {
	armed, err := s.api.CancelAutoTurnOff(ctx, s.actor)
	if err != nil {
		return err
	}

	return s.render(&pb.CancelAutoTurnOffResponse{WasArmed: armed})
}

// Status prints a snapshot of the scheduler.
func (s *Session) Status(ctx context.Context) error {
	st, err := s.api.Status(ctx)
	if err != nil {
		return err
	}

	return s.render(st)
}

// Time prints the scheduler time.
func (s *Session) Time(ctx context.Context) error {
	t, err := s.api.Time(ctx)
	if err != nil {
		return err
	}

	return s.render(t)
}

// SetTime sets the scheduler clock and prints the new time.
func (s *Session) SetTime(ctx context.Context, unix int64) error {
	t, err := s.api.SetTime(ctx, s.actor, unix)
	if err != nil {
		return err
	}

	return s.render(t)
}

// SyncTime sets the scheduler clock from network time and prints it.
func (s *Session) SyncTime(ctx context.Context) error {
	t, err := s.api.SyncTime(ctx, s.actor)
	if err != nil {
		return err
	}

	return s.render(t)
}

// render writes msg as block-style YAML with proto field names.
func (s *Session) render(msg proto.Message) error {
	encoded, err := marshalOptions.Marshal(msg)
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}

	var doc yaml.Node
	if err = yaml.Unmarshal(encoded, &doc); err != nil {
		return fmt.Errorf("render result: %w", err)
	}

	blockStyle(&doc)

	enc := yaml.NewEncoder(s.out)
	enc.SetIndent(yamlIndent)

	if err = enc.Encode(&doc); err != nil {
		return fmt.Errorf("render result: %w", err)
	}

	return enc.Close()
}

// blockStyle drops the JSON flow and quoting styles so the encoder picks plain YAML.
func blockStyle(node *yaml.Node) {
	node.Style = 0

	for _, child := range node.Content {
		blockStyle(child)
	}
}
