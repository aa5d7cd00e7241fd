//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/oshokin/light-alarm/internal/config"
	pb "github.com/oshokin/light-alarm/internal/pb/v1"
	"github.com/oshokin/light-alarm/internal/version"
)

// userAgentBinary names the client in the gRPC user agent.
const userAgentBinary = "light-alarm-ctl"

// Client wraps the gRPC AlarmService client with convenience helpers.
type Client struct {
	// conn is the underlying gRPC connection to the alarm server.
	conn *grpc.ClientConn
	// api is the AlarmService client interface.
	api pb.AlarmServiceClient

	// callTimeout is the default timeout for individual RPC calls.
	callTimeout time.Duration
	// dialOptions are appended to the default dial options.
	dialOptions []grpc.DialOption
}

// Option configures client behaviour.
type Option func(*Client)

// WithCallTimeout sets a default timeout for service calls.
func WithCallTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.callTimeout = timeout
		}
	}
}

// WithDialOptions adds gRPC dial options, for example a custom dialer.
func WithDialOptions(opts ...grpc.DialOption) Option {
	return func(c *Client) {
		c.dialOptions = append(c.dialOptions, opts...)
	}
}

var (
	// errAddressRequired is returned when a required address value is missing.
	errAddressRequired = errors.New("address must be provided")
	// errActorRequired is returned when an actor is not provided but is required for the operation.
	errActorRequired = errors.New("actor must be provided")
)

// Dial establishes a gRPC connection to the alarm server.
// Note: this uses insecure transport credentials; deploy on a trusted network
// or terminate TLS in a proxy until native TLS is added.
func Dial(_ context.Context, address string, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, errAddressRequired
	}

	client := &Client{
		callTimeout: config.DefaultTimeout,
	}

	for _, opt := range opts {
		opt(client)
	}

	dialOptions := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUserAgent(version.UserAgent(userAgentBinary)),
	}, client.dialOptions...)

	// Use the non-context NewClient API recommended by grpc-go
	// (DialContext is deprecated as of grpc-go v1.60+).
	conn, err := grpc.NewClient(address, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("dial alarm server: %w", err)
	}

	client.conn = conn
	client.api = pb.NewAlarmServiceClient(conn)

	return client, nil
}

// Close releases the underlying gRPC connection.
func (c *Client) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}

	return c.conn.Close()
}

// CreateAlarm queues a new alarm on behalf of actor.
func (c *Client) CreateAlarm(ctx context.Context, actor *pb.Actor, req *pb.CreateAlarmRequest) (*pb.Alarm, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	req.Actor = actor

	resp, err := c.api.CreateAlarm(callCtx, req)
	if err != nil {
		return nil, fmt.Errorf("create alarm: %w", err)
	}

	return resp.GetAlarm(), nil
}

// GetAlarm returns one queued alarm.
func (c *Client) GetAlarm(ctx context.Context, id uint32) (*pb.Alarm, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetAlarm(callCtx, &pb.AlarmIDRequest{Id: id})
	if err != nil {
		return nil, fmt.Errorf("get alarm %d: %w", id, err)
	}

	return resp.GetAlarm(), nil
}

// ListAlarms returns the queued alarms in trigger order.
func (c *Client) ListAlarms(ctx context.Context) ([]*pb.Alarm, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.ListAlarms(callCtx, new(pb.ListAlarmsRequest))
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}

	return resp.GetAlarms(), nil
}

// DeleteAlarm removes one alarm and reports whether it existed.
func (c *Client) DeleteAlarm(ctx context.Context, actor *pb.Actor, id uint32) (bool, error) {
	if actor == nil {
		return false, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.DeleteAlarm(callCtx, &pb.AlarmIDRequest{Actor: actor, Id: id})
	if err != nil {
		return false, fmt.Errorf("delete alarm %d: %w", id, err)
	}

	return resp.GetDeleted(), nil
}

// ClearAlarms removes every alarm.
func (c *Client) ClearAlarms(ctx context.Context, actor *pb.Actor) error {
	return c.actorCall(ctx, actor, "clear alarms", c.api.ClearAlarms)
}

// StopAlarm stops the active alarm.
func (c *Client) StopAlarm(ctx context.Context, actor *pb.Actor) error {
	return c.actorCall(ctx, actor, "stop alarm", c.api.StopAlarm)
}

// SnoozeAlarm snoozes the active alarm.
func (c *Client) SnoozeAlarm(ctx context.Context, actor *pb.Actor) error {
	return c.actorCall(ctx, actor, "snooze alarm", c.api.SnoozeAlarm)
}

// CancelAutoTurnOff disarms the turn-off timer and reports whether it was armed.
func (c *Client) CancelAutoTurnOff(ctx context.Context, actor *pb.Actor) (bool, error) {
	if actor == nil {
		return false, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.CancelAutoTurnOff(callCtx, &pb.ActorRequest{Actor: actor})
	if err != nil {
		return false, fmt.Errorf("cancel auto turn-off: %w", err)
	}

	return resp.GetWasArmed(), nil
}

// Status returns a snapshot of the scheduler.
func (c *Client) Status(ctx context.Context) (*pb.StatusResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetStatus(callCtx, new(pb.StatusRequest))
	if err != nil {
		return nil, fmt.Errorf("get status: %w", err)
	}

	return resp, nil
}

// Time returns the scheduler time.
func (c *Client) Time(ctx context.Context) (*pb.TimeResponse, error) {
	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.GetTime(callCtx, new(pb.TimeRequest))
	if err != nil {
		return nil, fmt.Errorf("get time: %w", err)
	}

	return resp, nil
}

// SetTime sets the scheduler clock to unix seconds.
func (c *Client) SetTime(ctx context.Context, actor *pb.Actor, unix int64) (*pb.TimeResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.SetTime(callCtx, &pb.SetTimeRequest{Actor: actor, UnixTime: unix})
	if err != nil {
		return nil, fmt.Errorf("set time: %w", err)
	}

	return resp, nil
}

// SyncTime sets the scheduler clock from network time.
func (c *Client) SyncTime(ctx context.Context, actor *pb.Actor) (*pb.TimeResponse, error) {
	if actor == nil {
		return nil, errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.api.SyncTime(callCtx, &pb.ActorRequest{Actor: actor})
	if err != nil {
		return nil, fmt.Errorf("sync time: %w", err)
	}

	return resp, nil
}

// actorCall sends a request that carries only the actor.
func (c *Client) actorCall(
	ctx context.Context,
	actor *pb.Actor,
	operation string,
	call func(context.Context, *pb.ActorRequest, ...grpc.CallOption) (*emptypb.Empty, error),
) error {
	if actor == nil {
		return errActorRequired
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	if _, err := call(callCtx, &pb.ActorRequest{Actor: actor}); err != nil {
		return fmt.Errorf("%s: %w", operation, err)
	}

	return nil
}

// callContext returns a context with the client's call timeout if configured,
// otherwise a cancellable child context without a deadline.
func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, c.callTimeout)
}
