package alarm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/light-alarm/internal/bulb"
	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	pb "github.com/oshokin/light-alarm/internal/pb/v1"
	"github.com/oshokin/light-alarm/internal/service/scheduler"
)

// fakeService implements Service with canned results.
type fakeService struct {
	alarms   []*domain.Alarm
	err      error
	armed    bool
	now      uint32
	lastUser *domain.Actor
	created  *domain.CreateRequest
	status   scheduler.Status
}

func (f *fakeService) CreateAlarm(_ context.Context, actor *domain.Actor, req *domain.CreateRequest) (*domain.Alarm, error) {
	f.lastUser, f.created = actor, req

	if f.err != nil {
		return nil, f.err
	}

	return f.alarms[0], nil
}

func (f *fakeService) GetAlarm(_ context.Context, id uint32) (*domain.Alarm, error) {
	for _, a := range f.alarms {
		if a.ID == id {
			return a, nil
		}
	}

	return nil, fmt.Errorf("%w: %d", scheduler.ErrAlarmNotFound, id)
}

func (f *fakeService) ListAlarms(context.Context) []*domain.Alarm { return f.alarms }

func (f *fakeService) DeleteAlarm(_ context.Context, actor *domain.Actor, id uint32) bool {
	f.lastUser = actor

	return id == 2
}

func (f *fakeService) ClearAlarms(_ context.Context, actor *domain.Actor) { f.lastUser = actor }

func (f *fakeService) StopAlarm(_ context.Context, actor *domain.Actor) error {
	f.lastUser = actor

	return f.err
}

func (f *fakeService) SnoozeAlarm(_ context.Context, actor *domain.Actor) error {
	f.lastUser = actor

	return f.err
}

func (f *fakeService) CancelAutoTurnOff(_ context.Context, actor *domain.Actor) bool {
	f.lastUser = actor

	return f.armed
}

func (f *fakeService) Status(context.Context) (scheduler.Status, []uint32) {
	return f.status, []uint32{2, 3}
}

func (f *fakeService) Time(context.Context) uint32 { return f.now }

func (f *fakeService) SetTime(_ context.Context, actor *domain.Actor, unix int64) (uint32, error) {
	f.lastUser = actor

	if f.err != nil {
		return 0, f.err
	}

	return domain.FromUnix(unix), nil
}

func (f *fakeService) SyncTime(_ context.Context, actor *domain.Actor) (uint32, error) {
	f.lastUser = actor

	return f.now, f.err
}

func sampleAlarm() *domain.Alarm {
	return &domain.Alarm{
		ID:             2,
		Name:           "wake",
		Alias:          "bedroom",
		TriggerAt:      100,
		RepeatInterval: 86400,
		Duration:       600,
		Bulb:           bulb.ID{DeviceID: 0x10, GroupID: 1, RemoteType: "rgb_cct"},
		Field:          domain.FieldBrightness,
		EndValue:       255,
	}
}

func actor() *pb.Actor {
	return &pb.Actor{Hostname: "host", Username: "user"}
}

// TestServer_ActorRequired ensures mutations without an actor are rejected.
func TestServer_ActorRequired(t *testing.T) {
	t.Parallel()

	s := NewServer(new(fakeService))
	ctx := context.Background()

	_, err := s.CreateAlarm(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.CreateAlarm(ctx, &pb.CreateAlarmRequest{Alias: "bedroom"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.DeleteAlarm(ctx, &pb.AlarmIDRequest{Id: 2})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.StopAlarm(ctx, new(pb.ActorRequest))
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.SetTime(ctx, &pb.SetTimeRequest{UnixTime: 1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

// TestServer_CreateAlarm checks request conversion and response rendering.
func TestServer_CreateAlarm(t *testing.T) {
	t.Parallel()

	svc := &fakeService{alarms: []*domain.Alarm{sampleAlarm()}}
	s := NewServer(svc)

	duration := uint32(600)
	resp, err := s.CreateAlarm(context.Background(), &pb.CreateAlarmRequest{
		Actor:    actor(),
		Alias:    "bedroom",
		Time:     "+00:00:10",
		Field:    "brightness",
		Duration: &duration,
	})
	require.NoError(t, err)
	require.Equal(t, "user@host", svc.lastUser.String())
	require.Equal(t, "+00:00:10", svc.created.Time)
	require.Equal(t, uint32(600), *svc.created.Duration)

	require.Equal(t, uint32(2), resp.Alarm.GetId())
	require.Equal(t, uint32(100), resp.Alarm.GetNextTimeUtc2000())
	require.Equal(t, "01/01/2000 00:01:40", resp.Alarm.NextTime)
	require.Equal(t, "brightness", resp.Alarm.Field)
	require.Equal(t, "0x0010/rgb_cct/1", resp.Alarm.Bulb)
}

// TestServer_ErrorMapping checks scheduler errors surface as gRPC codes.
func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		code codes.Code
	}{
		{err: fmt.Errorf("%w: bad", domain.ErrValidation), code: codes.InvalidArgument},
		{err: fmt.Errorf("%w: offline", domain.ErrDevice), code: codes.FailedPrecondition},
		{err: domain.ErrSnoozeLimit, code: codes.ResourceExhausted},
		{err: scheduler.ErrNoActiveAlarm, code: codes.FailedPrecondition},
		{err: scheduler.ErrClockRejected, code: codes.FailedPrecondition},
		{err: scheduler.ErrTimeUnavailable, code: codes.Unavailable},
		{err: fmt.Errorf("boom"), code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.code.String()+"/"+tt.err.Error(), func(t *testing.T) {
			t.Parallel()

			s := NewServer(&fakeService{err: tt.err})

			_, err := s.SnoozeAlarm(context.Background(), &pb.ActorRequest{Actor: actor()})
			require.Equal(t, tt.code, status.Code(err))
		})
	}
}

// TestServer_Queries covers the read-only endpoints.
func TestServer_Queries(t *testing.T) {
	t.Parallel()

	target := bulb.ID{DeviceID: 0x10, GroupID: 1, RemoteType: "rgb_cct"}
	svc := &fakeService{
		alarms: []*domain.Alarm{sampleAlarm()},
		now:    3600,
		status: scheduler.Status{
			State:           scheduler.StateActive,
			Now:             3600,
			Active:          sampleAlarm(),
			AutoTurnOffAt:   4200,
			AutoTurnOffBulb: &target,
			Queued:          1,
			NextID:          3,
		},
	}
	s := NewServer(svc)
	ctx := context.Background()

	list, err := s.ListAlarms(ctx, new(pb.ListAlarmsRequest))
	require.NoError(t, err)
	require.Len(t, list.Alarms, 1)

	got, err := s.GetAlarm(ctx, &pb.AlarmIDRequest{Id: 2})
	require.NoError(t, err)
	require.Equal(t, "wake", got.Alarm.Name)

	_, err = s.GetAlarm(ctx, &pb.AlarmIDRequest{Id: 9})
	require.Equal(t, codes.NotFound, status.Code(err))

	st, err := s.GetStatus(ctx, new(pb.StatusRequest))
	require.NoError(t, err)
	require.Equal(t, "active", st.State)
	require.Equal(t, "01/01/2000 01:00:00", st.Time)
	require.Equal(t, "01/01/2000 01:10:00", st.AutoTurnOffAt)
	require.Equal(t, "0x0010/rgb_cct/1", st.AutoTurnOffBulb)
	require.Equal(t, []uint32{2, 3}, st.GetStoredIds())

	tm, err := s.GetTime(ctx, new(pb.TimeRequest))
	require.NoError(t, err)
	require.Equal(t, domain.Epoch2000Unix+3600, tm.UnixTime)
}

// TestServer_Mutations covers delete, cancel and time updates.
func TestServer_Mutations(t *testing.T) {
	t.Parallel()

	svc := &fakeService{armed: true}
	s := NewServer(svc)
	ctx := context.Background()

	del, err := s.DeleteAlarm(ctx, &pb.AlarmIDRequest{Actor: actor(), Id: 2})
	require.NoError(t, err)
	require.True(t, del.Deleted)

	cancel, err := s.CancelAutoTurnOff(ctx, &pb.ActorRequest{Actor: actor()})
	require.NoError(t, err)
	require.True(t, cancel.WasArmed)

	tm, err := s.SetTime(ctx, &pb.SetTimeRequest{Actor: actor(), UnixTime: domain.Epoch2000Unix + 60})
	require.NoError(t, err)
	require.Equal(t, uint32(60), tm.GetUtc2000())

	_, err = s.ClearAlarms(ctx, &pb.ActorRequest{Actor: actor()})
	require.NoError(t, err)
	require.Equal(t, "host", svc.lastUser.Hostname)
}

// TestServer_CreateAlarmConversion checks optional values and the init document.
func TestServer_CreateAlarmConversion(t *testing.T) {
	t.Parallel()

	svc := &fakeService{alarms: []*domain.Alarm{sampleAlarm()}}
	s := NewServer(svc)
	ctx := context.Background()

	doc, err := structpb.NewStruct(map[string]any{"status": "on", "hue": 120})
	require.NoError(t, err)

	start, end, when := uint32(10), uint32(200), domain.Epoch2000Unix+500
	_, err = s.CreateAlarm(ctx, &pb.CreateAlarmRequest{
		Actor:      actor(),
		Alias:      "bedroom",
		UtcTime:    &when,
		Field:      "level",
		StartValue: &start,
		EndValue:   &end,
		Init:       doc,
	})
	require.NoError(t, err)
	require.Equal(t, when, *svc.created.UTCTime)
	require.Equal(t, uint16(10), *svc.created.StartValue)
	require.Equal(t, uint16(200), *svc.created.EndValue)
	require.Nil(t, svc.created.Duration)
	require.Equal(t, map[string]any{"status": "on", "hue": float64(120)}, svc.created.Init)

	tooBig := uint32(70000)
	svc.created = nil
	_, err = s.CreateAlarm(ctx, &pb.CreateAlarmRequest{Actor: actor(), Alias: "bedroom", StartValue: &tooBig})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
	require.Nil(t, svc.created)
}

// TestToProtoAlarm_Init checks the state document is carried as a struct.
func TestToProtoAlarm_Init(t *testing.T) {
	t.Parallel()

	a := sampleAlarm()
	a.Init = map[string]any{"status": "on"}
	a.Snoozes = 2

	msg := ToProtoAlarm(a)
	require.Equal(t, "on", msg.GetInit().GetFields()["status"].GetStringValue())
	require.Equal(t, uint32(2), msg.GetSnoozes())
	require.Nil(t, ToProtoAlarm(sampleAlarm()).GetInit())
	require.Nil(t, ToProtoAlarm(nil))
}
