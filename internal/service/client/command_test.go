package client

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gopkg.in/yaml.v3"

	pb "github.com/oshokin/light-alarm/internal/pb/v1"
)

// fakeAPI records calls and returns canned results.
type fakeAPI struct {
	actor   *pb.Actor
	created *pb.CreateAlarmRequest
	err     error
	closed  bool
}

func (f *fakeAPI) CreateAlarm(_ context.Context, actor *pb.Actor, req *pb.CreateAlarmRequest) (*pb.Alarm, error) {
	f.actor, f.created = actor, req

	return &pb.Alarm{Id: 2, Alias: req.GetAlias(), NextTime: "01/01/2025 07:00:00"}, f.err
}

func (f *fakeAPI) GetAlarm(_ context.Context, id uint32) (*pb.Alarm, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &pb.Alarm{Id: id, Name: "wake"}, nil
}

func (f *fakeAPI) ListAlarms(context.Context) ([]*pb.Alarm, error) {
	return []*pb.Alarm{{Id: 2}, {Id: 3}}, f.err
}

func (f *fakeAPI) DeleteAlarm(_ context.Context, actor *pb.Actor, id uint32) (bool, error) {
	f.actor = actor

	return id == 2, f.err
}

func (f *fakeAPI) ClearAlarms(_ context.Context, actor *pb.Actor) error {
	f.actor = actor

	return f.err
}

func (f *fakeAPI) StopAlarm(context.Context, *pb.Actor) error   { return f.err }
func (f *fakeAPI) SnoozeAlarm(context.Context, *pb.Actor) error { return f.err }

func (f *fakeAPI) CancelAutoTurnOff(context.Context, *pb.Actor) (bool, error) { return true, f.err }

func (f *fakeAPI) Status(context.Context) (*pb.StatusResponse, error) {
	return &pb.StatusResponse{State: "idle", Queued: 2, NextId: 4}, f.err
}

func (f *fakeAPI) Time(context.Context) (*pb.TimeResponse, error) {
	return &pb.TimeResponse{UnixTime: 946684860, Utc2000: 60, Formatted: "01/01/2000 00:01:00"}, f.err
}

func (f *fakeAPI) SetTime(_ context.Context, _ *pb.Actor, unix int64) (*pb.TimeResponse, error) {
	return &pb.TimeResponse{UnixTime: unix}, f.err
}

func (f *fakeAPI) SyncTime(context.Context, *pb.Actor) (*pb.TimeResponse, error) {
	return &pb.TimeResponse{UnixTime: 1}, f.err
}

func (f *fakeAPI) Close() error {
	f.closed = true

	return nil
}

var localActor = &pb.Actor{Hostname: "laptop", Username: "alice"}

func TestSession_RendersYAML(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	api := new(fakeAPI)
	s := newSession(api, localActor, &out)
	ctx := context.Background()

	require.NoError(t, s.Status(ctx))

	var st map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &st))
	require.Equal(t, "idle", st["state"])
	require.Equal(t, 4, st["next_id"])

	out.Reset()
	require.NoError(t, s.ListAlarms(ctx))

	var list struct {
		Alarms []struct {
			ID uint32 `yaml:"id"`
		} `yaml:"alarms"`
	}
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &list))
	require.Len(t, list.Alarms, 2)
	require.Equal(t, uint32(3), list.Alarms[1].ID)

	out.Reset()
	require.NoError(t, s.Time(ctx))
	require.Contains(t, out.String(), "formatted: 01/01/2000 00:01:00")

	require.NoError(t, s.Close())
	require.True(t, api.closed)
}

func TestSession_MutationsUseActor(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	api := new(fakeAPI)
	s := newSession(api, localActor, &out)
	ctx := context.Background()

	require.NoError(t, s.CreateAlarm(ctx, &pb.CreateAlarmRequest{Alias: "bedroom"}))
	require.Equal(t, localActor, api.actor)
	require.Contains(t, out.String(), "alias: bedroom")

	out.Reset()
	require.NoError(t, s.DeleteAlarm(ctx, 3))
	require.Equal(t, "deleted: false\n", out.String())

	require.NoError(t, s.ClearAlarms(ctx))
	require.NoError(t, s.StopAlarm(ctx))
	require.NoError(t, s.SnoozeAlarm(ctx))

	out.Reset()
	require.NoError(t, s.CancelAutoTurnOff(ctx))
	require.Equal(t, "was_armed: true\n", out.String())

	out.Reset()
	require.NoError(t, s.SetTime(ctx, 1735689600))
	require.Contains(t, out.String(), "unix_time: \"1735689600\"")
}

func TestSession_PropagatesErrors(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{err: status.Error(codes.FailedPrecondition, "no active alarm")}
	s := newSession(api, localActor, new(bytes.Buffer))

	err := s.StopAlarm(context.Background())
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	err = s.GetAlarm(context.Background(), 2)
	require.Error(t, err)
}

func TestLoadCreateRequest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "wake.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: wake up
alias: bedroom
date: "2025-01-02"
time: "07:00:00"
repeat_time: 86400
field: brightness
start_value: 0
end_value: 255
duration: 900
init:
  status: "on"
  color:
    r: 255
    g: 160
    b: 60
`), 0o600))

	req, err := LoadCreateRequest(path)
	require.NoError(t, err)
	require.Equal(t, "bedroom", req.GetAlias())
	require.Equal(t, uint32(86400), req.GetRepeatTime())
	require.Equal(t, uint32(0), req.GetStartValue())
	require.NotNil(t, req.StartValue)
	require.Equal(t, uint32(255), req.GetEndValue())
	require.Equal(t, uint32(900), req.GetDuration())
	require.Nil(t, req.UtcTime)
	require.Equal(t, "on", req.GetInit().GetFields()["status"].GetStringValue())
	require.InDelta(t, 160, req.GetInit().GetFields()["color"].GetStructValue().GetFields()["g"].GetNumberValue(), 0)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("alias: bedroom\nsnooze: 1\n"), 0o600))
	_, err = LoadCreateRequest(bad)
	require.Error(t, err)

	_, err = LoadCreateRequest(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParseInit(t *testing.T) {
	t.Parallel()

	doc, err := ParseInit(`{"status": "on", "brightness": 10}`)
	require.NoError(t, err)
	require.Equal(t, "on", doc.GetFields()["status"].GetStringValue())
	require.InDelta(t, 10, doc.GetFields()["brightness"].GetNumberValue(), 0)

	doc, err = ParseInit("")
	require.NoError(t, err)
	require.Nil(t, doc)

	_, err = ParseInit("[1, 2")
	require.Error(t, err)
}
