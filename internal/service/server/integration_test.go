package server

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	api "github.com/oshokin/light-alarm/internal/api/grpc/alarm"
	pb "github.com/oshokin/light-alarm/internal/pb/v1"
	"github.com/oshokin/light-alarm/internal/service/common"
)

const bufSize = 1 << 20

// dialService serves svc over an in-memory listener and returns a connected client.
func dialService(t *testing.T, svc *service) *common.Client {
	t.Helper()

	lis := bufconn.Listen(bufSize)
	grpcServer := grpc.NewServer()
	pb.RegisterAlarmServiceServer(grpcServer, api.NewServer(svc))

	go func() {
		_ = grpcServer.Serve(lis)
	}()

	t.Cleanup(grpcServer.Stop)

	client, err := common.Dial(context.Background(), "passthrough:///bufnet",
		common.WithDialOptions(grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		})),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestIntegration_ClientToScheduler(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := newTestService(t, &lockCheckingSource{unix: startUnix})
	client := dialService(t, svc)
	actor := &pb.Actor{Hostname: "laptop", Username: "alice"}

	doc, err := structpb.NewStruct(map[string]any{"status": "on", "brightness": 0})
	require.NoError(t, err)

	start, end, duration := uint32(0), uint32(255), uint32(600)
	created, err := client.CreateAlarm(ctx, actor, &pb.CreateAlarmRequest{
		Name:       "wake",
		Alias:      "bedroom",
		Time:       "+00:00:00",
		Field:      "brightness",
		StartValue: &start,
		EndValue:   &end,
		Duration:   &duration,
		Init:       doc,
	})
	require.NoError(t, err)
	require.Equal(t, uint32(2), created.GetId())
	require.Equal(t, "0x0010/rgb_cct/1", created.GetBulb())

	_, err = client.CreateAlarm(ctx, actor, &pb.CreateAlarmRequest{Alias: "garage"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	list, err := client.ListAlarms(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = client.SnoozeAlarm(ctx, actor)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	svc.tick(ctx)

	st, err := client.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, "active", st.GetState())
	require.Equal(t, uint32(2), st.GetActive().GetId())
	require.Equal(t, uint32(3), st.GetNextId())
	require.Empty(t, st.GetStoredIds())

	require.NoError(t, client.SnoozeAlarm(ctx, actor))

	snoozed, err := client.GetAlarm(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(1), snoozed.GetSnoozes())

	st, err = client.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, "idle", st.GetState())
	require.Equal(t, []uint32{3}, st.GetStoredIds())

	_, err = client.SetTime(ctx, actor, startUnix+3600)
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	deleted, err := client.DeleteAlarm(ctx, actor, 3)
	require.NoError(t, err)
	require.True(t, deleted)

	tm, err := client.SyncTime(ctx, actor)
	require.NoError(t, err)
	require.Equal(t, startUnix, tm.GetUnixTime())

	_, err = client.GetAlarm(ctx, 3)
	require.Equal(t, codes.NotFound, status.Code(err))
}
