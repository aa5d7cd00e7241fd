//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	pb "github.com/oshokin/light-alarm/internal/pb/v1"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestClient_NilActor asserts that mutations without an actor are rejected before any call.
func TestClient_NilActor(t *testing.T) {
	t.Parallel()

	c := new(Client)
	ctx := context.Background()

	_, err := c.CreateAlarm(ctx, nil, new(pb.CreateAlarmRequest))
	require.ErrorIs(t, err, errActorRequired)

	_, err = c.DeleteAlarm(ctx, nil, 2)
	require.ErrorIs(t, err, errActorRequired)

	require.ErrorIs(t, c.StopAlarm(ctx, nil), errActorRequired)
	require.ErrorIs(t, c.SnoozeAlarm(ctx, nil), errActorRequired)
	require.ErrorIs(t, c.ClearAlarms(ctx, nil), errActorRequired)

	_, err = c.SetTime(ctx, nil, 0)
	require.ErrorIs(t, err, errActorRequired)
}
