package scheduler

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
)

// TestController_EndToEnd fires a one-shot alarm and lets it finish.
func TestController_EndToEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	a, err := h.ctl.CreateAlarm(ctx, request(10, 5, 0, 0))
	require.NoError(t, err)
	require.Equal(t, FirstID, a.ID)
	require.Equal(t, bedroom, a.Bulb)

	h.tickAt(9 * time.Second)
	require.Equal(t, StateIdle, h.ctl.Status(ctx).State)

	h.tickAt(10 * time.Second)

	status := h.ctl.Status(ctx)
	require.Equal(t, StateActive, status.State)
	require.Equal(t, a.ID, status.Active.ID)
	require.Equal(t, h.engine.Current(), status.Transition)
	require.NotZero(t, status.Transition)
	require.Equal(t, []string{"prepare 0x0010/rgb_cct/1", "on", "transition brightness"}, h.bulbs.ops)

	h.tickAt(16 * time.Second)

	status = h.ctl.Status(ctx)
	require.Equal(t, StateIdle, status.State)
	require.Nil(t, status.Active)
	require.Zero(t, status.Transition)
	require.Empty(t, h.ctl.Alarms())

	ids, err := h.ctl.StoredIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)
}

// TestController_RepeatSuccessor checks re-arming at fire time and on stop.
func TestController_RepeatSuccessor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	a, err := h.ctl.CreateAlarm(ctx, request(10, 5, 60, 0))
	require.NoError(t, err)

	h.tickAt(10 * time.Second)
	require.Equal(t, StateActive, h.ctl.Status(ctx).State)

	queued := h.ctl.Alarms()
	require.Len(t, queued, 1)
	require.Equal(t, a.ID, queued[0].ID)
	require.Equal(t, epoch(70), queued[0].TriggerAt)

	require.NoError(t, h.ctl.Stop(ctx))
	require.ErrorIs(t, h.ctl.Stop(ctx), ErrNoActiveAlarm)
	require.Zero(t, h.engine.Len())
	require.Len(t, h.ctl.Alarms(), 1)

	ids, err := h.ctl.StoredIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []uint32{a.ID}, ids)
}

// TestController_TriggerFailure checks that a failed activation leaves the
// controller idle and still re-arms a repeating alarm.
func TestController_TriggerFailure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)
	h.bulbs.failPower = true

	_, err := h.ctl.CreateAlarm(ctx, request(10, 5, 60, 0))
	require.NoError(t, err)

	h.tickAt(10 * time.Second)

	status := h.ctl.Status(ctx)
	require.Equal(t, StateIdle, status.State)
	require.Zero(t, status.Transition)
	require.Equal(t, 1, status.Queued)
	require.Equal(t, epoch(70), h.ctl.Alarms()[0].TriggerAt)
}

// TestController_SnoozeLimit snoozes an alarm until the limit is reached.
func TestController_SnoozeLimit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	require.ErrorIs(t, h.ctl.Snooze(ctx), ErrNoActiveAlarm)

	_, err := h.ctl.CreateAlarm(ctx, request(10, 600, 0, 0))
	require.NoError(t, err)

	offset := 10 * time.Second
	h.tickAt(offset)

	for i := 1; i <= int(domain.MaxSnoozes); i++ {
		require.NoError(t, h.ctl.Snooze(ctx))
		require.Equal(t, StateIdle, h.ctl.Status(ctx).State)
		require.Zero(t, h.engine.Len())

		queued := h.ctl.Alarms()
		require.Len(t, queued, 1)
		require.Equal(t, uint8(i), queued[0].Snoozes)
		require.Zero(t, queued[0].RepeatInterval)

		offset += time.Duration(domain.SnoozeWindow) * time.Second
		h.tickAt(offset)
		require.Equal(t, StateActive, h.ctl.Status(ctx).State)
	}

	active := h.ctl.Status(ctx).Active
	require.Equal(t, domain.MaxSnoozes, active.Snoozes)
	require.Equal(t, FirstID+3, active.ID)

	require.ErrorIs(t, h.ctl.Snooze(ctx), domain.ErrSnoozeLimit)
	require.Empty(t, h.ctl.Alarms())
	require.Equal(t, StateActive, h.ctl.Status(ctx).State)
	require.Equal(t, 1, h.engine.Len())
}

// TestController_RepeatPastEpochEnd checks that a repeating alarm fires once
// when its next occurrence does not fit the clock.
func TestController_RepeatPastEpochEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	h.ctl.queue.Add(ctx, stored(FirstID, epoch(5), math.MaxUint32-epoch(5)+1))

	h.tickAt(10 * time.Second)
	require.Equal(t, StateActive, h.ctl.Status(ctx).State)
	require.Equal(t, 1, h.engine.Len())
	require.Empty(t, h.ctl.Alarms())

	ids, err := h.ctl.StoredIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)
}

// TestController_AutoTurnOff checks the turn-off timer.
func TestController_AutoTurnOff(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	_, err := h.ctl.CreateAlarm(ctx, request(10, 5, 0, 20))
	require.NoError(t, err)

	h.tickAt(10 * time.Second)
	h.tickAt(15 * time.Second)

	status := h.ctl.Status(ctx)
	require.Equal(t, StateIdle, status.State)
	require.Equal(t, epoch(35), status.AutoTurnOffAt)
	require.Equal(t, bedroom, *status.AutoTurnOffBulb)

	h.tickAt(34 * time.Second)
	require.NotContains(t, h.bulbs.ops, "off")

	h.tickAt(35 * time.Second)
	require.Equal(t, "off", h.bulbs.ops[len(h.bulbs.ops)-1])
	require.Zero(t, h.ctl.Status(ctx).AutoTurnOffAt)
	require.False(t, h.ctl.CancelAutoTurnOff())
}

// TestController_AutoTurnOffDisarmed checks that cancelling the timer keeps the bulb on.
func TestController_AutoTurnOffDisarmed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	_, err := h.ctl.CreateAlarm(ctx, request(10, 5, 0, 20))
	require.NoError(t, err)

	h.tickAt(10 * time.Second)
	h.tickAt(15 * time.Second)
	require.True(t, h.ctl.CancelAutoTurnOff())

	h.tickAt(40 * time.Second)
	require.NotContains(t, h.bulbs.ops, "off")
}

// TestController_CreateAlarmErrors checks validation and alias failures.
func TestController_CreateAlarmErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	_, err := h.ctl.CreateAlarm(ctx, request(-10, 5, 0, 0))
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.ctl.CreateAlarm(ctx, request(10, 120, 60, 0))
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.ctl.CreateAlarm(ctx, request(10, 5, 4_000_000_000, 0))
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = h.ctl.CreateAlarm(ctx, request(1<<32, 5, 0, 0))
	require.ErrorIs(t, err, domain.ErrValidation)

	r := request(10, 5, 0, 0)
	r.Alias = "garage"
	_, err = h.ctl.CreateAlarm(ctx, r)
	require.ErrorIs(t, err, domain.ErrDevice)

	require.Empty(t, h.ctl.Alarms())
	require.Equal(t, FirstID, h.ctl.Status(ctx).NextID)
}

// TestController_GetAndDelete checks lookups by id.
func TestController_GetAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	a, err := h.ctl.CreateAlarm(ctx, request(100, 5, 0, 0))
	require.NoError(t, err)

	got, err := h.ctl.Alarm(a.ID)
	require.NoError(t, err)
	require.Equal(t, a, got)

	require.True(t, h.ctl.DeleteAlarm(ctx, a.ID))
	require.False(t, h.ctl.DeleteAlarm(ctx, a.ID))

	_, err = h.ctl.Alarm(a.ID)
	require.ErrorIs(t, err, ErrAlarmNotFound)
}

// TestController_SetTime checks that a clock change cannot skip an alarm.
func TestController_SetTime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	_, err := h.ctl.CreateAlarm(ctx, request(100, 5, 0, 0))
	require.NoError(t, err)

	before := h.ctl.Now(ctx)

	err = h.ctl.SetTime(ctx, startUnix+200)
	require.ErrorIs(t, err, ErrClockRejected)
	require.Equal(t, before, h.ctl.Now(ctx))

	for _, unix := range []int64{domain.MaxUnix + 1, domain.Epoch2000Unix - 1} {
		err = h.ctl.SetTime(ctx, unix)
		require.ErrorIs(t, err, domain.ErrValidation)
		require.Equal(t, before, h.ctl.Now(ctx))
	}

	require.NoError(t, h.ctl.SetTime(ctx, startUnix+100))
	require.Equal(t, epoch(100), h.ctl.Now(ctx))
	require.Equal(t, "01/01/2025 00:01:40", h.ctl.FormattedTime(ctx))
}

// TestController_ClearAlarms checks that clearing resets the id counter.
func TestController_ClearAlarms(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := start(t)

	for range 2 {
		_, err := h.ctl.CreateAlarm(ctx, request(100, 5, 0, 0))
		require.NoError(t, err)
	}

	h.ctl.ClearAlarms(ctx)
	require.Empty(t, h.ctl.Alarms())

	ids, err := h.ctl.StoredIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, ids)

	a, err := h.ctl.CreateAlarm(ctx, request(100, 5, 0, 0))
	require.NoError(t, err)
	require.Equal(t, FirstID, a.ID)
}

// TestController_Begin checks reload and id assignment after a restart.
func TestController_Begin(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := newHarness(t, &fakeTimeSource{unix: startUnix + 3600})

	require.NoError(t, h.store.Set(ctx, stored(40, epoch(7200), 0)))
	require.NoError(t, h.store.Set(ctx, stored(12, epoch(-7200), 86400)))

	h.ctl.Begin(ctx)

	require.Equal(t, epoch(3600), h.ctl.Now(ctx))

	queued := h.ctl.Alarms()
	require.Len(t, queued, 2)
	require.Equal(t, uint32(40), queued[0].ID)
	require.Equal(t, uint32(12), queued[1].ID)
	require.Equal(t, epoch(86400-7200), queued[1].TriggerAt)

	a, err := h.ctl.CreateAlarm(ctx, request(7200, 5, 0, 0))
	require.NoError(t, err)
	require.Equal(t, uint32(41), a.ID)
}

// TestController_RefreshTime checks the network time source.
func TestController_RefreshTime(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	h := start(t)
	require.ErrorIs(t, h.ctl.RefreshTime(ctx), ErrTimeUnavailable)

	source := &fakeTimeSource{err: errNoSync}
	h = newHarness(t, source)
	h.ctl.Begin(ctx)
	require.Equal(t, epoch(0), h.ctl.Now(ctx))
	require.ErrorIs(t, h.ctl.RefreshTime(ctx), ErrTimeUnavailable)

	source.err = nil
	source.unix = startUnix + 60
	require.NoError(t, h.ctl.RefreshTime(ctx))
	require.Equal(t, epoch(60), h.ctl.Now(ctx))
}

// TestTimekeeper_Resync checks that the hardware clock is re-read after the
// resync interval and that read failures keep the estimate.
func TestTimekeeper_Resync(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mono := new(fakeMono)
	rtc := &fakeRTC{mono: mono, base: startUnix}
	k := NewTimekeeper(rtc, mono, time.Minute)

	require.Equal(t, epoch(0), k.Now(ctx))

	// The hardware clock drifts ahead of the monotonic counter.
	rtc.base += 5
	mono.elapsed = 30 * time.Second
	require.Equal(t, epoch(30), k.Now(ctx))

	mono.elapsed = 61 * time.Second
	require.Equal(t, epoch(66), k.Now(ctx))

	rtc.err = errNoSync
	mono.elapsed = 200 * time.Second
	require.Equal(t, epoch(205), k.Now(ctx))
}
