package alarm

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/light-alarm/internal/bulb"
)

var errRadio = errors.New("radio down")

// call is one recorded bulb command.
type call struct {
	op    string
	state map[string]any
	tr    bulb.Transition
}

// fakeBulbs records the commands it receives.
type fakeBulbs struct {
	calls      []call
	prepared   bulb.ID
	powerErr   error
	transition error
}

func (f *fakeBulbs) Prepare(_ context.Context, remote *bulb.Remote, deviceID uint16, groupID uint8) {
	f.prepared = bulb.ID{DeviceID: deviceID, GroupID: groupID, RemoteType: remote.Name}
	f.calls = append(f.calls, call{op: "prepare"})
}

func (f *fakeBulbs) SetPower(_ context.Context, on bool) error {
	op := "off"
	if on {
		op = "on"
	}

	f.calls = append(f.calls, call{op: op})

	return f.powerErr
}

func (f *fakeBulbs) ApplyState(_ context.Context, state map[string]any) error {
	f.calls = append(f.calls, call{op: "state", state: state})

	return nil
}

func (f *fakeBulbs) StartTransition(_ context.Context, t bulb.Transition) error {
	f.calls = append(f.calls, call{op: "transition", tr: t})

	return f.transition
}

// sample returns a repeating alarm used across tests.
func sample() *Alarm {
	return &Alarm{
		ID:             7,
		Name:           "wake up",
		Alias:          "bedroom",
		TriggerAt:      1_000,
		RepeatInterval: 86_400,
		Duration:       600,
		AutoTurnOff:    120,
		Bulb:           bulb.ID{DeviceID: 0x1234, GroupID: 1, RemoteType: "rgb_cct"},
		Field:          FieldBrightness,
		StartValue:     0,
		EndValue:       255,
		Init:           map[string]any{"hue": float64(30)},
		Snoozes:        2,
	}
}

// TestAlarm_Trigger checks the command order of an activation.
func TestAlarm_Trigger(t *testing.T) {
	t.Parallel()

	bulbs := new(fakeBulbs)
	a := sample()

	require.NoError(t, a.Trigger(context.Background(), bulbs))
	require.Equal(t, a.Bulb, bulbs.prepared)

	ops := make([]string, 0, len(bulbs.calls))
	for _, c := range bulbs.calls {
		ops = append(ops, c.op)
	}

	require.Equal(t, []string{"prepare", "on", "state", "transition"}, ops)
	require.Equal(t, a.Init, bulbs.calls[2].state)

	tr := bulbs.calls[3].tr
	require.Equal(t, "brightness", tr.Field)
	require.Equal(t, 10*time.Minute, tr.Duration)
	require.Equal(t, 20*time.Second, tr.Period)
	require.Equal(t, TransitionSlices, tr.Steps())
}

// TestAlarm_TriggerFailures checks device and engine failures.
func TestAlarm_TriggerFailures(t *testing.T) {
	t.Parallel()

	a := sample()
	a.Bulb.RemoteType = "unknown"
	require.ErrorIs(t, a.Trigger(context.Background(), new(fakeBulbs)), ErrDevice)

	a = sample()
	require.ErrorIs(t, a.Trigger(context.Background(), &fakeBulbs{powerErr: errRadio}), ErrDevice)

	err := a.Trigger(context.Background(), &fakeBulbs{transition: errRadio})
	require.ErrorIs(t, err, errRadio)
}

// TestAlarm_Repeat checks successor derivation.
func TestAlarm_Repeat(t *testing.T) {
	t.Parallel()

	a := sample()
	next := a.Repeat()

	require.NotNil(t, next)
	require.Equal(t, a.ID, next.ID)
	require.Equal(t, uint32(87_400), next.TriggerAt)
	require.Zero(t, next.Snoozes)
	require.Equal(t, uint8(2), a.Snoozes, "source must not change")

	a.RepeatInterval = 0
	require.Nil(t, a.Repeat())

	a.RepeatInterval = 4_000_000_000
	a.TriggerAt = 300_000_000
	require.Nil(t, a.Repeat(), "successor past the epoch end")
}

// TestAlarm_Snooze checks snoozed successors and the snooze limit.
func TestAlarm_Snooze(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	bulbs := new(fakeBulbs)
	a := sample()

	snoozed, err := a.Snooze(ctx, 42, 5_000, bulbs)
	require.NoError(t, err)
	require.Equal(t, uint32(42), snoozed.ID)
	require.Equal(t, uint32(5_300), snoozed.TriggerAt)
	require.Zero(t, snoozed.RepeatInterval)
	require.Zero(t, snoozed.AutoTurnOff)
	require.Equal(t, uint8(3), snoozed.Snoozes)
	require.Equal(t, a.Duration, snoozed.Duration)
	require.Equal(t, map[string]any{"brightness": uint16(0)}, bulbs.calls[1].state)

	bulbs = new(fakeBulbs)
	again, err := snoozed.Snooze(ctx, 43, 5_300, bulbs)
	require.ErrorIs(t, err, ErrSnoozeLimit)
	require.Nil(t, again)
	require.Empty(t, bulbs.calls)

	a.Bulb.RemoteType = "unknown"
	_, err = a.Snooze(ctx, 44, 0, new(fakeBulbs))
	require.ErrorIs(t, err, ErrDevice)

	bulbs = new(fakeBulbs)
	_, err = sample().Snooze(ctx, 45, math.MaxUint32-10, bulbs)
	require.ErrorIs(t, err, ErrValidation)
	require.Empty(t, bulbs.calls)
}

// TestAlarm_Clone checks that the init document is not shared.
func TestAlarm_Clone(t *testing.T) {
	t.Parallel()

	a := sample()
	c := a.Clone()

	require.Equal(t, a, c)
	require.NotSame(t, a, c)

	c.Init["hue"] = float64(99)
	require.InDelta(t, 30, a.Init["hue"], 0)
	require.Nil(t, (*Alarm)(nil).Clone())
}

// TestRecord_Roundtrip checks that the durable encoding survives JSON.
func TestRecord_Roundtrip(t *testing.T) {
	t.Parallel()

	a := sample()

	data, err := json.Marshal(a.Record())
	require.NoError(t, err)

	var decoded Record
	require.NoError(t, json.Unmarshal(data, &decoded))

	back, err := FromRecord(&decoded, a.Bulb)
	require.NoError(t, err)
	require.Equal(t, a, back)

	decoded.Field = "warmth"
	_, err = FromRecord(&decoded, a.Bulb)
	require.Error(t, err)
}

// TestView checks the display rendering.
func TestView(t *testing.T) {
	t.Parallel()

	a := sample()
	a.TriggerAt = 0

	v := a.View()
	require.Equal(t, "01/01/2000 00:00:00", v.NextTime)
	require.Equal(t, "   1d 0h 0m 0s", v.Repeat)
	require.Equal(t, "   0d 0h 10m 0s", v.Duration)
	require.Equal(t, "0x1234/rgb_cct/1", v.Bulb)
	require.Equal(t, "brightness", v.Field)
}

// TestEpochConversions checks the epoch-2000 helpers.
func TestEpochConversions(t *testing.T) {
	t.Parallel()

	unix := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC).Unix()
	e := FromUnix(unix)

	require.Equal(t, unix, ToUnix(e))
	require.Equal(t, "06/05/2024 07:08:09", FormatTime(e))
	require.Zero(t, FromUnix(0))
	require.Equal(t, uint32(math.MaxUint32), FromUnix(MaxUnix+100))
	require.True(t, InRange(Epoch2000Unix))
	require.True(t, InRange(MaxUnix))
	require.False(t, InRange(MaxUnix+1))
	require.False(t, InRange(Epoch2000Unix-1))

	at, ok := Advance(math.MaxUint32-5, 5)
	require.True(t, ok)
	require.Equal(t, uint32(math.MaxUint32), at)

	_, ok = Advance(math.MaxUint32-5, 6)
	require.False(t, ok)
	require.Equal(t, "   2d 3h 4m 5s", FormatSeconds(2*86400+3*3600+4*60+5))
}

// TestParseField checks name resolution.
func TestParseField(t *testing.T) {
	t.Parallel()

	require.Equal(t, FieldColorTemp, ParseField("COLOR_TEMP"))
	require.Equal(t, FieldUnknown, ParseField("status"))
	require.False(t, FieldUnknown.Valid())
	require.Equal(t, "kelvin", FieldKelvin.String())
}
