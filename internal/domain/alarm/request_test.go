package alarm

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/light-alarm/internal/bulb"
)

func ptr[T any](v T) *T {
	return &v
}

// validRequest returns a request that builds successfully at now.
func validRequest(now uint32) *CreateRequest {
	return &CreateRequest{
		Name:       "morning",
		Alias:      "bedroom",
		UTCTime:    ptr(ToUnix(now) + 60),
		Field:      "brightness",
		StartValue: ptr[uint16](0),
		EndValue:   ptr[uint16](255),
		Duration:   ptr[uint32](600),
		RepeatTime: 86_400,
		Init:       map[string]any{"status": "ON", "hue": 40},
	}
}

// TestCreateRequest_Build checks the alarm built from a valid request.
func TestCreateRequest_Build(t *testing.T) {
	t.Parallel()

	const now uint32 = 10_000

	target := bulb.ID{DeviceID: 0xBEEF, GroupID: 2, RemoteType: "rgb_cct"}

	a, err := validRequest(now).Build(5, target, now)
	require.NoError(t, err)
	require.Equal(t, uint32(5), a.ID)
	require.Equal(t, now+60, a.TriggerAt)
	require.Equal(t, uint32(86_400), a.RepeatInterval)
	require.Equal(t, target, a.Bulb)
	require.Equal(t, FieldBrightness, a.Field)
	require.Equal(t, map[string]any{"status": "ON", "hue": float64(40)}, a.Init)
	require.Zero(t, a.Snoozes)
}

// TestCreateRequest_BuildRejects checks every validation failure.
func TestCreateRequest_BuildRejects(t *testing.T) {
	t.Parallel()

	const now uint32 = 10_000

	tests := []struct {
		name   string
		mutate func(r *CreateRequest)
	}{
		{name: "missing field", mutate: func(r *CreateRequest) { r.Field = "" }},
		{name: "missing start", mutate: func(r *CreateRequest) { r.StartValue = nil }},
		{name: "missing end", mutate: func(r *CreateRequest) { r.EndValue = nil }},
		{name: "missing duration", mutate: func(r *CreateRequest) { r.Duration = nil }},
		{name: "missing alias", mutate: func(r *CreateRequest) { r.Alias = "" }},
		{name: "missing time", mutate: func(r *CreateRequest) { r.UTCTime = nil }},
		{name: "before 2000", mutate: func(r *CreateRequest) { r.UTCTime = ptr[int64](1_000) }},
		{name: "in the past", mutate: func(r *CreateRequest) { r.UTCTime = ptr(ToUnix(now) - 1) }},
		{name: "after the epoch", mutate: func(r *CreateRequest) { r.UTCTime = ptr(ToUnix(now) + 100 + 1<<32) }},
		{name: "relative past the epoch", mutate: func(r *CreateRequest) {
			r.UTCTime = nil
			r.Time = "+1200000:00:00"
		}},
		{name: "repeat past the epoch", mutate: func(r *CreateRequest) { r.UTCTime = ptr(MaxUnix - 10) }},
		{name: "duration over repeat", mutate: func(r *CreateRequest) { r.Duration = ptr[uint32](86_401) }},
		{name: "nested transition", mutate: func(r *CreateRequest) { r.Init["transition"] = 5 }},
		{name: "nested duration", mutate: func(r *CreateRequest) { r.Init["duration"] = 5 }},
		{name: "bad init value", mutate: func(r *CreateRequest) { r.Init["hue"] = 400 }},
		{name: "unknown field", mutate: func(r *CreateRequest) { r.Field = "status" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := validRequest(now)
			tt.mutate(r)

			a, err := r.Build(1, bulb.ID{}, now)
			require.ErrorIs(t, err, ErrValidation)
			require.Nil(t, a)
		})
	}
}

// TestCreateRequest_DurationEqualToRepeat checks the inclusive bound.
func TestCreateRequest_DurationEqualToRepeat(t *testing.T) {
	t.Parallel()

	r := validRequest(0)
	r.RepeatTime = 600

	_, err := r.Build(1, bulb.ID{}, 0)
	require.NoError(t, err)
}

// TestCreateRequest_LastSecond checks that the final epoch second is accepted
// for a one-shot alarm.
func TestCreateRequest_LastSecond(t *testing.T) {
	t.Parallel()

	r := validRequest(0)
	r.UTCTime = ptr(MaxUnix)
	r.RepeatTime = 0

	a, err := r.Build(1, bulb.ID{}, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(math.MaxUint32), a.TriggerAt)
}

// TestCreateRequest_TriggerUnix checks the accepted time formats.
func TestCreateRequest_TriggerUnix(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC).Unix()

	got, err := (&CreateRequest{Time: "+01:02:03"}).TriggerUnix(now)
	require.NoError(t, err)
	require.Equal(t, now+3723, got)

	got, err = (&CreateRequest{Date: "2025-03-02", Time: "06:30:00"}).TriggerUnix(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 3, 2, 6, 30, 0, 0, time.UTC).Unix(), got)

	for _, r := range []*CreateRequest{
		{Time: "06:30:00"},
		{Date: "2025-13-01", Time: "06:30:00"},
		{Date: "2025-03-02", Time: "24:00:00"},
		{Time: "+1:2"},
		{Time: "+aa:00:00"},
		{},
	} {
		_, err = r.TriggerUnix(now)
		require.ErrorIs(t, err, ErrValidation, "%+v", r)
	}
}
