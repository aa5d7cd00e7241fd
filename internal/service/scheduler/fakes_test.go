package scheduler

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/light-alarm/internal/bulb"
	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	"github.com/oshokin/light-alarm/internal/repository/alarms"
	"github.com/oshokin/light-alarm/internal/transition"
)

// startUnix is 2025-01-01T00:00:00Z.
const startUnix int64 = 1735689600

var (
	errPower  = errors.New("radio busy")
	errNoSync = errors.New("no network")

	bedroom = bulb.ID{DeviceID: 0x10, GroupID: 1, RemoteType: "rgb_cct"}
)

// fakeMono is a manually advanced monotonic counter.
type fakeMono struct {
	elapsed time.Duration
}

func (m *fakeMono) Elapsed() time.Duration {
	return m.elapsed
}

// fakeRTC is a hardware clock that advances with the monotonic counter.
type fakeRTC struct {
	mono *fakeMono
	base int64
	err  error
}

func (r *fakeRTC) Unix() (int64, error) {
	if r.err != nil {
		return 0, r.err
	}

	return r.base + int64(r.mono.elapsed/time.Second), nil
}

func (r *fakeRTC) SetUnix(unix int64) error {
	r.base = unix - int64(r.mono.elapsed/time.Second)

	return nil
}

// fakeTimeSource returns a fixed network time.
type fakeTimeSource struct {
	unix int64
	err  error
}

func (s *fakeTimeSource) FetchTime(context.Context) (int64, error) {
	return s.unix, s.err
}

// fakeBulbs records commands and runs transitions on an engine.
type fakeBulbs struct {
	engine    *transition.Engine
	ops       []string
	failPower bool
}

func (b *fakeBulbs) Prepare(_ context.Context, remote *bulb.Remote, deviceID uint16, groupID uint8) {
	b.ops = append(b.ops, fmt.Sprintf("prepare 0x%04X/%s/%d", deviceID, remote.Name, groupID))
}

func (b *fakeBulbs) SetPower(_ context.Context, on bool) error {
	if b.failPower {
		return errPower
	}

	if on {
		b.ops = append(b.ops, "on")
	} else {
		b.ops = append(b.ops, "off")
	}

	return nil
}

func (b *fakeBulbs) ApplyState(context.Context, map[string]any) error {
	b.ops = append(b.ops, "state")

	return nil
}

func (b *fakeBulbs) StartTransition(ctx context.Context, t bulb.Transition) error {
	b.ops = append(b.ops, "transition "+t.Field)

	return b.engine.Start(ctx, t, func(context.Context, uint16) error { return nil })
}

// harness wires a controller to fakes.
type harness struct {
	ctl     *Controller
	mono    *fakeMono
	rtc     *fakeRTC
	engine  *transition.Engine
	bulbs   *fakeBulbs
	store   *alarms.Store
	backend alarms.Backend
	source  *fakeTimeSource
}

func newRegistry(t *testing.T) *bulb.Registry {
	t.Helper()

	registry, err := bulb.NewRegistry(map[string]bulb.ID{"bedroom": bedroom})
	require.NoError(t, err)

	return registry
}

// newHarness builds a controller without calling Begin. source may be nil.
func newHarness(t *testing.T, source *fakeTimeSource) *harness {
	t.Helper()

	mono := new(fakeMono)
	engine := transition.NewEngine(func() time.Time { return time.Unix(startUnix, 0).Add(mono.elapsed) })
	backend := alarms.NewFileBackend(afero.NewMemMapFs())
	store := alarms.NewStore(backend, newRegistry(t))

	h := &harness{
		mono:    mono,
		rtc:     &fakeRTC{mono: mono, base: startUnix},
		engine:  engine,
		bulbs:   &fakeBulbs{engine: engine},
		store:   store,
		backend: backend,
		source:  source,
	}

	opts := Options{
		Bulbs:       h.bulbs,
		Transitions: engine,
		Store:       store,
		Resolver:    newRegistry(t),
		Clock:       h.rtc,
		Monotonic:   mono,
	}

	if source != nil {
		opts.TimeSource = source
	}

	h.ctl = NewController(opts)

	return h
}

// start builds a controller and calls Begin.
func start(t *testing.T) *harness {
	t.Helper()

	h := newHarness(t, nil)
	h.ctl.Begin(context.Background())

	return h
}

// tickAt advances the monotonic counter to offset from the start and ticks.
func (h *harness) tickAt(offset time.Duration) {
	h.mono.elapsed = offset
	h.ctl.Tick(context.Background())
}

// epoch returns the epoch-2000 time offset seconds after the start.
func epoch(offset int64) uint32 {
	return domain.FromUnix(startUnix + offset)
}

// request returns a create request firing offset seconds after the start.
func request(offset int64, duration, repeat, autoOff uint32) *domain.CreateRequest {
	at := startUnix + offset
	from, to := uint16(0), uint16(255)

	return &domain.CreateRequest{
		Name:        "wake",
		Alias:       "bedroom",
		UTCTime:     &at,
		RepeatTime:  repeat,
		AutoTurnOff: autoOff,
		Field:       "brightness",
		StartValue:  &from,
		EndValue:    &to,
		Duration:    &duration,
	}
}

// stored returns a persisted alarm value.
func stored(id, at, repeat uint32) *domain.Alarm {
	return &domain.Alarm{
		ID:             id,
		Name:           "stored",
		Alias:          "bedroom",
		TriggerAt:      at,
		RepeatInterval: repeat,
		Duration:       30,
		Bulb:           bedroom,
		Field:          domain.FieldHue,
		EndValue:       120,
	}
}
