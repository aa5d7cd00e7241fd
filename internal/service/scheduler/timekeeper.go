package scheduler

import (
	"context"
	"time"

	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	"github.com/oshokin/light-alarm/internal/logger"
)

// DefaultResyncInterval bounds how long the monotonic estimate is trusted
// before the hardware clock is read again.
const DefaultResyncInterval = time.Hour

// HardwareClock is the battery-backed clock of the gateway.
type HardwareClock interface {
	// Unix returns the clock time in unix seconds.
	Unix() (int64, error)
	// SetUnix sets the clock to the given unix seconds.
	SetUnix(unix int64) error
}

// Monotonic is a free-running counter that never jumps.
type Monotonic interface {
	// Elapsed returns the time since an arbitrary fixed origin.
	Elapsed() time.Duration
}

// Timekeeper estimates the current time as the last hardware clock reading
// plus the monotonic time elapsed since that reading.
type Timekeeper struct {
	// rtc is the authoritative clock.
	rtc HardwareClock
	// mono measures time since the last reading.
	mono Monotonic
	// resync is the longest period between two hardware clock readings.
	resync time.Duration
	// offset is the last hardware clock reading in epoch-2000 seconds.
	offset uint32
	// sample is the monotonic time of the last reading.
	sample time.Duration
	// synced is set once the hardware clock was read successfully.
	synced bool
}

// NewTimekeeper creates a timekeeper. A non-positive resync interval selects
// DefaultResyncInterval.
func NewTimekeeper(rtc HardwareClock, mono Monotonic, resync time.Duration) *Timekeeper {
	if resync <= 0 {
		resync = DefaultResyncInterval
	}

	return &Timekeeper{
		rtc:    rtc,
		mono:   mono,
		resync: resync,
	}
}

// Now returns the current time in epoch-2000 seconds.
func (k *Timekeeper) Now(ctx context.Context) uint32 {
	elapsed := k.mono.Elapsed() - k.sample
	if !k.synced || elapsed > k.resync {
		if err := k.Sync(ctx); err == nil {
			return k.offset
		}
	}

	return k.offset + uint32(elapsed/time.Second)
}

// Sync reads the hardware clock. On failure the previous estimate is kept.
func (k *Timekeeper) Sync(ctx context.Context) error {
	unix, err := k.rtc.Unix()
	if err != nil {
		logger.WarnKV(ctx, "Failed to read hardware clock", "error", err)

		return err
	}

	k.offset = domain.FromUnix(unix)
	k.sample = k.mono.Elapsed()
	k.synced = true

	return nil
}

// Set writes the hardware clock and resynchronizes the estimate.
func (k *Timekeeper) Set(ctx context.Context, unix int64) error {
	if err := k.rtc.SetUnix(unix); err != nil {
		return err
	}

	return k.Sync(ctx)
}
