package alarm

import (
	"fmt"
	"math"
	"time"
)

// Epoch2000Unix is 2000-01-01T00:00:00Z in unix seconds. Trigger times are
// counted in seconds from that instant.
const Epoch2000Unix int64 = 946684800

// MaxUnix is the last unix second representable in epoch-2000 seconds.
const MaxUnix = Epoch2000Unix + math.MaxUint32

// InRange reports whether unix seconds fit the epoch-2000 clock.
func InRange(unix int64) bool {
	return unix >= Epoch2000Unix && unix <= MaxUnix
}

// Advance adds seconds to an epoch-2000 time. It reports false when the
// result does not fit.
func Advance(t uint32, seconds uint64) (uint32, bool) {
	sum := uint64(t) + seconds
	if sum > math.MaxUint32 {
		return 0, false
	}

	return uint32(sum), true
}

// FromUnix converts unix seconds to epoch-2000 seconds, clamping to the
// representable range.
func FromUnix(unix int64) uint32 {
	switch {
	case unix <= Epoch2000Unix:
		return 0
	case unix >= MaxUnix:
		return math.MaxUint32
	}

	return uint32(unix - Epoch2000Unix)
}

// ToUnix converts epoch-2000 seconds to unix seconds.
func ToUnix(t uint32) int64 {
	return int64(t) + Epoch2000Unix
}

// ToTime converts epoch-2000 seconds to a UTC time.
func ToTime(t uint32) time.Time {
	return time.Unix(ToUnix(t), 0).UTC()
}

// FormatTime renders epoch-2000 seconds as "DD/MM/YYYY hh:mm:ss".
func FormatTime(t uint32) string {
	return ToTime(t).Format("02/01/2006 15:04:05")
}

// FormatSeconds renders a length of time as "%4ud %dh %dm %ds".
func FormatSeconds(seconds uint32) string {
	days := seconds / 86400
	left := seconds % 86400

	return fmt.Sprintf("%4dd %dh %dm %ds", days, left/3600, left%3600/60, left%60)
}
