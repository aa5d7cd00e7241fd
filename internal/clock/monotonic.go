package clock

import "time"

// Monotonic measures elapsed time using the monotonic reading of time.Time.
type Monotonic struct {
	// origin is the instant Elapsed counts from.
	origin time.Time
}

// NewMonotonic creates a counter starting now.
func NewMonotonic() *Monotonic {
	return &Monotonic{
		origin: time.Now(),
	}
}

// Elapsed returns the time since the counter was created.
func (m *Monotonic) Elapsed() time.Duration {
	return time.Since(m.origin)
}
