package scheduler

import "errors"

var (
	// ErrNoActiveAlarm is returned by Snooze and Stop when no alarm is active.
	ErrNoActiveAlarm = errors.New("no active alarm")

	// ErrAlarmNotFound is returned when no queued alarm has the requested id.
	ErrAlarmNotFound = errors.New("alarm not found")

	// ErrClockRejected is returned when setting the clock would skip a pending alarm.
	ErrClockRejected = errors.New("clock change would skip a pending alarm")

	// ErrTimeUnavailable is returned when the network time cannot be fetched.
	ErrTimeUnavailable = errors.New("time source unavailable")
)
