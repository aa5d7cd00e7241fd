package alarm

import "errors"

var (
	// ErrValidation is returned when a creation request is missing or malformed.
	ErrValidation = errors.New("invalid alarm")

	// ErrDevice is returned when the alarm's bulb cannot be addressed.
	ErrDevice = errors.New("bulb unavailable")

	// ErrSnoozeLimit is returned when an alarm was already snoozed MaxSnoozes times.
	ErrSnoozeLimit = errors.New("you already snoozed three times")
)
