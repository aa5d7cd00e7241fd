package bulb

import "errors"

var (
	// ErrUnknownRemote indicates the remote type has no protocol configuration.
	ErrUnknownRemote = errors.New("unknown remote type")

	// ErrNotPrepared indicates a command was sent before Prepare selected a bulb.
	ErrNotPrepared = errors.New("no bulb prepared")

	// ErrInvalidState indicates a state document failed schema validation.
	ErrInvalidState = errors.New("invalid bulb state")

	// ErrNotConnected indicates the radio transport is not connected.
	ErrNotConnected = errors.New("controller not connected")
)
