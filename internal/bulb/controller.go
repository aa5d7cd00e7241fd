package bulb

import "context"

// Controller drives bulbs over the radio. Prepare selects the target of the
// following calls; all calls are synchronous.
type Controller interface {
	// Prepare selects the bulb addressed by the next commands.
	Prepare(ctx context.Context, remote *Remote, deviceID uint16, groupID uint8)

	// SetPower turns the prepared bulb on or off.
	SetPower(ctx context.Context, on bool) error

	// ApplyState applies a partial state document to the prepared bulb.
	ApplyState(ctx context.Context, state map[string]any) error

	// StartTransition asks the transition engine to run a timed effect on the
	// prepared bulb. A nil error means the transition was accepted.
	StartTransition(ctx context.Context, t Transition) error
}

// ApplyFunc pushes one intermediate transition value to a bulb.
type ApplyFunc func(ctx context.Context, value uint16) error

// Engine runs timed transitions on behalf of a Controller.
type Engine interface {
	Start(ctx context.Context, t Transition, apply ApplyFunc) error
}
