package bulb

import (
	"context"

	"github.com/oshokin/light-alarm/internal/logger"
)

// NullController is used when no radio transport is configured. Commands are
// written to the debug log and transitions still run through the engine, so
// the scheduler behaves exactly as with real hardware.
type NullController struct {
	// engine runs the transitions started through this controller.
	engine Engine
	// target is the bulb selected by the last Prepare call.
	target *ID
}

// NewNullController creates a NullController backed by the given engine.
func NewNullController(engine Engine) *NullController {
	return &NullController{
		engine: engine,
	}
}

// Prepare selects the bulb addressed by the next commands.
func (c *NullController) Prepare(ctx context.Context, remote *Remote, deviceID uint16, groupID uint8) {
	c.target = &ID{
		DeviceID:   deviceID,
		GroupID:    groupID,
		RemoteType: remote.Name,
	}

	logger.DebugKV(ctx, "Bulb prepared", "bulb", c.target.String())
}

// SetPower logs the power command.
func (c *NullController) SetPower(ctx context.Context, on bool) error {
	if c.target == nil {
		return ErrNotPrepared
	}

	logger.DebugKV(ctx, "Bulb power", "bulb", c.target.String(), "on", on)

	return nil
}

// ApplyState logs the state document.
func (c *NullController) ApplyState(ctx context.Context, state map[string]any) error {
	if c.target == nil {
		return ErrNotPrepared
	}

	logger.DebugKV(ctx, "Bulb state", "bulb", c.target.String(), "state", state)

	return nil
}

// StartTransition runs the transition on the engine with a logging applier.
func (c *NullController) StartTransition(ctx context.Context, t Transition) error {
	if c.target == nil {
		return ErrNotPrepared
	}

	target := c.target.String()

	return c.engine.Start(ctx, t, func(ctx context.Context, value uint16) error {
		logger.DebugKV(ctx, "Bulb transition step", "bulb", target, "field", t.Field, "value", value)

		return nil
	})
}
