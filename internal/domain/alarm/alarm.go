package alarm

import (
	"context"
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/oshokin/light-alarm/internal/bulb"
)

const (
	// SnoozeWindow is how far a snoozed alarm is pushed back, in seconds.
	SnoozeWindow uint32 = 300

	// MaxSnoozes is how many times one activation chain may be snoozed.
	MaxSnoozes uint8 = 3

	// TransitionSlices is the number of steps a transition is split into.
	TransitionSlices = 30
)

// Alarm describes one scheduled lighting effect.
type Alarm struct {
	// ID is unique among queued and persisted alarms.
	ID uint32
	// Name is a free-form display name.
	Name string
	// Alias is the bulb alias the alarm was created for.
	Alias string
	// TriggerAt is when the effect starts, in epoch-2000 seconds.
	TriggerAt uint32
	// RepeatInterval is the repeat interval in seconds, 0 for one-shot alarms.
	RepeatInterval uint32
	// Duration is the length of the transition in seconds.
	Duration uint32
	// AutoTurnOff is the delay in seconds after the effect before the bulb is
	// switched off, 0 when disabled.
	AutoTurnOff uint32
	// Bulb is a copy of the target bulb identity.
	Bulb bulb.ID
	// Field is the transitioned state field.
	Field Field
	// StartValue is the field value when the effect starts.
	StartValue uint16
	// EndValue is the field value when the effect ends.
	EndValue uint16
	// Init is an optional state document applied before the transition.
	Init map[string]any
	// Snoozes counts how often this activation chain was snoozed.
	Snoozes uint8
}

// HasRepeat reports whether the alarm re-arms itself after firing.
func (a *Alarm) HasRepeat() bool {
	return a.RepeatInterval > 0
}

// EndsAt returns when the visible effect is over, in epoch-2000 seconds.
func (a *Alarm) EndsAt() uint32 {
	return a.TriggerAt + a.Duration
}

// Clone returns a deep copy of the alarm.
func (a *Alarm) Clone() *Alarm {
	if a == nil {
		return nil
	}

	cloned := *a
	cloned.Init = cloneDocument(a.Init)

	return &cloned
}

// Trigger starts the effect: the bulb is switched on, the initial state is
// applied once and the timed transition is handed to the transition engine.
func (a *Alarm) Trigger(ctx context.Context, bulbs bulb.Controller) error {
	remote, ok := bulb.LookupRemote(a.Bulb.RemoteType)
	if !ok {
		return fmt.Errorf("%w: %w: %q", ErrDevice, bulb.ErrUnknownRemote, a.Bulb.RemoteType)
	}

	bulbs.Prepare(ctx, remote, a.Bulb.DeviceID, a.Bulb.GroupID)

	if err := bulbs.SetPower(ctx, true); err != nil {
		return fmt.Errorf("%w: power on: %w", ErrDevice, err)
	}

	if len(a.Init) > 0 {
		if err := bulbs.ApplyState(ctx, cloneDocument(a.Init)); err != nil {
			return fmt.Errorf("%w: apply initial state: %w", ErrDevice, err)
		}
	}

	if err := bulbs.StartTransition(ctx, a.Transition()); err != nil {
		return fmt.Errorf("start transition: %w", err)
	}

	return nil
}

// Transition returns the timed effect of the alarm.
func (a *Alarm) Transition() bulb.Transition {
	duration := time.Duration(a.Duration) * time.Second

	return bulb.Transition{
		Field:      a.Field.String(),
		StartValue: a.StartValue,
		EndValue:   a.EndValue,
		Duration:   duration,
		Period:     duration / TransitionSlices,
	}
}

// Snooze freezes the bulb at the start value and returns a successor that
// fires SnoozeWindow seconds after now under newID. The successor neither
// repeats nor turns the bulb off automatically.
func (a *Alarm) Snooze(ctx context.Context, newID, now uint32, bulbs bulb.Controller) (*Alarm, error) {
	if a.Snoozes >= MaxSnoozes {
		return nil, ErrSnoozeLimit
	}

	at, ok := Advance(now, uint64(SnoozeWindow))
	if !ok {
		return nil, fmt.Errorf("%w: snooze runs past %s", ErrValidation, FormatTime(math.MaxUint32))
	}

	remote, ok := bulb.LookupRemote(a.Bulb.RemoteType)
	if !ok {
		return nil, fmt.Errorf("%w: %w: %q", ErrDevice, bulb.ErrUnknownRemote, a.Bulb.RemoteType)
	}

	bulbs.Prepare(ctx, remote, a.Bulb.DeviceID, a.Bulb.GroupID)

	if err := bulbs.ApplyState(ctx, map[string]any{a.Field.String(): a.StartValue}); err != nil {
		return nil, fmt.Errorf("%w: freeze effect: %w", ErrDevice, err)
	}

	snoozed := a.Clone()
	snoozed.ID = newID
	snoozed.TriggerAt = at
	snoozed.RepeatInterval = 0
	snoozed.AutoTurnOff = 0
	snoozed.Snoozes = a.Snoozes + 1

	return snoozed, nil
}

// Repeat returns the next occurrence of a repeating alarm, or nil when the
// alarm does not repeat or the next occurrence is past the end of the epoch.
func (a *Alarm) Repeat() *Alarm {
	if !a.HasRepeat() {
		return nil
	}

	at, ok := Advance(a.TriggerAt, uint64(a.RepeatInterval))
	if !ok {
		return nil
	}

	next := a.Clone()
	next.TriggerAt = at
	next.Snoozes = 0

	return next
}

// normalizeDocument converts a state document to plain JSON values
// (float64 numbers, nested maps and slices) and copies it.
func normalizeDocument(doc map[string]any) (map[string]any, error) {
	if doc == nil {
		return nil, nil //nolint:nilnil // Absent document is valid.
	}

	s, err := structpb.NewStruct(doc)
	if err != nil {
		return nil, err
	}

	return s.AsMap(), nil
}

// cloneDocument deep-copies a normalized document.
func cloneDocument(doc map[string]any) map[string]any {
	cloned, err := normalizeDocument(doc)
	if err != nil {
		return nil
	}

	return cloned
}
