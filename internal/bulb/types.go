package bulb

import (
	"fmt"
	"time"
)

// ID identifies one bulb group on the radio. It is a plain value: alarms copy
// it instead of referencing the registry entry it was resolved from.
type ID struct {
	// DeviceID is the 16-bit address of the emulated remote.
	DeviceID uint16 `json:"device_id" yaml:"device_id"`
	// GroupID is the group on the remote, 0 meaning all groups.
	GroupID uint8 `json:"group_id" yaml:"group_id"`
	// RemoteType is the protocol variant, see LookupRemote.
	RemoteType string `json:"remote_type" yaml:"remote_type"`
}

// String renders the id the way milight hubs print it.
func (id ID) String() string {
	return fmt.Sprintf("0x%04X/%s/%d", id.DeviceID, id.RemoteType, id.GroupID)
}

// Transition describes a timed change of one state field.
type Transition struct {
	// Field is the state field name, for example "brightness".
	Field string
	// StartValue is applied first.
	StartValue uint16
	// EndValue is reached when Duration elapses.
	EndValue uint16
	// Duration is the visible length of the effect.
	Duration time.Duration
	// Period is the delay between two intermediate values.
	Period time.Duration
}

// Steps returns how many intermediate values the transition emits after the start value.
func (t Transition) Steps() int {
	if t.Duration <= 0 || t.Period <= 0 {
		return 1
	}

	steps := int(t.Duration / t.Period)
	if t.Duration%t.Period != 0 {
		steps++
	}

	return max(steps, 1)
}

// ValueAt interpolates the field value after the given number of steps.
func (t Transition) ValueAt(step int) uint16 {
	steps := t.Steps()
	if step >= steps {
		return t.EndValue
	}

	if step <= 0 {
		return t.StartValue
	}

	delta := int64(t.EndValue) - int64(t.StartValue)

	return uint16(int64(t.StartValue) + delta*int64(step)/int64(steps))
}

// Status values understood by milight hubs.
const (
	StatusOn  = "ON"
	StatusOff = "OFF"
)
