package alarm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/oshokin/light-alarm/internal/bulb"
)

// CreateRequest holds the parameters of a new alarm as sent by clients.
// The trigger time is given either as UTCTime, as a relative Time "+HH:MM:SS",
// or as an absolute Date "YYYY-MM-DD" with Time "HH:MM:SS" (UTC).
type CreateRequest struct {
	Name        string         `json:"name,omitempty"          yaml:"name,omitempty"`
	Alias       string         `json:"alias"                   yaml:"alias"`
	UTCTime     *int64         `json:"utc_time,omitempty"      yaml:"utc_time,omitempty"`
	Time        string         `json:"time,omitempty"          yaml:"time,omitempty"`
	Date        string         `json:"date,omitempty"          yaml:"date,omitempty"`
	RepeatTime  uint32         `json:"repeat_time,omitempty"   yaml:"repeat_time,omitempty"`
	AutoTurnOff uint32         `json:"auto_turn_off,omitempty" yaml:"auto_turn_off,omitempty"`
	Field       string         `json:"field"                   yaml:"field"`
	StartValue  *uint16        `json:"start_value"             yaml:"start_value"`
	EndValue    *uint16        `json:"end_value"               yaml:"end_value"`
	Duration    *uint32        `json:"duration"                yaml:"duration"`
	Init        map[string]any `json:"init,omitempty"          yaml:"init,omitempty"`
}

// nestedTransitionKeys are keys that would turn the initial state into a
// transition of its own.
//
//nolint:gochecknoglobals // Static key list.
var nestedTransitionKeys = []string{"transition", "duration"}

// TriggerUnix resolves the requested trigger time to unix seconds.
func (r *CreateRequest) TriggerUnix(nowUnix int64) (int64, error) {
	switch {
	case r.UTCTime != nil:
		return *r.UTCTime, nil
	case strings.HasPrefix(r.Time, "+"):
		offset, err := parseClock(strings.TrimPrefix(r.Time, "+"), false)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid relative time %q", ErrValidation, r.Time)
		}

		return nowUnix + int64(offset/time.Second), nil
	case r.Time != "":
		if r.Date == "" {
			return 0, fmt.Errorf("%w: no date given", ErrValidation)
		}

		day, err := time.ParseInLocation(time.DateOnly, r.Date, time.UTC)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid date %q", ErrValidation, r.Date)
		}

		offset, err := parseClock(r.Time, true)
		if err != nil {
			return 0, fmt.Errorf("%w: invalid time %q", ErrValidation, r.Time)
		}

		return day.Add(offset).Unix(), nil
	default:
		return 0, fmt.Errorf("%w: must specify alarm time", ErrValidation)
	}
}

// Build validates the request and creates the alarm. now is the current time
// in epoch-2000 seconds; target is the resolved bulb of r.Alias.
//
//nolint:cyclop // Validation is a flat list of checks.
func (r *CreateRequest) Build(id uint32, target bulb.ID, now uint32) (*Alarm, error) {
	if r.Field == "" || r.StartValue == nil || r.EndValue == nil || r.Duration == nil {
		return nil, fmt.Errorf(
			"%w: must specify transition parameters: field, end_value, start_value, duration",
			ErrValidation,
		)
	}

	if r.Alias == "" {
		return nil, fmt.Errorf("%w: alias is required", ErrValidation)
	}

	triggerUnix, err := r.TriggerUnix(ToUnix(now))
	if err != nil {
		return nil, err
	}

	if triggerUnix < Epoch2000Unix {
		return nil, fmt.Errorf("%w: must specify alarm time", ErrValidation)
	}

	if triggerUnix > MaxUnix {
		return nil, fmt.Errorf("%w: alarm time is after %s", ErrValidation, FormatTime(math.MaxUint32))
	}

	triggerAt := FromUnix(triggerUnix)
	if triggerAt < now {
		return nil, fmt.Errorf("%w: alarm time is in the past", ErrValidation)
	}

	if r.RepeatTime > 0 {
		if *r.Duration > r.RepeatTime {
			return nil, fmt.Errorf("%w: duration is longer than the repeat time", ErrValidation)
		}

		if _, ok := Advance(triggerAt, uint64(r.RepeatTime)); !ok {
			return nil, fmt.Errorf("%w: repeat time runs past %s", ErrValidation, FormatTime(math.MaxUint32))
		}
	}

	for _, key := range nestedTransitionKeys {
		if _, ok := r.Init[key]; ok {
			return nil, fmt.Errorf("%w: alarm init cannot be a transition", ErrValidation)
		}
	}

	init, err := normalizeDocument(r.Init)
	if err != nil {
		return nil, fmt.Errorf("%w: init: %w", ErrValidation, err)
	}

	if err = bulb.ValidateState(init); err != nil {
		return nil, fmt.Errorf("%w: init: %w", ErrValidation, err)
	}

	field := ParseField(r.Field)
	if !field.Valid() {
		return nil, fmt.Errorf("%w: unknown transition field: %s", ErrValidation, r.Field)
	}

	return &Alarm{
		ID:             id,
		Name:           r.Name,
		Alias:          r.Alias,
		TriggerAt:      triggerAt,
		RepeatInterval: r.RepeatTime,
		Duration:       *r.Duration,
		AutoTurnOff:    r.AutoTurnOff,
		Bulb:           target,
		Field:          field,
		StartValue:     *r.StartValue,
		EndValue:       *r.EndValue,
		Init:           init,
	}, nil
}

// parseClock parses "HH:MM:SS". Wall-clock mode limits hours to a day.
func parseClock(s string, wallClock bool) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("expected HH:MM:SS, got %q", s)
	}

	values := make([]int, len(parts))

	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v < 0 {
			return 0, fmt.Errorf("bad component %q", part)
		}

		values[i] = v
	}

	hours, minutes, seconds := values[0], values[1], values[2]
	if minutes >= 60 || seconds >= 60 || (wallClock && hours >= 24) || hours > math.MaxUint32/3600 {
		return 0, fmt.Errorf("out of range %q", s)
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second, nil
}
