package alarm

import (
	"fmt"

	"github.com/oshokin/light-alarm/internal/bulb"
)

// Record is the durable encoding of an alarm. Every field round-trips
// unchanged through FromRecord.
type Record struct {
	ID          uint32         `json:"id"`
	Name        string         `json:"name"`
	Alias       string         `json:"alias"`
	NextTime    uint32         `json:"next_time_utc2000"`
	Repeat      uint32         `json:"repeat"`
	Duration    uint32         `json:"duration"`
	AutoTurnOff uint32         `json:"auto_turn_off"`
	StartValue  uint16         `json:"start_value"`
	EndValue    uint16         `json:"end_value"`
	Field       string         `json:"field"`
	Bulb        bulb.ID        `json:"bulb"`
	Init        map[string]any `json:"init,omitempty"`
	Snoozes     uint8          `json:"snoozes,omitempty"`
}

// View is the human readable rendering of an alarm.
type View struct {
	ID          uint32         `json:"id"`
	Name        string         `json:"name"`
	Alias       string         `json:"alias"`
	NextTime    string         `json:"next_time"`
	Repeat      string         `json:"repeat"`
	Duration    string         `json:"duration"`
	AutoTurnOff string         `json:"auto_turn_off"`
	Field       string         `json:"field"`
	StartValue  uint16         `json:"start_value"`
	EndValue    uint16         `json:"end_value"`
	Bulb        string         `json:"bulb"`
	Init        map[string]any `json:"init,omitempty"`
	Snoozes     uint8          `json:"snoozes"`
}

// Record returns the durable encoding of the alarm.
func (a *Alarm) Record() Record {
	return Record{
		ID:          a.ID,
		Name:        a.Name,
		Alias:       a.Alias,
		NextTime:    a.TriggerAt,
		Repeat:      a.RepeatInterval,
		Duration:    a.Duration,
		AutoTurnOff: a.AutoTurnOff,
		StartValue:  a.StartValue,
		EndValue:    a.EndValue,
		Field:       a.Field.String(),
		Bulb:        a.Bulb,
		Init:        cloneDocument(a.Init),
		Snoozes:     a.Snoozes,
	}
}

// View returns the display rendering of the alarm.
func (a *Alarm) View() View {
	return View{
		ID:          a.ID,
		Name:        a.Name,
		Alias:       a.Alias,
		NextTime:    FormatTime(a.TriggerAt),
		Repeat:      FormatSeconds(a.RepeatInterval),
		Duration:    FormatSeconds(a.Duration),
		AutoTurnOff: FormatSeconds(a.AutoTurnOff),
		Field:       a.Field.String(),
		StartValue:  a.StartValue,
		EndValue:    a.EndValue,
		Bulb:        a.Bulb.String(),
		Init:        cloneDocument(a.Init),
		Snoozes:     a.Snoozes,
	}
}

// FromRecord rebuilds an alarm from its durable encoding. The bulb identity
// is the one the alias currently resolves to, so alarms follow alias edits.
func FromRecord(r *Record, target bulb.ID) (*Alarm, error) {
	field := ParseField(r.Field)
	if !field.Valid() {
		return nil, fmt.Errorf("unknown transition field %q", r.Field)
	}

	if r.Snoozes > MaxSnoozes {
		return nil, fmt.Errorf("snooze counter %d exceeds %d", r.Snoozes, MaxSnoozes)
	}

	init, err := normalizeDocument(r.Init)
	if err != nil {
		return nil, fmt.Errorf("decode init document: %w", err)
	}

	return &Alarm{
		ID:             r.ID,
		Name:           r.Name,
		Alias:          r.Alias,
		TriggerAt:      r.NextTime,
		RepeatInterval: r.Repeat,
		Duration:       r.Duration,
		AutoTurnOff:    r.AutoTurnOff,
		Bulb:           target,
		Field:          field,
		StartValue:     r.StartValue,
		EndValue:       r.EndValue,
		Init:           init,
		Snoozes:        r.Snoozes,
	}, nil
}
