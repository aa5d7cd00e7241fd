package transition

import (
	"context"
	"time"

	"github.com/oshokin/light-alarm/internal/bulb"
	"github.com/oshokin/light-alarm/internal/logger"
)

// Handle identifies a running transition. Zero means "none".
type Handle uint64

// running is the bookkeeping of one transition.
type running struct {
	// handle identifies the transition.
	handle Handle
	// params describes the effect.
	params bulb.Transition
	// apply pushes values to the bulb.
	apply bulb.ApplyFunc
	// startedAt is when the start value was applied.
	startedAt time.Time
	// step is the last applied step.
	step int
}

// Engine owns every running transition. It is not safe for concurrent use;
// the host loop serializes access.
type Engine struct {
	// now returns the current time.
	now func() time.Time
	// items are the running transitions in start order.
	items []*running
	// last is the handle of the most recently started transition.
	last Handle
	// next is the handle assigned to the next transition.
	next Handle
}

// NewEngine creates an engine reading time from now, or time.Now when nil.
func NewEngine(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}

	return &Engine{
		now:  now,
		next: 1,
	}
}

// Start applies the start value and schedules the remaining steps.
func (e *Engine) Start(ctx context.Context, t bulb.Transition, apply bulb.ApplyFunc) error {
	if err := apply(ctx, t.StartValue); err != nil {
		return err
	}

	item := &running{
		handle:    e.next,
		params:    t,
		apply:     apply,
		startedAt: e.now(),
	}

	e.next++
	e.last = item.handle
	e.items = append(e.items, item)

	logger.DebugKV(ctx, "Transition started",
		"handle", item.handle,
		"field", t.Field,
		"start_value", t.StartValue,
		"end_value", t.EndValue,
		"steps", t.Steps(),
	)

	return nil
}

// Current returns the handle of the most recently started transition.
func (e *Engine) Current() Handle {
	return e.last
}

// Cancel stops one transition. It reports whether the handle was running.
func (e *Engine) Cancel(h Handle) bool {
	for i, item := range e.items {
		if item.handle == h {
			e.items = append(e.items[:i], e.items[i+1:]...)

			return true
		}
	}

	return false
}

// CancelAll stops every running transition.
func (e *Engine) CancelAll() {
	e.items = nil
}

// Len returns the number of running transitions.
func (e *Engine) Len() int {
	return len(e.items)
}

// Tick applies the value due for every transition and drops finished ones.
func (e *Engine) Tick(ctx context.Context) {
	now := e.now()
	kept := e.items[:0]

	for _, item := range e.items {
		steps := item.params.Steps()
		due := steps

		if item.params.Period > 0 {
			due = min(int(now.Sub(item.startedAt)/item.params.Period), steps)
		}

		if due > item.step {
			item.step = due

			if err := item.apply(ctx, item.params.ValueAt(due)); err != nil {
				logger.WarnKV(ctx, "Transition step failed", "handle", item.handle, "error", err)
			}
		}

		if item.step < steps {
			kept = append(kept, item)
		}
	}

	clear(e.items[len(kept):])
	e.items = kept
}
