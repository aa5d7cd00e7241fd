package scheduler

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/oshokin/light-alarm/internal/bulb"
	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	"github.com/oshokin/light-alarm/internal/logger"
	"github.com/oshokin/light-alarm/internal/transition"
)

// FirstID is the first id handed out to new alarms. Zero is never used so
// that it cannot be mistaken for "no alarm".
const FirstID uint32 = 2

// State is the state of the controller's single activation slot.
type State uint8

// Controller states.
const (
	StateIdle State = iota
	StateActive
)

// String returns the state name.
func (s State) String() string {
	if s == StateActive {
		return "active"
	}

	return "idle"
}

// Transitions controls the running transition effects.
type Transitions interface {
	CancelAll()
	Cancel(h transition.Handle) bool
	Current() transition.Handle
}

// TimeSource provides network time.
type TimeSource interface {
	// FetchTime returns the current time in unix seconds.
	FetchTime(ctx context.Context) (int64, error)
}

// Resolver maps bulb aliases to bulb identities.
type Resolver interface {
	Resolve(alias string) (bulb.ID, bool)
}

// Options holds the collaborators of a Controller.
type Options struct {
	// Bulbs sends commands to the radio.
	Bulbs bulb.Controller
	// Transitions is the engine running the timed effects.
	Transitions Transitions
	// Store persists queued alarms.
	Store RecordStore
	// Resolver resolves bulb aliases of new alarms.
	Resolver Resolver
	// Clock is the battery-backed clock.
	Clock HardwareClock
	// Monotonic measures elapsed time between clock readings.
	Monotonic Monotonic
	// TimeSource is the optional network time source.
	TimeSource TimeSource
	// ResyncInterval is the longest period between two clock readings.
	ResyncInterval time.Duration
}

// Status is a snapshot of the controller.
type Status struct {
	// State is the activation state.
	State State
	// Now is the current time in epoch-2000 seconds.
	Now uint32
	// Active is a copy of the active alarm, nil when idle.
	Active *domain.Alarm
	// Transition is the handle of the active effect.
	Transition transition.Handle
	// AutoTurnOffAt is when the remembered bulb is switched off, 0 when disarmed.
	AutoTurnOffAt uint32
	// AutoTurnOffBulb is the bulb switched off at AutoTurnOffAt.
	AutoTurnOffBulb *bulb.ID
	// Queued is the number of pending alarms.
	Queued int
	// NextID is the id the next alarm will receive.
	NextID uint32
}

// autoTurnOff is an armed turn-off timer.
type autoTurnOff struct {
	// deadline is when the bulb is switched off, in epoch-2000 seconds.
	deadline uint32
	// target is the bulb to switch off.
	target bulb.ID
}

// Controller drives at most one active alarm at a time.
type Controller struct {
	// bulbs sends commands to the radio.
	bulbs bulb.Controller
	// transitions runs the timed effects.
	transitions Transitions
	// queue holds pending alarms.
	queue *Queue
	// clock estimates the current time.
	clock *Timekeeper
	// timeSource provides network time, may be nil.
	timeSource TimeSource
	// resolver resolves bulb aliases.
	resolver Resolver
	// state is the activation state.
	state State
	// active is the alarm being played, owned by the controller.
	active *domain.Alarm
	// handle identifies the effect of the active alarm.
	handle transition.Handle
	// autoOff is the armed turn-off timer, nil when disarmed.
	autoOff *autoTurnOff
	// nextID is the id of the next created or snoozed alarm.
	nextID uint32
}

// NewController creates an idle controller. Call Begin before ticking it.
func NewController(opts Options) *Controller {
	return &Controller{
		bulbs:       opts.Bulbs,
		transitions: opts.Transitions,
		queue:       NewQueue(opts.Store),
		clock:       NewTimekeeper(opts.Clock, opts.Monotonic, opts.ResyncInterval),
		timeSource:  opts.TimeSource,
		resolver:    opts.Resolver,
		nextID:      FirstID,
	}
}

// Begin reads the hardware clock, corrects it from the network time source
// when one is configured and reloads the persisted alarms.
func (c *Controller) Begin(ctx context.Context) {
	// A failed read is retried by the next Now call.
	_ = c.clock.Sync(ctx)

	if c.timeSource != nil {
		if err := c.RefreshTime(ctx); err != nil {
			logger.WarnKV(ctx, "Initial time synchronization failed", "error", err)
		}
	}

	maxID := c.queue.LoadPersistent(ctx, c.clock.Now(ctx))
	if maxID >= c.nextID {
		c.nextID = maxID + 1
	}

	logger.InfoKV(ctx, "Scheduler started",
		"time", c.FormattedTime(ctx),
		"queued", c.queue.Len(),
		"next_id", c.nextID,
	)
}

// Tick advances the state machine. It never blocks.
func (c *Controller) Tick(ctx context.Context) {
	now := c.clock.Now(ctx)

	if c.autoOff != nil && now >= c.autoOff.deadline {
		target := c.autoOff.target
		c.autoOff = nil
		c.turnOff(ctx, target)
	}

	if c.state == StateActive && now >= c.active.EndsAt() {
		if c.active.AutoTurnOff > 0 {
			c.autoOff = &autoTurnOff{
				deadline: now + c.active.AutoTurnOff,
				target:   c.active.Bulb,
			}

			logger.DebugKV(ctx, "Auto turn-off armed", "id", c.active.ID, "at", domain.FormatTime(c.autoOff.deadline))
		}

		logger.InfoKV(ctx, "Alarm finished", "id", c.active.ID)
		c.setIdle()
	}

	head := c.queue.First()
	if head == nil || head.TriggerAt > now {
		return
	}

	// Only one effect may run system-wide.
	c.transitions.CancelAll()

	fired := c.queue.Shift(ctx)
	c.activate(ctx, fired)

	if next := fired.Repeat(); next != nil {
		c.queue.Add(ctx, next)
	}
}

// activate triggers the alarm and makes it the active one.
func (c *Controller) activate(ctx context.Context, a *domain.Alarm) {
	logger.InfoKV(ctx, "Triggering alarm", "id", a.ID, "name", a.Name, "bulb", a.Bulb.String())

	if err := a.Trigger(ctx, c.bulbs); err != nil {
		logger.ErrorKV(ctx, "Activating alarm failed", "id", a.ID, "error", err)
		c.setIdle()

		return
	}

	c.state = StateActive
	c.active = a
	c.handle = c.transitions.Current()
}

// turnOff switches the bulb off.
func (c *Controller) turnOff(ctx context.Context, target bulb.ID) {
	remote, ok := bulb.LookupRemote(target.RemoteType)
	if !ok {
		logger.WarnKV(ctx, "Auto turn-off skipped", "bulb", target.String(), "error", bulb.ErrUnknownRemote)

		return
	}

	c.bulbs.Prepare(ctx, remote, target.DeviceID, target.GroupID)

	if err := c.bulbs.SetPower(ctx, false); err != nil {
		logger.ErrorKV(ctx, "Auto turn-off failed", "bulb", target.String(), "error", err)

		return
	}

	logger.InfoKV(ctx, "Bulb turned off automatically", "bulb", target.String())
}

// setIdle clears the activation slot.
func (c *Controller) setIdle() {
	c.state = StateIdle
	c.active = nil
	c.handle = 0
}

// Snooze freezes the active effect and re-queues the alarm SnoozeWindow
// seconds from now. The snooze limit is checked before the effect is
// touched, so a refused snooze leaves the alarm playing. Any other failure
// leaves the controller idle.
func (c *Controller) Snooze(ctx context.Context) error {
	if c.state != StateActive {
		return ErrNoActiveAlarm
	}

	if c.active.Snoozes >= domain.MaxSnoozes {
		return domain.ErrSnoozeLimit
	}

	c.transitions.Cancel(c.handle)

	active := c.active
	c.setIdle()
	c.autoOff = nil

	snoozed, err := active.Snooze(ctx, c.nextID, c.clock.Now(ctx), c.bulbs)
	if err != nil {
		return fmt.Errorf("snooze alarm %d: %w", active.ID, err)
	}

	c.nextID++
	c.queue.Add(ctx, snoozed)

	logger.InfoKV(ctx, "Alarm snoozed",
		"id", active.ID,
		"snoozed_id", snoozed.ID,
		"snoozes", snoozed.Snoozes,
		"at", domain.FormatTime(snoozed.TriggerAt),
	)

	return nil
}

// Stop cancels the active effect. A repeat successor queued when the alarm
// fired stays queued.
func (c *Controller) Stop(ctx context.Context) error {
	if c.state != StateActive {
		return ErrNoActiveAlarm
	}

	c.transitions.Cancel(c.handle)

	logger.InfoKV(ctx, "Alarm stopped", "id", c.active.ID)

	c.setIdle()
	c.autoOff = nil

	return nil
}

// CancelAutoTurnOff disarms the turn-off timer and reports whether it was armed.
func (c *Controller) CancelAutoTurnOff() bool {
	armed := c.autoOff != nil
	c.autoOff = nil

	return armed
}

// CreateAlarm validates the request and queues the new alarm.
func (c *Controller) CreateAlarm(ctx context.Context, req *domain.CreateRequest) (*domain.Alarm, error) {
	a, err := req.Build(c.nextID, bulb.ID{}, c.clock.Now(ctx))
	if err != nil {
		return nil, err
	}

	target, ok := c.resolver.Resolve(req.Alias)
	if !ok {
		return nil, fmt.Errorf("%w: unknown bulb alias %q", domain.ErrDevice, req.Alias)
	}

	a.Bulb = target
	c.nextID++
	c.queue.Add(ctx, a)

	logger.InfoKV(ctx, "Alarm created",
		"id", a.ID,
		"name", a.Name,
		"alias", a.Alias,
		"at", domain.FormatTime(a.TriggerAt),
	)

	return a.Clone(), nil
}

// DeleteAlarm removes a queued alarm and reports whether it existed.
func (c *Controller) DeleteAlarm(ctx context.Context, id uint32) bool {
	removed := c.queue.Remove(ctx, id)
	if removed {
		logger.InfoKV(ctx, "Alarm deleted", "id", id)
	}

	return removed
}

// Alarms returns copies of the queued alarms in trigger order.
func (c *Controller) Alarms() []*domain.Alarm {
	return c.queue.List()
}

// Alarm returns a copy of the queued alarm with the given id.
func (c *Controller) Alarm(id uint32) (*domain.Alarm, error) {
	a := c.queue.Get(id)
	if a == nil {
		return nil, fmt.Errorf("%w: %d", ErrAlarmNotFound, id)
	}

	return a, nil
}

// ClearAlarms empties the queue and the store and restarts id assignment.
func (c *Controller) ClearAlarms(ctx context.Context) {
	c.queue.Clear(ctx)
	c.nextID = FirstID

	logger.Info(ctx, "All alarms cleared")
}

// SetTime sets the hardware clock to the given unix seconds unless a pending
// alarm would be skipped by the change.
func (c *Controller) SetTime(ctx context.Context, unix int64) error {
	if !domain.InRange(unix) {
		return fmt.Errorf("%w: time %d is outside %s..%s", domain.ErrValidation, unix,
			domain.FormatTime(0), domain.FormatTime(math.MaxUint32))
	}

	target := domain.FromUnix(unix)

	for _, a := range c.queue.items {
		if a.TriggerAt < target {
			return fmt.Errorf("%w: alarm %d is due at %s", ErrClockRejected, a.ID, domain.FormatTime(a.TriggerAt))
		}
	}

	if err := c.clock.Set(ctx, unix); err != nil {
		return fmt.Errorf("set hardware clock: %w", err)
	}

	logger.InfoKV(ctx, "Clock set", "time", domain.FormatTime(target))

	return nil
}

// RefreshTime sets the clock from the network time source.
func (c *Controller) RefreshTime(ctx context.Context) error {
	if c.timeSource == nil {
		return ErrTimeUnavailable
	}

	unix, err := c.timeSource.FetchTime(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTimeUnavailable, err)
	}

	return c.SetTime(ctx, unix)
}

// Now returns the current time in epoch-2000 seconds.
func (c *Controller) Now(ctx context.Context) uint32 {
	return c.clock.Now(ctx)
}

// FormattedTime returns the current time as "DD/MM/YYYY hh:mm:ss".
func (c *Controller) FormattedTime(ctx context.Context) string {
	return domain.FormatTime(c.clock.Now(ctx))
}

// Status returns a snapshot of the controller.
func (c *Controller) Status(ctx context.Context) Status {
	status := Status{
		State:      c.state,
		Now:        c.clock.Now(ctx),
		Active:     c.active.Clone(),
		Transition: c.handle,
		Queued:     c.queue.Len(),
		NextID:     c.nextID,
	}

	if c.autoOff != nil {
		target := c.autoOff.target
		status.AutoTurnOffAt = c.autoOff.deadline
		status.AutoTurnOffBulb = &target
	}

	return status
}

// StoredIDs returns the ids listed in the store summary.
func (c *Controller) StoredIDs(ctx context.Context) ([]uint32, error) {
	ids, err := c.queue.store.Summary(ctx)
	if err != nil {
		return nil, fmt.Errorf("read summary: %w", err)
	}

	return ids, nil
}
