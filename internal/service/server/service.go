package server

import (
	"context"
	"fmt"
	"sync"
	"time"

	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	"github.com/oshokin/light-alarm/internal/logger"
	"github.com/oshokin/light-alarm/internal/service/scheduler"
)

// ticker advances running transitions.
type ticker interface {
	Tick(ctx context.Context)
}

// service serializes transport calls and the scheduler loop around one
// controller. It is unexported to keep the transport decoupled from the implementation.
type service struct {
	// ctl is the alarm state machine.
	ctl *scheduler.Controller
	// engine runs the bulb transitions.
	engine ticker
	// timeSource provides network time, may be nil.
	timeSource scheduler.TimeSource
	// mu protects ctl and engine.
	mu sync.Mutex
}

// newService wraps a controller that has already been started with Begin.
func newService(ctl *scheduler.Controller, engine ticker, timeSource scheduler.TimeSource) *service {
	return &service{
		ctl:        ctl,
		engine:     engine,
		timeSource: timeSource,
	}
}

// run ticks the engine and the controller until ctx is canceled.
func (s *service) run(ctx context.Context, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.tick(ctx)
		}
	}
}

// tick runs one loop iteration.
func (s *service) tick(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Tick(ctx)
	s.ctl.Tick(ctx)
}

// CreateAlarm queues a new alarm.
func (s *service) CreateAlarm(ctx context.Context, actor *domain.Actor, req *domain.CreateRequest) (*domain.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.ctl.CreateAlarm(withActor(ctx, actor), req)
	if err != nil {
		logger.WarnKV(ctx, "Alarm rejected", "actor", actor.String(), "error", err)

		return nil, err
	}

	return a, nil
}

// GetAlarm returns one queued alarm.
func (s *service) GetAlarm(_ context.Context, id uint32) (*domain.Alarm, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctl.Alarm(id)
}

// ListAlarms returns the queued alarms in trigger order.
func (s *service) ListAlarms(context.Context) []*domain.Alarm {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctl.Alarms()
}

// DeleteAlarm removes one queued alarm.
func (s *service) DeleteAlarm(ctx context.Context, actor *domain.Actor, id uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctl.DeleteAlarm(withActor(ctx, actor), id)
}

// ClearAlarms removes every alarm.
func (s *service) ClearAlarms(ctx context.Context, actor *domain.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctl.ClearAlarms(withActor(ctx, actor))
}

// StopAlarm stops the active alarm.
func (s *service) StopAlarm(ctx context.Context, actor *domain.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctl.Stop(withActor(ctx, actor))
}

// SnoozeAlarm snoozes the active alarm.
func (s *service) SnoozeAlarm(ctx context.Context, actor *domain.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctl.Snooze(withActor(ctx, actor))
}

// CancelAutoTurnOff disarms the turn-off timer.
func (s *service) CancelAutoTurnOff(ctx context.Context, actor *domain.Actor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	armed := s.ctl.CancelAutoTurnOff()

	logger.InfoKV(ctx, "Auto turn-off canceled", "actor", actor.String(), "was_armed", armed)

	return armed
}

// Status returns a scheduler snapshot and the persisted ids.
func (s *service) Status(ctx context.Context) (scheduler.Status, []uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.ctl.StoredIDs(ctx)
	if err != nil {
		logger.WarnKV(ctx, "Failed to read stored alarm ids", "error", err)
	}

	return s.ctl.Status(ctx), stored
}

// Time returns the scheduler time.
func (s *service) Time(ctx context.Context) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctl.Now(ctx)
}

// SetTime sets the scheduler clock.
func (s *service) SetTime(ctx context.Context, actor *domain.Actor, unix int64) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = withActor(ctx, actor)

	if err := s.ctl.SetTime(ctx, unix); err != nil {
		logger.WarnKV(ctx, "Clock change rejected", "error", err)

		return 0, err
	}

	return s.ctl.Now(ctx), nil
}

// SyncTime sets the scheduler clock from network time. The query runs
// without holding the lock so the loop keeps ticking meanwhile.
func (s *service) SyncTime(ctx context.Context, actor *domain.Actor) (uint32, error) {
	if s.timeSource == nil {
		return 0, scheduler.ErrTimeUnavailable
	}

	unix, err := s.timeSource.FetchTime(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", scheduler.ErrTimeUnavailable, err)
	}

	return s.SetTime(ctx, actor, unix)
}

// withActor attaches the actor to the context logger.
func withActor(ctx context.Context, actor *domain.Actor) context.Context {
	return logger.WithKV(ctx, "actor", actor.String())
}
