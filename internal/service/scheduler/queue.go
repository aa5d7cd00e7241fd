package scheduler

import (
	"context"
	"errors"

	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	"github.com/oshokin/light-alarm/internal/logger"
	"github.com/oshokin/light-alarm/internal/repository/alarms"
)

// RecordStore is the durable storage behind the queue.
type RecordStore interface {
	Set(ctx context.Context, a *domain.Alarm) error
	Remove(ctx context.Context, id uint32) error
	Get(ctx context.Context, id uint32) (*domain.Alarm, error)
	Summary(ctx context.Context) ([]uint32, error)
	SetSummary(ctx context.Context, ids []uint32) error
	Clear(ctx context.Context) error
}

// Queue is the list of pending alarms ordered by trigger time. Alarms with
// equal trigger times keep their arrival order. Lookups by id scan the list,
// which is fine for the handful of alarms a gateway holds.
//
// Storage failures are logged and never returned: the in-memory list stays
// authoritative and the summary is repaired on the next reload.
type Queue struct {
	// items are the queued alarms, owned exclusively by the queue.
	items []*domain.Alarm
	// store receives every insertion and removal.
	store RecordStore
}

// NewQueue creates an empty queue writing through to store.
func NewQueue(store RecordStore) *Queue {
	return &Queue{
		store: store,
	}
}

// Add inserts the alarm and persists it.
func (q *Queue) Add(ctx context.Context, a *domain.Alarm) {
	q.add(ctx, a, true)
}

// add inserts the alarm after every queued alarm that is not later than it.
// persist is false only for alarms reloaded unchanged from storage.
func (q *Queue) add(ctx context.Context, a *domain.Alarm, persist bool) {
	if a == nil {
		return
	}

	if persist {
		if err := q.store.Set(ctx, a); err != nil {
			logger.ErrorKV(ctx, "Failed to persist alarm", "id", a.ID, "error", err)
		}
	}

	idx := 0
	for idx < len(q.items) && q.items[idx].TriggerAt <= a.TriggerAt {
		idx++
	}

	q.items = append(q.items, nil)
	copy(q.items[idx+1:], q.items[idx:])
	q.items[idx] = a
}

// Remove drops the alarm with the given id and its record.
func (q *Queue) Remove(ctx context.Context, id uint32) bool {
	for i, a := range q.items {
		if a.ID != id {
			continue
		}

		q.items = append(q.items[:i], q.items[i+1:]...)
		q.evict(ctx, id)

		return true
	}

	return false
}

// Shift pops the head and hands it to the caller.
func (q *Queue) Shift(ctx context.Context) *domain.Alarm {
	if len(q.items) == 0 {
		return nil
	}

	head := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	q.evict(ctx, head.ID)

	return head
}

// First returns a copy of the head.
func (q *Queue) First() *domain.Alarm {
	if len(q.items) == 0 {
		return nil
	}

	return q.items[0].Clone()
}

// Get returns a copy of the alarm with the given id.
func (q *Queue) Get(id uint32) *domain.Alarm {
	for _, a := range q.items {
		if a.ID == id {
			return a.Clone()
		}
	}

	return nil
}

// List returns copies of all alarms in trigger order.
func (q *Queue) List() []*domain.Alarm {
	result := make([]*domain.Alarm, 0, len(q.items))
	for _, a := range q.items {
		result = append(result, a.Clone())
	}

	return result
}

// Len returns the number of queued alarms.
func (q *Queue) Len() int {
	return len(q.items)
}

// Clear empties the queue and the store.
func (q *Queue) Clear(ctx context.Context) {
	clear(q.items)
	q.items = nil

	if err := q.store.Clear(ctx); err != nil {
		logger.ErrorKV(ctx, "Failed to clear alarm store", "error", err)
	}
}

// LoadPersistent rebuilds the queue from the store summary. Records that are
// missing, corrupt or reference an unknown bulb are pruned, as are one-shot
// alarms whose time has passed. Repeating alarms in the past are moved to
// their first occurrence after now without replaying missed ones.
// It returns the highest id seen in the summary.
func (q *Queue) LoadPersistent(ctx context.Context, now uint32) uint32 {
	ids, err := q.store.Summary(ctx)
	if err != nil {
		logger.ErrorKV(ctx, "Failed to read alarm summary", "error", err)

		return 0
	}

	ids = q.dedupeSummary(ctx, ids)

	var maxID uint32

	for _, id := range ids {
		maxID = max(maxID, id)

		a, getErr := q.store.Get(ctx, id)
		if getErr != nil {
			q.prune(ctx, id, getErr)

			continue
		}

		switch {
		case a.TriggerAt > now:
			q.add(ctx, a, false)
		case a.HasRepeat():
			previous := a.TriggerAt

			next, ok := CatchUp(a.TriggerAt, a.RepeatInterval, now)
			if !ok {
				logger.InfoKV(ctx, "Dropping repeating alarm past the end of the epoch", "id", a.ID)
				q.evict(ctx, id)

				continue
			}

			a.TriggerAt = next

			logger.InfoKV(ctx, "Fast-forwarded repeating alarm",
				"id", a.ID,
				"previous", domain.FormatTime(previous),
				"next", domain.FormatTime(a.TriggerAt),
			)

			q.add(ctx, a, true)
		default:
			logger.InfoKV(ctx, "Dropping expired alarm", "id", a.ID, "trigger_at", domain.FormatTime(a.TriggerAt))
			q.evict(ctx, id)
		}
	}

	logger.InfoKV(ctx, "Alarms loaded", "stored", len(ids), "queued", len(q.items))

	return maxID
}

// CatchUp returns triggerAt + k*interval for the smallest k such that the
// result is later than now. It reports false when that occurrence does not
// fit in epoch-2000 seconds. interval must be positive.
func CatchUp(triggerAt, interval, now uint32) (uint32, bool) {
	if triggerAt > now {
		return triggerAt, true
	}

	k := uint64(now-triggerAt)/uint64(interval) + 1

	return domain.Advance(triggerAt, k*uint64(interval))
}

// dedupeSummary drops repeated ids from the summary, keeping the first
// occurrence, and rewrites it when anything was dropped.
func (q *Queue) dedupeSummary(ctx context.Context, ids []uint32) []uint32 {
	seen := make(map[uint32]struct{}, len(ids))
	unique := make([]uint32, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			logger.WarnKV(ctx, "Skipping duplicate summary entry", "id", id)

			continue
		}

		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	if len(unique) == len(ids) {
		return ids
	}

	if err := q.store.SetSummary(ctx, unique); err != nil {
		logger.ErrorKV(ctx, "Failed to rewrite alarm summary", "error", err)
	}

	return unique
}

// prune drops an id whose record cannot be loaded.
func (q *Queue) prune(ctx context.Context, id uint32, cause error) {
	switch {
	case errors.Is(cause, alarms.ErrNotFound):
		logger.WarnKV(ctx, "Pruning alarm without record", "id", id)
	case errors.Is(cause, alarms.ErrOrphaned):
		logger.WarnKV(ctx, "Pruning alarm with unknown bulb", "id", id, "error", cause)
	default:
		logger.WarnKV(ctx, "Pruning unreadable alarm", "id", id, "error", cause)
	}

	q.evict(ctx, id)
}

// evict removes the record of the alarm from the store.
func (q *Queue) evict(ctx context.Context, id uint32) {
	if err := q.store.Remove(ctx, id); err != nil {
		logger.ErrorKV(ctx, "Failed to remove alarm record", "id", id, "error", err)
	}
}
