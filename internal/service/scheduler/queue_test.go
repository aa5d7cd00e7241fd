package scheduler

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	"github.com/oshokin/light-alarm/internal/repository/alarms"
)

func newQueue(t *testing.T) (*Queue, *alarms.Store) {
	t.Helper()

	store := alarms.NewStore(alarms.NewFileBackend(afero.NewMemMapFs()), newRegistry(t))

	return NewQueue(store), store
}

func ids(list []*domain.Alarm) []uint32 {
	result := make([]uint32, 0, len(list))
	for _, a := range list {
		result = append(result, a.ID)
	}

	return result
}

// TestQueue_StableOrder checks that equal trigger times keep arrival order.
func TestQueue_StableOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, store := newQueue(t)

	q.Add(ctx, stored(2, 50, 0))
	q.Add(ctx, stored(3, 10, 0))
	q.Add(ctx, stored(4, 50, 0))
	q.Add(ctx, stored(5, 30, 0))
	q.Add(ctx, stored(6, 50, 0))

	require.Equal(t, []uint32{3, 5, 2, 4, 6}, ids(q.List()))

	summary, err := store.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, []uint32{2, 3, 4, 5, 6}, summary)

	head := q.Shift(ctx)
	require.Equal(t, uint32(3), head.ID)
	require.Equal(t, uint32(5), q.First().ID)

	_, err = store.Get(ctx, 3)
	require.ErrorIs(t, err, alarms.ErrNotFound)

	require.True(t, q.Remove(ctx, 4))
	require.False(t, q.Remove(ctx, 4))
	require.Equal(t, []uint32{5, 2, 6}, ids(q.List()))

	summary, err = store.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, []uint32{2, 5, 6}, summary)
}

// TestQueue_FirstIsMinimum checks the head against random operations.
func TestQueue_FirstIsMinimum(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, _ := newQueue(t)
	rnd := rand.New(rand.NewPCG(7, 11))

	var nextID uint32 = 1

	for range 300 {
		if q.Len() > 0 && rnd.IntN(3) == 0 {
			list := q.List()
			q.Remove(ctx, list[rnd.IntN(len(list))].ID)
		} else {
			q.Add(ctx, stored(nextID, rnd.Uint32N(100), 0))
			nextID++
		}

		list := q.List()
		require.Len(t, list, q.Len())

		if len(list) == 0 {
			require.Nil(t, q.First())

			continue
		}

		lowest := list[0].TriggerAt
		for i, a := range list {
			lowest = min(lowest, a.TriggerAt)

			if i > 0 {
				require.LessOrEqual(t, list[i-1].TriggerAt, a.TriggerAt)
			}
		}

		require.Equal(t, lowest, q.First().TriggerAt)
	}
}

// TestQueue_ReturnsCopies checks that callers cannot mutate queued alarms.
func TestQueue_ReturnsCopies(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, _ := newQueue(t)
	q.Add(ctx, stored(2, 10, 0))

	q.First().TriggerAt = 99
	q.Get(2).Name = "changed"
	q.List()[0].Duration = 1

	got := q.Get(2)
	require.Equal(t, uint32(10), got.TriggerAt)
	require.Equal(t, "stored", got.Name)
	require.Equal(t, uint32(30), got.Duration)
	require.Nil(t, q.Get(3))
	require.Nil(t, (&Queue{}).Shift(ctx))
}

// TestCatchUp checks the fast-forward arithmetic.
func TestCatchUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                     string
		triggerAt, interval, now uint32
		want                     uint32
		overflow                 bool
	}{
		{name: "several missed", triggerAt: 100, interval: 60, now: 250, want: 280},
		{name: "exactly now", triggerAt: 100, interval: 60, now: 100, want: 160},
		{name: "on a boundary", triggerAt: 100, interval: 60, now: 220, want: 280},
		{name: "future", triggerAt: 500, interval: 60, now: 250, want: 500},
		{name: "next occurrence past the epoch", triggerAt: 100, interval: 4_000_000_000, now: 4_000_000_100, overflow: true},
		{name: "last representable second", triggerAt: 0, interval: math.MaxUint32, now: 1, want: math.MaxUint32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := CatchUp(tt.triggerAt, tt.interval, tt.now)
			if tt.overflow {
				require.False(t, ok)

				return
			}

			require.True(t, ok)
			require.Equal(t, tt.want, got)
			require.Greater(t, got, tt.now)
		})
	}
}

// TestQueue_LoadPersistent checks reload, catch-up and pruning.
func TestQueue_LoadPersistent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newQueue(t)

	orphan := stored(6, 900, 0)
	orphan.Alias = "garage"

	require.NoError(t, store.Set(ctx, stored(3, 100, 60)))
	require.NoError(t, store.Set(ctx, stored(4, 100, 0)))
	require.NoError(t, store.Set(ctx, stored(5, 1000, 0)))
	require.NoError(t, store.Set(ctx, orphan))
	require.NoError(t, store.SetSummary(ctx, []uint32{3, 4, 5, 6, 9}))

	q := NewQueue(store)
	maxID := q.LoadPersistent(ctx, 250)

	require.Equal(t, uint32(9), maxID)
	require.Equal(t, []uint32{3, 5}, ids(q.List()))
	require.Equal(t, uint32(280), q.First().TriggerAt)

	summary, err := store.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, []uint32{3, 5}, summary)

	rewritten, err := store.Get(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, uint32(280), rewritten.TriggerAt)

	for _, id := range []uint32{4, 6} {
		_, err = store.Get(ctx, id)
		require.ErrorIs(t, err, alarms.ErrNotFound)
	}
}

// TestQueue_LoadPersistentDuplicates checks that a repeated summary entry
// loads its alarm once.
func TestQueue_LoadPersistentDuplicates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newQueue(t)

	require.NoError(t, store.Set(ctx, stored(3, 500, 0)))
	require.NoError(t, store.Set(ctx, stored(5, 100, 60)))
	require.NoError(t, store.SetSummary(ctx, []uint32{3, 5, 3, 5}))

	q := NewQueue(store)
	require.Equal(t, uint32(5), q.LoadPersistent(ctx, 250))
	require.Equal(t, []uint32{5, 3}, ids(q.List()))

	summary, err := store.Summary(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint32{3, 5}, summary)

	q.Remove(ctx, 3)

	summary, err = store.Summary(ctx)
	require.NoError(t, err)
	require.Equal(t, []uint32{5}, summary)
}

// TestQueue_LoadPersistentEpochEnd checks that a repeating alarm whose next
// occurrence does not fit the clock is dropped.
func TestQueue_LoadPersistentEpochEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, store := newQueue(t)

	require.NoError(t, store.Set(ctx, stored(7, 100, math.MaxUint32-50)))
	require.NoError(t, store.SetSummary(ctx, []uint32{7}))

	q := NewQueue(store)
	require.Equal(t, uint32(7), q.LoadPersistent(ctx, 250))
	require.Zero(t, q.Len())

	_, err := store.Get(ctx, 7)
	require.ErrorIs(t, err, alarms.ErrNotFound)
}

// TestQueue_Clear checks that the store is emptied too.
func TestQueue_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	q, store := newQueue(t)

	q.Add(ctx, stored(2, 10, 0))
	q.Add(ctx, stored(3, 20, 0))
	q.Clear(ctx)

	require.Zero(t, q.Len())

	summary, err := store.Summary(ctx)
	require.NoError(t, err)
	require.Empty(t, summary)
}
