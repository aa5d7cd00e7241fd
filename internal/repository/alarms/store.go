package alarms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/oshokin/light-alarm/internal/bulb"
	domain "github.com/oshokin/light-alarm/internal/domain/alarm"
	"github.com/oshokin/light-alarm/internal/logger"
)

// SummaryName is the backend entry holding the live alarm ids.
const SummaryName = "summary"

// Resolver maps a bulb alias to the bulb it currently addresses.
type Resolver interface {
	Resolve(alias string) (bulb.ID, bool)
}

// Store persists alarms as JSON records plus a summary of live ids.
// It is not safe for concurrent use; the scheduler owns it exclusively.
type Store struct {
	// backend holds the raw records.
	backend Backend
	// resolver re-resolves bulb aliases of loaded records.
	resolver Resolver
}

// NewStore creates a store on top of backend.
func NewStore(backend Backend, resolver Resolver) *Store {
	return &Store{
		backend:  backend,
		resolver: resolver,
	}
}

// RecordName returns the backend entry name of the alarm with the given id.
func RecordName(id uint32) string {
	return strconv.FormatUint(uint64(id), 16)
}

// Set writes the record of the alarm and adds its id to the summary.
func (s *Store) Set(ctx context.Context, a *domain.Alarm) error {
	data, err := json.Marshal(a.Record())
	if err != nil {
		return fmt.Errorf("encode alarm %d: %w", a.ID, err)
	}

	if err = s.backend.Write(ctx, RecordName(a.ID), data); err != nil {
		return fmt.Errorf("write alarm %d: %w", a.ID, err)
	}

	logger.DebugKV(ctx, "Alarm record written", "id", a.ID)

	ids, err := s.Summary(ctx)
	if err != nil {
		return err
	}

	if slices.Contains(ids, a.ID) {
		return nil
	}

	return s.SetSummary(ctx, append(ids, a.ID))
}

// Remove deletes the record of the alarm and drops its id from the summary.
func (s *Store) Remove(ctx context.Context, id uint32) error {
	if err := s.backend.Delete(ctx, RecordName(id)); err != nil {
		return fmt.Errorf("delete alarm %d: %w", id, err)
	}

	ids, err := s.Summary(ctx)
	if err != nil {
		return err
	}

	idx := slices.Index(ids, id)
	if idx < 0 {
		return nil
	}

	logger.DebugKV(ctx, "Alarm record removed", "id", id)

	return s.SetSummary(ctx, slices.Delete(ids, idx, idx+1))
}

// Get loads the alarm with the given id. The bulb identity is taken from the
// resolver, so a record follows edits of its alias.
func (s *Store) Get(ctx context.Context, id uint32) (*domain.Alarm, error) {
	data, err := s.backend.Read(ctx, RecordName(id))
	if err != nil {
		return nil, err
	}

	var record domain.Record
	if err = json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: alarm %d: %w", ErrCorrupt, id, err)
	}

	target, ok := s.resolver.Resolve(record.Alias)
	if !ok {
		return nil, fmt.Errorf("%w: alarm %d: alias %q", ErrOrphaned, id, record.Alias)
	}

	a, err := domain.FromRecord(&record, target)
	if err != nil {
		return nil, fmt.Errorf("%w: alarm %d: %w", ErrCorrupt, id, err)
	}

	return a, nil
}

// Summary returns the live alarm ids in insertion order. A missing summary
// is an empty one; unreadable tokens are skipped.
func (s *Store) Summary(ctx context.Context) ([]uint32, error) {
	data, err := s.backend.Read(ctx, SummaryName)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("read summary: %w", err)
	}

	fields := strings.Fields(string(data))
	ids := make([]uint32, 0, len(fields))

	for _, field := range fields {
		id, parseErr := strconv.ParseUint(field, 10, 32)
		if parseErr != nil {
			logger.WarnKV(ctx, "Skipping malformed summary entry", "entry", field)

			continue
		}

		ids = append(ids, uint32(id))
	}

	return ids, nil
}

// SetSummary replaces the list of live alarm ids.
func (s *Store) SetSummary(ctx context.Context, ids []uint32) error {
	var sb strings.Builder
	for _, id := range ids {
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
		sb.WriteByte(' ')
	}

	if err := s.backend.Write(ctx, SummaryName, []byte(sb.String())); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

// Clear deletes every record listed in the summary and then the summary itself.
func (s *Store) Clear(ctx context.Context) error {
	ids, err := s.Summary(ctx)
	if err != nil {
		return err
	}

	var errs []error

	for _, id := range ids {
		if err = s.backend.Delete(ctx, RecordName(id)); err != nil {
			errs = append(errs, fmt.Errorf("delete alarm %d: %w", id, err))
		}
	}

	if err = s.backend.Delete(ctx, SummaryName); err != nil {
		errs = append(errs, fmt.Errorf("delete summary: %w", err))
	}

	return errors.Join(errs...)
}
