package ntp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beevik/ntp"

	"github.com/oshokin/light-alarm/internal/logger"
)

const (
	// DefaultServer is queried when no server is configured.
	DefaultServer = "pool.ntp.org"

	// DefaultAttempts is how many queries are sent before giving up.
	DefaultAttempts = 5

	// DefaultBackoff is the pause between two queries.
	DefaultBackoff = 6 * time.Second

	// DefaultTimeout bounds a single query.
	DefaultTimeout = 1500 * time.Millisecond
)

// ErrNoResponse is returned when every attempt failed.
var ErrNoResponse = errors.New("no valid ntp response")

// Options configures a Source.
type Options struct {
	// Server is the NTP host.
	Server string
	// Attempts is the number of queries, at least one.
	Attempts int
	// Backoff is the pause between queries.
	Backoff time.Duration
	// Timeout bounds a single query.
	Timeout time.Duration
}

// queryFunc sends one NTP query.
type queryFunc func(host string, opts ntp.QueryOptions) (*ntp.Response, error)

// Source fetches the current time from an NTP server.
type Source struct {
	// opts holds the effective settings.
	opts Options
	// query sends one request.
	query queryFunc
	// now returns the local time the clock offset is applied to.
	now func() time.Time
}

// NewSource creates a source, filling unset options with defaults.
func NewSource(opts Options) *Source {
	if opts.Server == "" {
		opts.Server = DefaultServer
	}

	if opts.Attempts <= 0 {
		opts.Attempts = DefaultAttempts
	}

	if opts.Backoff <= 0 {
		opts.Backoff = DefaultBackoff
	}

	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	return &Source{
		opts:  opts,
		query: ntp.QueryWithOptions,
		now:   time.Now,
	}
}

// FetchTime returns the network time in unix seconds. It blocks for at most
// Attempts queries and the pauses between them, or until ctx is done.
func (s *Source) FetchTime(ctx context.Context) (int64, error) {
	var lastErr error

	for attempt := 1; attempt <= s.opts.Attempts; attempt++ {
		resp, err := s.query(s.opts.Server, ntp.QueryOptions{Timeout: s.opts.Timeout})
		if err == nil {
			err = resp.Validate()
		}

		if err == nil {
			unix := s.now().Add(resp.ClockOffset).Unix()

			logger.DebugKV(ctx, "NTP time received",
				"server", s.opts.Server,
				"attempt", attempt,
				"offset", resp.ClockOffset,
			)

			return unix, nil
		}

		lastErr = err
		logger.WarnKV(ctx, "NTP query failed", "server", s.opts.Server, "attempt", attempt, "error", err)

		if attempt == s.opts.Attempts {
			break
		}

		select {
		case <-ctx.Done():
			return 0, fmt.Errorf("%w: %w", ErrNoResponse, ctx.Err())
		case <-time.After(s.opts.Backoff):
		}
	}

	return 0, fmt.Errorf("%w from %s after %d attempts: %w", ErrNoResponse, s.opts.Server, s.opts.Attempts, lastErr)
}
