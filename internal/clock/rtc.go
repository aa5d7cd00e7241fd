package clock

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// filePermissions is the permission of the offset file.
const filePermissions = 0o600

// SoftRTC reads the system wall clock plus a correction. Setting the clock
// only changes the correction, which is saved so it survives restarts the way
// a battery-backed clock would.
type SoftRTC struct {
	// fs holds the offset file.
	fs afero.Fs
	// path is the offset file, empty to keep the correction in memory.
	path string
	// now returns the system time.
	now func() time.Time
	// offset is added to the system time.
	offset time.Duration
	// mu protects offset.
	mu sync.Mutex
}

// NewSoftRTC creates a clock keeping its correction at path on fs. A missing
// file means no correction; now defaults to time.Now.
func NewSoftRTC(fs afero.Fs, path string, now func() time.Time) (*SoftRTC, error) {
	if now == nil {
		now = time.Now
	}

	rtc := &SoftRTC{
		fs:   fs,
		path: path,
		now:  now,
	}

	if path == "" {
		return rtc, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rtc, nil
		}

		return nil, fmt.Errorf("read clock offset: %w", err)
	}

	seconds, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse clock offset: %w", err)
	}

	rtc.offset = time.Duration(seconds) * time.Second

	return rtc, nil
}

// Unix returns the corrected time in unix seconds.
func (r *SoftRTC) Unix() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.now().Add(r.offset).Unix(), nil
}

// SetUnix sets the clock and saves the new correction.
func (r *SoftRTC) SetUnix(unix int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	offset := time.Duration(unix-r.now().Unix()) * time.Second
	if r.path != "" {
		data := []byte(strconv.FormatInt(int64(offset/time.Second), 10))
		if err := afero.WriteFile(r.fs, r.path, data, filePermissions); err != nil {
			return fmt.Errorf("write clock offset: %w", err)
		}
	}

	r.offset = offset

	return nil
}

// Offset returns the current correction.
func (r *SoftRTC) Offset() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.offset
}
