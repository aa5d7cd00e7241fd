package alarms

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a record or the summary does not exist.
	ErrNotFound = errors.New("alarm record not found")

	// ErrCorrupt is returned when a record cannot be decoded.
	ErrCorrupt = errors.New("alarm record is corrupt")

	// ErrOrphaned is returned when the bulb alias of a record no longer resolves.
	ErrOrphaned = errors.New("alarm record references an unknown bulb")
)

// Backend stores named byte blobs.
type Backend interface {
	// Read returns the blob stored under name or ErrNotFound.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write creates or replaces the blob stored under name.
	Write(ctx context.Context, name string, data []byte) error
	// Delete removes the blob stored under name. Missing blobs are not an error.
	Delete(ctx context.Context, name string) error
}
