// Package common holds helpers shared by the light-alarm clients.
//
// It provides a gRPC client wrapper with per-call timeouts and a helper that
// detects the current system actor (hostname/username) for the audit log.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
