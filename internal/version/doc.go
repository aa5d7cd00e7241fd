// Package version exposes build metadata of the light-alarm binaries.
//
// Version, Commit and BuildTime are injected with -ldflags at build time.
// The server logs Full on startup and clients send UserAgent with every call.
package version
