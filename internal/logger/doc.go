// Package logger provides a small wrapper around zap to offer:
//   - a global sugared logger with a console encoder writing to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV/WithFields),
//   - an atomic level that configuration can switch at runtime, so the
//     scheduler's debug trace is always compiled in and only filtered,
//   - convenience functions (Infof, ErrorKV, etc.).
//
// Every component of the gateway accepts a context and extracts the logger
// from it, enabling scoped, structured logging throughout the codebase.
package logger
