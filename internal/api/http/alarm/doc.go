// Package alarm implements the JSON-over-HTTP API of the alarm scheduler.
//
// The routes mirror the gRPC AlarmService and reuse its wire messages, so
// both transports render alarms identically.
package alarm
