// Package scheduler runs the alarm state machine of the gateway.
//
// Queue keeps pending alarms ordered by trigger time and writes every change
// through to the record store. Controller owns the queue, the dual time
// source and the single active alarm: each Tick it turns bulbs off whose
// auto-turn-off delay expired, retires the active alarm once its effect
// period is over and fires the queue head when it is due.
//
// Neither type is safe for concurrent use. The host serializes Tick and the
// administrative operations.
package scheduler
