// Package alarm contains the core domain types of the light alarm scheduler.
//
// An Alarm is a value describing one scheduled lighting effect. It is never
// mutated once queued: Repeat and Snooze derive successors instead. The
// package also defines the creation request with its validation rules, the
// durable and display encodings, and the Actor recorded for administrative
// changes.
package alarm
