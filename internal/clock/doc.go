// Package clock provides the time sources of the scheduler: SoftRTC, a
// battery-backed clock emulated on top of the system clock with a persisted
// correction, and Monotonic, a counter that never jumps.
package clock
