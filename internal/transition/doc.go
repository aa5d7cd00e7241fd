// Package transition runs timed bulb effects.
//
// The Engine is ticked by the host loop together with the scheduler. Each
// running transition is addressed by a Handle so the scheduler can cancel
// exactly the effect it started, or clear everything at once.
package transition
