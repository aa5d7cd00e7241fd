// Package ntp fetches network time for the scheduler clock.
//
// Source queries an NTP server a bounded number of times with a fixed pause
// between attempts. A failed fetch is not fatal: the scheduler keeps its
// previous clock.
package ntp
