// Package fanout launches a fixed number of independent work units
// concurrently and blocks until every one of them has completed.
//
// The moving parts are:
//   - Unit: the ordinal and pause of one unit of work.
//   - Group: launches units on an errgroup and records a Handle for each in
//     its WaiterSet before the wait phase begins.
//   - Run: the fan-out waiter itself. It pauses every unit, reports
//     "<ordinal> is done" through a Reporter and measures the wall-clock
//     time between the first launch and the last completion.
//
// Units are never cancelled: once launched they run to completion. The
// context passed to Run only carries trace and logging values.
package fanout
