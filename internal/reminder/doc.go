// Package reminder re-announces pending tasks on a fixed interval until each
// task's reminder budget is spent.
//
// Deciding what to announce (Plan, Settle) is pure; rendering is delegated to
// a Notifier so the Engine can run without a display. The Engine owns its
// task list behind a mutex and snapshots it at the start of every cycle:
// tasks added while a cycle is running are first announced on the next one.
package reminder
