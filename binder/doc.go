// Package binder orchestrates the end-to-end bind and release cycle.
//
// A Binder is constructed over one or more hosts, whose binding descriptors
// are resolved through the process-wide cache. Views queue up through
// RegisterView; PerformBinding drains the queue, matches each descriptor to
// the queued views by capability, builds composites for shared-mode
// bindings, constructs presenters through the configured factory, injects
// the shared message coordinator, and fires creation hooks. Release tears
// everything down in order and closes the coordinator.
//
// # Lifecycle
//
// A binder moves through four states:
//
//	Constructed → AwaitingBind → Bound → Released
//
// Once the initial bind pass has completed, RegisterView binds newly-queued
// views immediately, which supports views created dynamically after the
// first pass. No state is re-entered: operations on a released binder fail
// fast with a lifecycle_state error.
package binder
