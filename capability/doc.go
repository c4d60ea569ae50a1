// Package capability maintains the registry of view-capability interfaces
// and resolves which of them a concrete view type implements.
//
// Go offers no way to enumerate the interfaces a type satisfies, so the
// candidate set is explicit: every view capability is registered once at
// startup with RegisterView. Resolve then tests a view's concrete type
// against the registered set, caching the result per type: all instances of
// one concrete type are assumed to expose an identical capability set.
package capability
