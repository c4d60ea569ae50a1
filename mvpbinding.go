package mvpbinding

import (
	"context"
	"reflect"
)

// View is the root contract for all view-capability interfaces. It carries no
// methods of its own; concrete views gain behavior through the capability
// interfaces they implement, and those interfaces are what bindings declare.
type View interface{}

// Presenter is the contract every presenter created through a Factory must
// satisfy. The binder injects shared state through the setters immediately
// after construction and calls DetachView exactly once during release.
type Presenter interface {
	// SetContext supplies the request-scoped context the presenter runs under.
	SetContext(ctx context.Context)

	// SetCoordinator supplies the message coordinator shared by every
	// presenter created by the same binder.
	SetCoordinator(mc MessageCoordinator)

	// DetachView disconnects the presenter from its bound view before the
	// presenter is handed back to the factory for release.
	DetachView()
}

// MessageCoordinator is the cross-presenter communication channel. One
// coordinator exists per binder and is shared by reference with every
// presenter the binder creates. Implementations live outside this core; the
// messages package provides an in-process one.
type MessageCoordinator interface {
	// Publish delivers a message to every subscriber whose registered type
	// the message is assignable to.
	Publish(message any)

	// Subscribe registers a callback for messages assignable to messageType.
	Subscribe(messageType reflect.Type, fn func(message any))

	// Close shuts the coordinator down. Called exactly once by the binder
	// during release.
	Close() error
}

// Factory creates and releases presenters. The construction strategy is the
// factory's own business; the binder only requires that the returned value
// satisfies the requested presenter capability.
type Factory interface {
	// Create builds a presenter satisfying presenterCap, bound to view, which
	// satisfies viewCap. For shared-mode bindings view is a composite.
	Create(presenterCap, viewCap reflect.Type, view View) (Presenter, error)

	// Release disposes a presenter previously returned by Create.
	Release(p Presenter)
}
