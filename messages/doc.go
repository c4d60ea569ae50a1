// Package messages provides the in-process MessageCoordinator used to pass
// messages between presenters created by one binder.
//
// Routing is by message type: a subscriber registered for a type receives
// every published message assignable to it, which lets presenters subscribe
// to an interface and receive all messages implementing it. Published
// messages are retained, so a presenter that subscribes late still sees the
// messages published before it existed; presenters are created in bind
// order and must not depend on it.
//
// Typed subscription goes through the generic helper:
//
//	messages.Subscribe(coordinator, func(m TaskAdded) { ... })
package messages
