// Package composite builds fan-out views for shared-presenter bindings.
//
// When a binding runs in shared mode, one presenter serves every matched
// view. The presenter still talks to a single value of the declared view
// capability, so the binder asks this package for a composite: an adapter
// implementing the capability that forwards every call to all wrapped views
// in registration order.
//
// There is no runtime code synthesis. Each capability that participates in
// shared bindings registers one hand-written adapter:
//
//	composite.Register(func(children []StatusView) StatusView {
//	    return statusFanout(children)
//	})
//
// Building a composite for a capability without an adapter fails with an
// unsupported_capability error.
package composite
