// Package mvpbinding provides a runtime binder for Model-View-Presenter wiring.
//
// The library connects view instances (UI-facing objects) to presenter
// instances (logic-facing objects) based on declarative bindings carried by a
// host object, so that neither side needs to know the other's concrete type.
// Views are matched to bindings by capability: a capability is a Go interface
// registered with the capability package, and a view participates in a binding
// whenever its concrete type implements the binding's declared view capability.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	mvpbinding/      Root package with core View, Presenter, Factory and
//	                 MessageCoordinator contracts
//	├── binder/      Bind/release orchestration and lifecycle state machine
//	├── binding/     Binding descriptors, per-host-type descriptor cache,
//	                 name registries and HCL manifest loading
//	├── capability/  View-capability registry and per-type capability resolver
//	├── composite/   Fan-out composite views for shared-presenter bindings
//	├── factory/     Process-wide presenter factory slot and the built-in
//	                 constructor-table factory
//	├── messages/    In-process message coordinator implementation
//	└── errors/      Structured error types for configuration and bind failures
//
// # Quick Start
//
// Register capabilities and constructors once at startup, then bind:
//
//	capability.RegisterView[TaskListView]()
//	factory.RegisterConstructor[TaskListPresenter](
//	    factory.ConstructorFor(func(v TaskListView) mvpbinding.Presenter {
//	        return NewTaskListPresenter(v)
//	    }))
//
//	host := &TaskPage{} // implements binding.Declarer
//	b, err := binder.New(messages.NewCoordinator(), binder.DefaultOptions(), host)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Release()
//
//	b.RegisterView(listWidget)
//	presenters, err := b.PerformBinding()
//
// # Binding Modes
//
// A binding descriptor declares one of two modes. ModeDefault creates one
// presenter per matched view instance. ModeShared creates exactly one
// presenter bound to a composite view that fans every call out to all matched
// instances in registration order.
//
// # Thread Safety
//
// A Binder is a synchronous, single-goroutine object: every public method
// runs to completion on the caller's goroutine. The process-wide descriptor
// and capability caches are safe for concurrent use by binders running on
// different goroutines.
package mvpbinding
