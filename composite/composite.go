package composite

import (
	"reflect"
	"sync"

	mvpbinding "github.com/wippyai/mvp-binding"
	berrors "github.com/wippyai/mvp-binding/errors"
)

type builderFunc func(children []mvpbinding.View) mvpbinding.View

var (
	mu       sync.RWMutex
	builders = make(map[reflect.Type]builderFunc)
)

// Register installs the fan-out adapter for view capability V. The build
// function receives the matched views in registration order and must return
// a value that satisfies V and forwards every call to all of them.
// Registering a second adapter for the same capability replaces the first.
func Register[V any](build func(children []V) V) {
	capType := reflect.TypeOf((*V)(nil)).Elem()

	mu.Lock()
	defer mu.Unlock()
	builders[capType] = func(children []mvpbinding.View) mvpbinding.View {
		typed := make([]V, len(children))
		for i, c := range children {
			typed[i] = c.(V)
		}
		return build(typed)
	}
}

// Build wraps the ordered views in the adapter registered for capType. Every
// view must already be known to satisfy capType; the binder's matcher
// guarantees this. A capability with no adapter fails with an
// unsupported_capability error.
func Build(capType reflect.Type, views []mvpbinding.View) (mvpbinding.View, error) {
	mu.RLock()
	build, ok := builders[capType]
	mu.RUnlock()
	if !ok {
		return nil, berrors.UnsupportedCapability(capType)
	}
	return build(views), nil
}

// Registered reports whether an adapter exists for the capability.
func Registered(capType reflect.Type) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := builders[capType]
	return ok
}

// Reset clears the adapter registry. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	builders = make(map[reflect.Type]builderFunc)
}
