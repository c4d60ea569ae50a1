package capability

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	regMu      sync.RWMutex
	registered []reflect.Type
	regSet     = make(map[reflect.Type]struct{})
)

// RegisterView adds interface type V to the candidate capability set.
// Registration order is preserved and determines match ordering everywhere a
// capability set is reported. Registering the same capability twice is a
// no-op. Panics if V is not an interface type; that is a programming error
// caught at startup.
func RegisterView[V any]() {
	RegisterViewType(reflect.TypeOf((*V)(nil)).Elem())
}

// RegisterViewType is the non-generic form of RegisterView. Adding a new
// capability invalidates the resolver cache: capability sets computed before
// the registration would be missing the new entry.
func RegisterViewType(t reflect.Type) {
	if t.Kind() != reflect.Interface {
		panic(fmt.Sprintf("capability: %s is not an interface type", t))
	}

	regMu.Lock()
	if _, ok := regSet[t]; ok {
		regMu.Unlock()
		return
	}
	regSet[t] = struct{}{}
	registered = append(registered, t)
	regMu.Unlock()

	resolveMu.Lock()
	resolveCache = make(map[reflect.Type][]reflect.Type)
	resolveMu.Unlock()
}

// Registered returns the registered capabilities in registration order.
func Registered() []reflect.Type {
	regMu.RLock()
	defer regMu.RUnlock()
	return append([]reflect.Type(nil), registered...)
}

// Reset clears the registry and the resolver cache. Intended for tests.
func Reset() {
	regMu.Lock()
	registered = nil
	regSet = make(map[reflect.Type]struct{})
	regMu.Unlock()

	resolveMu.Lock()
	resolveCache = make(map[reflect.Type][]reflect.Type)
	resolveMu.Unlock()
}
