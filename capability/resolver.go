package capability

import (
	"reflect"
	"sync"

	mvpbinding "github.com/wippyai/mvp-binding"
)

// The resolver cache is keyed by the view's concrete type, not the instance.
// A racing recompute writes an identical slice, so the read-then-write-on-miss
// race is harmless.
var (
	resolveMu    sync.RWMutex
	resolveCache = make(map[reflect.Type][]reflect.Type)
)

// Resolve returns the registered capabilities the view's concrete type
// implements, in registration order. The result is cached per concrete type;
// callers must not mutate the returned slice.
func Resolve(view mvpbinding.View) []reflect.Type {
	viewType := reflect.TypeOf(view)
	if viewType == nil {
		return nil
	}

	resolveMu.RLock()
	caps, ok := resolveCache[viewType]
	resolveMu.RUnlock()
	if ok {
		return caps
	}

	caps = resolve(viewType)

	resolveMu.Lock()
	resolveCache[viewType] = caps
	resolveMu.Unlock()
	return caps
}

func resolve(viewType reflect.Type) []reflect.Type {
	regMu.RLock()
	candidates := registered
	regMu.RUnlock()

	var caps []reflect.Type
	for _, c := range candidates {
		if viewType.Implements(c) {
			caps = append(caps, c)
		}
	}
	return caps
}

// Implements reports whether the view's concrete type satisfies the given
// capability, using the per-type cache.
func Implements(view mvpbinding.View, capType reflect.Type) bool {
	for _, c := range Resolve(view) {
		if c == capType {
			return true
		}
	}
	return false
}
