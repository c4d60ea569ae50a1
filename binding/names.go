package binding

import (
	"reflect"
	"sync"

	berrors "github.com/wippyai/mvp-binding/errors"
)

// The name registries map manifest identifiers to capability and host types.
// Manifests refer to types by name; code registers the names once at startup.
var (
	namesMu        sync.RWMutex
	presenterNames = make(map[string]reflect.Type)
	viewNames      = make(map[string]reflect.Type)
	hostNames      = make(map[string]reflect.Type)
)

// RegisterPresenterName associates a manifest name with presenter
// capability P.
func RegisterPresenterName[P any](name string) {
	registerName(presenterNames, name, TypeOf[P]())
}

// RegisterViewName associates a manifest name with view capability V.
func RegisterViewName[V any](name string) {
	registerName(viewNames, name, TypeOf[V]())
}

// RegisterHostName associates a manifest name with host type H. H must be
// the type exactly as host instances are supplied to the binder, so a host
// passed as *TaskPage registers with H = *TaskPage.
func RegisterHostName[H any](name string) {
	registerName(hostNames, name, TypeOf[H]())
}

func registerName(table map[string]reflect.Type, name string, t reflect.Type) {
	namesMu.Lock()
	defer namesMu.Unlock()
	table[name] = t
}

func lookupName(table map[string]reflect.Type, kind, name string) (reflect.Type, error) {
	namesMu.RLock()
	t, ok := table[name]
	namesMu.RUnlock()
	if !ok {
		return nil, berrors.Registration(berrors.StageDiscover,
			"no %s registered under name %q", kind, name)
	}
	return t, nil
}

// ResetNames clears all three name registries. Intended for tests.
func ResetNames() {
	namesMu.Lock()
	defer namesMu.Unlock()
	presenterNames = make(map[string]reflect.Type)
	viewNames = make(map[string]reflect.Type)
	hostNames = make(map[string]reflect.Type)
}
