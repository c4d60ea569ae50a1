package binding

import (
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// The descriptor cache is process-wide and append-only: a host type's
// descriptor sequence is computed once and reused by every binder for every
// instance of that type. A racing recompute for the same type produces an
// identical slice, so last-writer-wins on the same key is harmless.
var (
	cacheMu    sync.RWMutex
	descCache  = make(map[reflect.Type][]Descriptor)
	hostTables = make(map[reflect.Type][]Descriptor)
)

// RegisterHost records the descriptor sequence for host type H in the
// explicit table. The table takes precedence over the Declarer interface
// during discovery. Registering the same host type twice replaces the
// earlier sequence only if discovery has not yet cached it.
func RegisterHost[H any](descs ...Descriptor) {
	hostType := TypeOf[H]()
	RegisterHostDescriptors(hostType, descs)
}

// RegisterHostDescriptors is the non-generic form of RegisterHost, used by
// the manifest loader.
func RegisterHostDescriptors(hostType reflect.Type, descs []Descriptor) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	hostTables[hostType] = append([]Descriptor(nil), descs...)
	Logger().Debug("registered host descriptors",
		zap.String("host", hostType.String()),
		zap.Int("count", len(descs)))
}

// DescriptorsFor resolves the binding descriptors declared by host, in
// declaration order. The result is cached under the host's concrete type;
// callers must not mutate the returned slice.
func DescriptorsFor(host any) []Descriptor {
	hostType := reflect.TypeOf(host)
	if hostType == nil {
		return nil
	}

	cacheMu.RLock()
	cached, ok := descCache[hostType]
	cacheMu.RUnlock()
	if ok {
		return cached
	}

	descs := discover(host, hostType)

	cacheMu.Lock()
	descCache[hostType] = descs
	cacheMu.Unlock()

	Logger().Debug("resolved host descriptors",
		zap.String("host", hostType.String()),
		zap.Int("count", len(descs)))
	return descs
}

// discover computes the descriptor sequence for a host type on a cache miss.
// The explicit table wins over the Declarer interface.
func discover(host any, hostType reflect.Type) []Descriptor {
	cacheMu.RLock()
	table, ok := hostTables[hostType]
	cacheMu.RUnlock()
	if ok {
		return table
	}

	if d, ok := host.(Declarer); ok {
		return append([]Descriptor(nil), d.PresenterBindings()...)
	}
	return nil
}

// ResetCache clears the descriptor cache and the explicit host table.
// Intended for tests.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	descCache = make(map[reflect.Type][]Descriptor)
	hostTables = make(map[reflect.Type][]Descriptor)
}
