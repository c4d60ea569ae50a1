package factory

import (
	"reflect"
	"sync"

	mvpbinding "github.com/wippyai/mvp-binding"
	berrors "github.com/wippyai/mvp-binding/errors"
)

// Constructor builds a presenter bound to the given view.
type Constructor func(view mvpbinding.View) (mvpbinding.Presenter, error)

// Table is a Factory backed by an explicit table of constructors, one per
// presenter capability. It is the reflection-free default construction
// strategy.
type Table struct {
	mu           sync.RWMutex
	constructors map[reflect.Type]Constructor
}

// NewTable creates an empty constructor table.
func NewTable() *Table {
	return &Table{
		constructors: make(map[reflect.Type]Constructor),
	}
}

// defaultTable backs the lazily-filled process-wide factory slot.
var defaultTable = NewTable()

// Register installs the constructor for a presenter capability. A second
// registration for the same capability replaces the first.
func (t *Table) Register(presenterCap reflect.Type, fn Constructor) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.constructors[presenterCap] = fn
}

// Create implements mvpbinding.Factory. viewCap is ignored: a registered
// constructor already knows which capability it was written against.
func (t *Table) Create(presenterCap, viewCap reflect.Type, view mvpbinding.View) (mvpbinding.Presenter, error) {
	t.mu.RLock()
	fn, ok := t.constructors[presenterCap]
	t.mu.RUnlock()
	if !ok {
		return nil, berrors.New(berrors.StageBind, berrors.KindRegistration).
			Capability(presenterCap.String()).
			Detail("no constructor registered").
			Build()
	}
	return fn(view)
}

var _ mvpbinding.Factory = (*Table)(nil)

// Release implements mvpbinding.Factory. Presenters exposing a Close method
// are closed; everything else is left to the garbage collector.
func (t *Table) Release(p mvpbinding.Presenter) {
	if c, ok := p.(interface{ Close() error }); ok {
		_ = c.Close()
	}
}

// RegisterConstructor installs fn on the shared default table under
// presenter capability P.
func RegisterConstructor[P any](fn Constructor) {
	defaultTable.Register(reflect.TypeOf((*P)(nil)).Elem(), fn)
}

// ConstructorFor adapts a typed constructor to the Constructor signature,
// asserting the view to the capability the constructor expects.
func ConstructorFor[V any](fn func(view V) mvpbinding.Presenter) Constructor {
	return func(view mvpbinding.View) (mvpbinding.Presenter, error) {
		v, ok := view.(V)
		if !ok {
			return nil, berrors.New(berrors.StageBind, berrors.KindRegistration).
				Capability(reflect.TypeOf((*V)(nil)).Elem().String()).
				Detail("view %T does not satisfy the constructor's capability", view).
				Build()
		}
		return fn(v), nil
	}
}

// ResetTable clears the shared default table. Intended for tests.
func ResetTable() {
	defaultTable.mu.Lock()
	defer defaultTable.mu.Unlock()
	defaultTable.constructors = make(map[reflect.Type]Constructor)
}
