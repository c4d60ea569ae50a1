package capability

import (
	"reflect"
	"testing"
)

type renderer interface{ Render() string }
type refresher interface{ Refresh() }
type closerView interface{ Dismiss() }

type widget struct{ drawn int }

func (w *widget) Render() string { return "widget" }
func (w *widget) Refresh()       { w.drawn++ }

type panel struct{}

func (panel) Render() string { return "panel" }
func (panel) Dismiss()       {}

func typeOf[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

func registerAll() {
	Reset()
	RegisterView[renderer]()
	RegisterView[refresher]()
	RegisterView[closerView]()
}

func TestResolve_CapabilitySet(t *testing.T) {
	registerAll()

	caps := Resolve(&widget{})
	want := []reflect.Type{typeOf[renderer](), typeOf[refresher]()}
	if !reflect.DeepEqual(caps, want) {
		t.Fatalf("expected %v, got %v", want, caps)
	}

	caps = Resolve(panel{})
	want = []reflect.Type{typeOf[renderer](), typeOf[closerView]()}
	if !reflect.DeepEqual(caps, want) {
		t.Fatalf("expected %v, got %v", want, caps)
	}
}

func TestResolve_CachedPerConcreteType(t *testing.T) {
	registerAll()

	first := Resolve(&widget{})
	second := Resolve(&widget{drawn: 9}) // distinct instance, same type

	// Same backing slice proves the second call hit the cache.
	if len(first) != len(second) || &first[0] != &second[0] {
		t.Error("expected the cached slice for a repeat concrete type")
	}
}

func TestResolve_NilAndUnregistered(t *testing.T) {
	Reset()

	if caps := Resolve(nil); caps != nil {
		t.Error("nil view should resolve to nil")
	}
	if caps := Resolve(&widget{}); len(caps) != 0 {
		t.Error("empty registry should yield an empty capability set")
	}
}

func TestRegisterView_DuplicateIsNoop(t *testing.T) {
	Reset()
	RegisterView[renderer]()
	RegisterView[renderer]()

	if got := len(Registered()); got != 1 {
		t.Fatalf("duplicate registration should be a no-op, registry has %d entries", got)
	}
}

func TestRegisterViewType_NonInterfacePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("registering a non-interface type should panic")
		}
	}()
	RegisterViewType(reflect.TypeOf(widget{}))
}

func TestImplements(t *testing.T) {
	registerAll()

	if !Implements(&widget{}, typeOf[refresher]()) {
		t.Error("widget should implement refresher")
	}
	if Implements(panel{}, typeOf[refresher]()) {
		t.Error("panel should not implement refresher")
	}
}
