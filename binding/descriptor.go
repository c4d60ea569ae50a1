package binding

import (
	"fmt"
	"reflect"
)

// Mode selects how presenters are created for a binding's matched views.
type Mode uint8

const (
	// ModeDefault creates one presenter per matched view instance.
	ModeDefault Mode = iota

	// ModeShared creates exactly one presenter bound to a composite view
	// that fans out to all matched instances.
	ModeShared
)

// String returns the manifest spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeShared:
		return "shared"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode converts a manifest spelling into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "default", "":
		return ModeDefault, nil
	case "shared":
		return ModeShared, nil
	default:
		return 0, fmt.Errorf("binding: unknown mode %q", s)
	}
}

// Descriptor is an immutable record of one declared binding: which presenter
// capability to construct, which view capability it binds to, and how.
type Descriptor struct {
	Presenter reflect.Type
	View      reflect.Type
	Mode      Mode
}

// String renders the descriptor for logs and error messages.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s -> %s (%s)", d.Presenter, d.View, d.Mode)
}

// Of builds a Descriptor from a presenter capability P and a view
// capability V. Both type parameters must be interface types.
func Of[P any, V any](mode Mode) Descriptor {
	return Descriptor{
		Presenter: TypeOf[P](),
		View:      TypeOf[V](),
		Mode:      mode,
	}
}

// TypeOf returns the reflect.Type of T itself, not of a value of T. For an
// interface type parameter this is the interface type.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Declarer is implemented by hosts that carry their own binding
// declarations. The returned slice must be the same, in order and content,
// for every instance of one concrete host type: it is read once per type and
// cached.
type Declarer interface {
	PresenterBindings() []Descriptor
}
