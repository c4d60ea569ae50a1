package errors

import (
	"fmt"
	"reflect"
	"strings"
)

// Stage indicates where in processing the error occurred
type Stage string

const (
	StageConfigure Stage = "configure" // factory and registry configuration
	StageDiscover  Stage = "discover"  // descriptor discovery
	StageResolve   Stage = "resolve"   // capability resolution
	StageCompose   Stage = "compose"   // composite view construction
	StageBind      Stage = "bind"      // presenter construction and wiring
	StageRelease   Stage = "release"   // teardown
)

// Kind categorizes the error
type Kind string

const (
	KindFactoryConfigured     Kind = "factory_configured"
	KindUnsupportedMode       Kind = "unsupported_mode"
	KindUnsupportedCapability Kind = "unsupported_capability"
	KindLifecycleState        Kind = "lifecycle_state"
	KindRegistration          Kind = "registration"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause      error
	Stage      Stage
	Kind       Kind
	Capability string
	Operation  string
	Detail     string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Stage))
	b.WriteString(" error")

	if e.Kind != "" {
		b.WriteString(" [")
		b.WriteString(string(e.Kind))
		b.WriteByte(']')
	}

	if e.Operation != "" {
		b.WriteString(" in ")
		b.WriteString(e.Operation)
	}

	if e.Capability != "" {
		b.WriteString(" for capability ")
		b.WriteString(e.Capability)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Stage == t.Stage && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether err is a structured error of the given kind.
func IsKind(err error, kind Kind) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Kind == kind {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(stage Stage, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Stage: stage,
			Kind:  kind,
		},
	}
}

// Capability sets the capability name
func (b *Builder) Capability(name string) *Builder {
	b.err.Capability = name
	return b
}

// Operation sets the operation name
func (b *Builder) Operation(op string) *Builder {
	b.err.Operation = op
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// FactoryConfigured creates the error for a second attempt to set the
// process-wide factory. The message distinguishes a slot that was filled
// lazily with the default from one that was set explicitly; the two cases
// are behaviorally identical.
func FactoryConfigured(defaulted bool) *Error {
	detail := "factory already explicitly configured; Configure may be called at most once"
	if defaulted {
		detail = "factory already defaulted; call Configure before the first presenter is created"
	}
	return &Error{
		Stage:  StageConfigure,
		Kind:   KindFactoryConfigured,
		Detail: detail,
	}
}

// UnsupportedMode creates the error for a binding mode the construction
// pipeline does not implement.
func UnsupportedMode(mode string) *Error {
	return &Error{
		Stage:  StageBind,
		Kind:   KindUnsupportedMode,
		Detail: fmt.Sprintf("binding mode %q is not implemented", mode),
	}
}

// UnsupportedCapability creates the error for a capability with no composite
// adapter.
func UnsupportedCapability(capability reflect.Type) *Error {
	return &Error{
		Stage:      StageCompose,
		Kind:       KindUnsupportedCapability,
		Capability: typeName(capability),
		Detail:     "no composite adapter registered",
	}
}

// LifecycleState creates the error for an operation invoked after release.
func LifecycleState(operation string) *Error {
	return &Error{
		Stage:     StageBind,
		Kind:      KindLifecycleState,
		Operation: operation,
		Detail:    "binder has been released",
	}
}

// Registration creates a registry misuse error.
func Registration(stage Stage, detail string, args ...any) *Error {
	return &Error{
		Stage:  stage,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf(detail, args...),
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
