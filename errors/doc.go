// Package errors provides structured error types for the mvp-binding library.
//
// Errors are categorized by Stage (where the error occurred) and Kind (error
// category). The Error type includes the capability or operation involved and
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.StageBind, errors.KindUnsupportedCapability).
//		Capability("TaskListView").
//		Detail("no composite adapter registered").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedCapability(capType)
//	err := errors.LifecycleState("RegisterView")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
