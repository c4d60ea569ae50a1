package factory

import (
	"sync"

	mvpbinding "github.com/wippyai/mvp-binding"
	berrors "github.com/wippyai/mvp-binding/errors"
)

var (
	mu        sync.Mutex
	current   mvpbinding.Factory
	defaulted bool
)

// Configure sets the process-wide factory. It may be called at most once,
// and only before the first presenter has been created (which fills the slot
// with the default Table).
func Configure(f mvpbinding.Factory) error {
	mu.Lock()
	defer mu.Unlock()
	if current != nil {
		return berrors.FactoryConfigured(defaulted)
	}
	current = f
	defaulted = false
	return nil
}

// Current returns the configured factory, lazily filling the slot with the
// shared default Table on first use.
func Current() mvpbinding.Factory {
	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = defaultTable
		defaulted = true
	}
	return current
}

// Reset clears the factory slot. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	current = nil
	defaulted = false
}
