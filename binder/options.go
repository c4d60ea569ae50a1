package binder

import "context"

// Options configures binder behavior.
type Options struct {
	// Context is the request-scoped context injected into every presenter.
	// Defaults to context.Background().
	Context context.Context

	// AutoBindHosts controls whether a host that itself satisfies a
	// registered view capability is queued and bound immediately during
	// construction.
	AutoBindHosts bool
}

// DefaultOptions returns default binder configuration.
func DefaultOptions() Options {
	return Options{
		Context:       context.Background(),
		AutoBindHosts: true,
	}
}
