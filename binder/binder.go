package binder

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"

	mvpbinding "github.com/wippyai/mvp-binding"
	"github.com/wippyai/mvp-binding/binding"
	"github.com/wippyai/mvp-binding/capability"
	"github.com/wippyai/mvp-binding/composite"
	berrors "github.com/wippyai/mvp-binding/errors"
	"github.com/wippyai/mvp-binding/factory"
)

type state uint8

const (
	stateConstructed state = iota
	stateAwaitingBind
	stateBound
	stateReleased
)

func (s state) String() string {
	switch s {
	case stateConstructed:
		return "constructed"
	case stateAwaitingBind:
		return "awaiting_bind"
	case stateBound:
		return "bound"
	case stateReleased:
		return "released"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Binder wires registered views to presenters according to the binding
// descriptors declared by its hosts. Every public method runs to completion
// on the caller's goroutine; the mutex exists because Release may race with
// a late RegisterView from another goroutine in a multi-threaded host.
type Binder struct {
	mu          sync.Mutex
	coordinator mvpbinding.MessageCoordinator
	opts        Options
	descriptors []binding.Descriptor
	pending     []mvpbinding.View
	owned       []mvpbinding.Presenter
	hooks       []func(mvpbinding.Presenter)

	initialBindDone bool
	st              state
}

// New constructs a binder over the given hosts. Each host contributes its
// cached descriptor sequence; the sequences are concatenated in host order.
// Descriptor view capabilities are registered with the capability package as
// a side effect. A host that itself satisfies a registered view capability
// is queued as a view and, with AutoBindHosts set, bound immediately.
func New(mc mvpbinding.MessageCoordinator, opts Options, hosts ...any) (*Binder, error) {
	if mc == nil {
		return nil, berrors.Registration(berrors.StageConfigure, "message coordinator is required")
	}
	if opts.Context == nil {
		opts.Context = DefaultOptions().Context
	}

	b := &Binder{
		coordinator: mc,
		opts:        opts,
		st:          stateConstructed,
	}

	for _, h := range hosts {
		if h == nil {
			continue
		}
		b.descriptors = append(b.descriptors, binding.DescriptorsFor(h)...)
	}

	for _, d := range b.descriptors {
		if d.Presenter == nil || d.View == nil ||
			d.Presenter.Kind() != reflect.Interface || d.View.Kind() != reflect.Interface {
			return nil, berrors.Registration(berrors.StageDiscover,
				"descriptor %s: capabilities must be interface types", d)
		}
		capability.RegisterViewType(d.View)
	}

	Logger().Debug("binder constructed",
		zap.Int("hosts", len(hosts)),
		zap.Int("descriptors", len(b.descriptors)))

	var selfHosted bool
	for _, h := range hosts {
		if h == nil {
			continue
		}
		if len(capability.Resolve(h)) > 0 {
			b.pending = append(b.pending, h)
			selfHosted = true
		}
	}

	if selfHosted {
		b.st = stateAwaitingBind
		if opts.AutoBindHosts {
			if _, err := b.bindPendingLocked(); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// State returns the binder's lifecycle state for diagnostics.
func (b *Binder) State() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.st.String()
}

// OnPresenterCreated registers a synchronous hook fired once per newly
// constructed presenter, before PerformBinding returns. Hooks registered
// after the first bind pass apply to later passes only.
func (b *Binder) OnPresenterCreated(fn func(mvpbinding.Presenter)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hooks = append(b.hooks, fn)
}

// Presenters returns the presenters the binder currently owns.
func (b *Binder) Presenters() []mvpbinding.Presenter {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]mvpbinding.Presenter(nil), b.owned...)
}

// RegisterView queues a view for binding. Before the initial bind pass the
// view stays pending; afterwards it is bound immediately, which supports
// views created dynamically after the first pass.
func (b *Binder) RegisterView(v mvpbinding.View) error {
	if v == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.st == stateReleased {
		return berrors.LifecycleState("RegisterView")
	}

	b.pending = append(b.pending, v)
	if !b.initialBindDone {
		b.st = stateAwaitingBind
		return nil
	}
	_, err := b.bindPendingLocked()
	return err
}

// PerformBinding drains the pending queue through the match, compose and
// construct pipeline and returns the newly created presenters. An empty
// queue creates nothing but still completes the initial bind, so later
// RegisterView calls bind immediately.
func (b *Binder) PerformBinding() ([]mvpbinding.Presenter, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.st == stateReleased {
		return nil, berrors.LifecycleState("PerformBinding")
	}
	return b.bindPendingLocked()
}

// Release closes the message coordinator, then detaches and releases every
// owned presenter in creation order through the factory. The lock is held
// across the whole loop so a concurrent RegisterView cannot observe a
// partially-cleared list. Repeated Release calls are no-ops.
func (b *Binder) Release() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.st == stateReleased {
		return nil
	}

	closeErr := b.coordinator.Close()

	if len(b.owned) > 0 {
		f := factory.Current()
		for _, p := range b.owned {
			p.DetachView()
			f.Release(p)
		}
		Logger().Debug("released presenters", zap.Int("count", len(b.owned)))
		b.owned = nil
	}

	b.pending = nil
	b.st = stateReleased
	if closeErr != nil {
		return fmt.Errorf("binder: close coordinator: %w", closeErr)
	}
	return nil
}

// bindPendingLocked runs one full bind pass over the pending queue. Caller
// holds b.mu.
func (b *Binder) bindPendingLocked() ([]mvpbinding.Presenter, error) {
	var created []mvpbinding.Presenter

	if len(b.pending) > 0 {
		for _, desc := range b.descriptors {
			matched := matchViews(desc.View, b.pending)
			if len(matched) == 0 {
				// No applicable view is currently registered. Not an error.
				continue
			}

			switch desc.Mode {
			case binding.ModeDefault:
				for _, v := range matched {
					p, err := b.createLocked(desc, v)
					if err != nil {
						return created, err
					}
					created = append(created, p)
				}
			case binding.ModeShared:
				comp, err := composite.Build(desc.View, matched)
				if err != nil {
					return created, fmt.Errorf("binder: compose %s: %w", desc, err)
				}
				p, err := b.createLocked(desc, comp)
				if err != nil {
					return created, err
				}
				created = append(created, p)
			default:
				return created, berrors.UnsupportedMode(desc.Mode.String())
			}
		}
		b.pending = nil
	}

	b.initialBindDone = true
	b.st = stateBound

	if len(created) > 0 {
		Logger().Debug("bind pass complete", zap.Int("created", len(created)))
	}
	return created, nil
}

// createLocked constructs one presenter, injects shared state and fires the
// creation hooks. Caller holds b.mu.
func (b *Binder) createLocked(desc binding.Descriptor, view mvpbinding.View) (mvpbinding.Presenter, error) {
	p, err := factory.Current().Create(desc.Presenter, desc.View, view)
	if err != nil {
		return nil, fmt.Errorf("binder: create %s: %w", desc, err)
	}
	if p == nil {
		return nil, berrors.New(berrors.StageBind, berrors.KindRegistration).
			Capability(desc.Presenter.String()).
			Detail("factory returned no presenter").
			Build()
	}
	if !reflect.TypeOf(p).Implements(desc.Presenter) {
		return nil, berrors.New(berrors.StageBind, berrors.KindRegistration).
			Capability(desc.Presenter.String()).
			Detail("factory returned %T, which does not satisfy the requested capability", p).
			Build()
	}

	p.SetContext(b.opts.Context)
	p.SetCoordinator(b.coordinator)

	for _, hook := range b.hooks {
		hook(p)
	}
	b.owned = append(b.owned, p)

	Logger().Debug("presenter created",
		zap.String("presenter", desc.Presenter.String()),
		zap.String("view", desc.View.String()),
		zap.String("mode", desc.Mode.String()))
	return p, nil
}

// matchViews returns the subset of views satisfying capType, preserving
// registration order.
func matchViews(capType reflect.Type, views []mvpbinding.View) []mvpbinding.View {
	var matched []mvpbinding.View
	for _, v := range views {
		if capability.Implements(v, capType) {
			matched = append(matched, v)
		}
	}
	return matched
}
