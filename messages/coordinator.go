package messages

import (
	"reflect"
	"sync"

	"go.uber.org/zap"

	mvpbinding "github.com/wippyai/mvp-binding"
)

// Coordinator is the in-process MessageCoordinator implementation. One
// instance exists per binder and is shared by reference with every presenter
// the binder creates. Safe for concurrent use.
type Coordinator struct {
	mu        sync.Mutex
	subs      map[reflect.Type][]func(any)
	published []any
	closed    bool
}

// NewCoordinator creates an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{
		subs: make(map[reflect.Type][]func(any)),
	}
}

var _ mvpbinding.MessageCoordinator = (*Coordinator)(nil)

// Publish delivers the message to every subscriber whose registered type the
// message is assignable to, then retains it for late subscribers. Publishing
// after Close drops the message.
func (c *Coordinator) Publish(message any) {
	if message == nil {
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		Logger().Warn("publish after close dropped",
			zap.String("type", reflect.TypeOf(message).String()))
		return
	}
	c.published = append(c.published, message)
	targets := c.matchingSubs(message)
	c.mu.Unlock()

	for _, fn := range targets {
		fn(message)
	}
}

// Subscribe registers fn for every message assignable to messageType, and
// replays retained messages that match. Subscribing after Close is a no-op.
func (c *Coordinator) Subscribe(messageType reflect.Type, fn func(message any)) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.subs[messageType] = append(c.subs[messageType], fn)

	var replay []any
	for _, m := range c.published {
		if reflect.TypeOf(m).AssignableTo(messageType) {
			replay = append(replay, m)
		}
	}
	c.mu.Unlock()

	for _, m := range replay {
		fn(m)
	}
}

// Close shuts the coordinator down and drops all subscriptions and retained
// messages. Further Close calls are no-ops.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.subs = nil
	c.published = nil
	return nil
}

// Closed reports whether Close has been called.
func (c *Coordinator) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// matchingSubs collects, under the lock, the callbacks whose registered type
// the message is assignable to, in registration order per type.
func (c *Coordinator) matchingSubs(message any) []func(any) {
	msgType := reflect.TypeOf(message)
	var targets []func(any)
	for t, fns := range c.subs {
		if msgType.AssignableTo(t) {
			targets = append(targets, fns...)
		}
	}
	return targets
}

// Subscribe registers a typed callback on any MessageCoordinator.
func Subscribe[T any](mc mvpbinding.MessageCoordinator, fn func(message T)) {
	msgType := reflect.TypeOf((*T)(nil)).Elem()
	mc.Subscribe(msgType, func(message any) {
		fn(message.(T))
	})
}
