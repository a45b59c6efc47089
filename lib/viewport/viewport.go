// Package viewport multiplexes many pending link observations over a
// single native geometry-observation primitive.
//
// A Registry owns at most one Watcher at a time: the watcher is created
// lazily on the first Observe call and disposed as soon as the last
// watched element is removed, so no background observation work continues
// when no links are pending.
package viewport

import "sync"

// Watcher is the host's geometry-observation primitive (in a browser
// context, an IntersectionObserver). Implementations deliver visibility
// events through the deliver function passed to their Factory.
type Watcher[E comparable] interface {
	Observe(el E)
	Unobserve(el E)
	Disconnect()
}

// Factory creates a native watcher. Visibility events must be reported by
// calling deliver with the element and whether it is intersecting
// (ratio > 0).
type Factory[E comparable] func(deliver func(el E, visible bool)) Watcher[E]

// Callback receives visibility events for one element. Firing does not
// auto-unregister: a callback that wants at-most-once semantics must
// release its own registration.
type Callback func(visible bool)

type entry struct {
	cb Callback
}

// Registry maps observed elements to callbacks over one shared Watcher.
//
// An element is registered at most once; observing it again replaces the
// callback (last-write-wins) without leaking the prior native
// observation. A nil *Registry is inert and safe to pass around: it
// reports zero watched elements, and callers must treat it as "do not
// attempt prefetch".
type Registry[E comparable] struct {
	mu      sync.Mutex
	factory Factory[E]
	watcher Watcher[E]
	entries map[E]*entry
}

// NewRegistry creates a registry backed by factory. A nil factory (no
// observation capability in this execution context) yields a nil,
// inert registry.
func NewRegistry[E comparable](factory Factory[E]) *Registry[E] {
	if factory == nil {
		return nil
	}
	return &Registry[E]{factory: factory}
}

// Observe registers cb for el and returns a function releasing the
// registration. The returned function is idempotent, and releasing a
// registration that has been superseded by a newer Observe on the same
// element is a no-op. On a nil registry nothing is registered and the
// returned release is a no-op.
func (r *Registry[E]) Observe(el E, cb Callback) (unobserve func()) {
	if r == nil {
		return func() {}
	}
	r.mu.Lock()
	if r.watcher == nil {
		r.watcher = r.factory(r.deliver)
	}
	if r.entries == nil {
		r.entries = make(map[E]*entry)
	}
	_, replacing := r.entries[el]
	e := &entry{cb: cb}
	r.entries[el] = e
	w := r.watcher
	r.mu.Unlock()

	if !replacing {
		w.Observe(el)
	}

	var once sync.Once
	return func() {
		once.Do(func() { r.release(el, e) })
	}
}

// release removes el if it is still bound to e, tearing down the shared
// watcher when the map becomes empty.
func (r *Registry[E]) release(el E, e *entry) {
	r.mu.Lock()
	cur, ok := r.entries[el]
	if !ok || cur != e {
		// Superseded by a newer registration; nothing to release.
		r.mu.Unlock()
		return
	}
	delete(r.entries, el)
	w := r.watcher
	empty := len(r.entries) == 0
	if empty {
		r.watcher = nil
		r.entries = nil
	}
	r.mu.Unlock()

	if w == nil {
		return
	}
	w.Unobserve(el)
	if empty {
		w.Disconnect()
	}
}

// deliver routes a native visibility event to the element's current
// callback. The callback runs outside the registry lock so it may
// re-enter Observe or release its own registration.
func (r *Registry[E]) deliver(el E, visible bool) {
	r.mu.Lock()
	e := r.entries[el]
	r.mu.Unlock()
	if e != nil && e.cb != nil {
		e.cb(visible)
	}
}

// Len reports the number of watched elements.
func (r *Registry[E]) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Active reports whether a native watcher currently exists.
func (r *Registry[E]) Active() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.watcher != nil
}
