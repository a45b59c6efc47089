package viewport

import "sync"

// TestHost fabricates in-memory watchers for tests. Each Registry
// creation cycle (first Observe after empty) asks the host for a fresh
// watcher, so tests can assert dispose-on-empty by counting creations.
type TestHost[E comparable] struct {
	mu       sync.Mutex
	watchers []*TestWatcher[E]
}

// Factory returns a Factory producing watchers owned by this host.
func (h *TestHost[E]) Factory() Factory[E] {
	return func(deliver func(el E, visible bool)) Watcher[E] {
		w := &TestWatcher[E]{deliver: deliver, observed: make(map[E]bool)}
		h.mu.Lock()
		h.watchers = append(h.watchers, w)
		h.mu.Unlock()
		return w
	}
}

// Created reports how many native watchers have been fabricated.
func (h *TestHost[E]) Created() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers)
}

// Current returns the most recent watcher, or nil if none exists or the
// most recent one was disconnected.
func (h *TestHost[E]) Current() *TestWatcher[E] {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.watchers) == 0 {
		return nil
	}
	w := h.watchers[len(h.watchers)-1]
	if w.Disconnected() {
		return nil
	}
	return w
}

// TestWatcher is an in-memory Watcher driven manually from tests.
type TestWatcher[E comparable] struct {
	mu           sync.Mutex
	deliver      func(el E, visible bool)
	observed     map[E]bool
	disconnected bool
}

func (w *TestWatcher[E]) Observe(el E) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observed[el] = true
}

func (w *TestWatcher[E]) Unobserve(el E) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.observed, el)
}

func (w *TestWatcher[E]) Disconnect() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.disconnected = true
}

// Enter simulates el scrolling into the viewport. Events are only
// delivered for elements the watcher is currently observing, matching
// native behavior.
func (w *TestWatcher[E]) Enter(el E) {
	w.mu.Lock()
	ok := w.observed[el] && !w.disconnected
	deliver := w.deliver
	w.mu.Unlock()
	if ok {
		deliver(el, true)
	}
}

// Leave simulates el scrolling out of the viewport.
func (w *TestWatcher[E]) Leave(el E) {
	w.mu.Lock()
	ok := w.observed[el] && !w.disconnected
	deliver := w.deliver
	w.mu.Unlock()
	if ok {
		deliver(el, false)
	}
}

// Observing reports whether el is currently observed.
func (w *TestWatcher[E]) Observing(el E) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.observed[el]
}

// ObservedCount reports the number of observed elements.
func (w *TestWatcher[E]) ObservedCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.observed)
}

// Disconnected reports whether Disconnect was called.
func (w *TestWatcher[E]) Disconnected() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.disconnected
}
