package navlink

import (
	"context"
	"sync"
)

// StubRouter is an in-memory Router for tests.
//
// Routes maps names and paths to resolved routes. Unkeyed string or
// path-only targets synthesize a route from the path, so most tests need
// no setup; named targets without an entry fail resolution:
//
//	router := &navlink.StubRouter{}
//	link := navlink.NewLink[string](reg, navlink.Deps[string]{Router: router})
type StubRouter struct {
	mu           sync.Mutex
	Routes       map[string]*ResolvedRoute
	CurrentRoute *ResolvedRoute
	ResolveErr   error
	PreloadErr   error
	preloads     []LinkTarget
}

func (s *StubRouter) Resolve(target LinkTarget) (*ResolvedRoute, error) {
	if s.ResolveErr != nil {
		return nil, s.ResolveErr
	}

	path := target.String()
	if target.IsRoute() {
		loc := target.Route()
		// Name resolves with priority over path.
		if loc.Name != "" {
			if route, ok := s.Routes[loc.Name]; ok {
				return route, nil
			}
			return nil, ErrNoRoute
		}
		path = loc.Path
	}
	if route, ok := s.Routes[path]; ok {
		return route, nil
	}
	if path == "" {
		return nil, ErrNoRoute
	}
	return &ResolvedRoute{Path: path, FullPath: path, Href: path}, nil
}

func (s *StubRouter) PreloadRouteComponents(ctx context.Context, target LinkTarget) error {
	s.mu.Lock()
	s.preloads = append(s.preloads, target)
	s.mu.Unlock()
	return s.PreloadErr
}

func (s *StubRouter) Current() *ResolvedRoute {
	return s.CurrentRoute
}

// Preloads returns the targets passed to PreloadRouteComponents.
func (s *StubRouter) Preloads() []LinkTarget {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LinkTarget, len(s.preloads))
	copy(out, s.preloads)
	return out
}

// HookCall records one CallHook invocation.
type HookCall struct {
	Name    string
	Payload any
}

// RecordingHooks is a Hooks implementation that records calls and
// optionally fails them.
type RecordingHooks struct {
	mu    sync.Mutex
	Err   error
	calls []HookCall
}

func (h *RecordingHooks) CallHook(ctx context.Context, name string, payload any) error {
	h.mu.Lock()
	h.calls = append(h.calls, HookCall{Name: name, Payload: payload})
	h.mu.Unlock()
	return h.Err
}

// Calls returns the recorded hook invocations.
func (h *RecordingHooks) Calls() []HookCall {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]HookCall, len(h.calls))
	copy(out, h.calls)
	return out
}

// ManualLifecycle is a Lifecycle driven explicitly from tests: queued
// callbacks run when Ready is called, later registrations run
// immediately.
type ManualLifecycle struct {
	mu      sync.Mutex
	ready   bool
	pending []func()
}

func (m *ManualLifecycle) OnReady(fn func()) {
	m.mu.Lock()
	if !m.ready {
		m.pending = append(m.pending, fn)
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	fn()
}

// Ready marks the application ready and flushes queued callbacks.
func (m *ManualLifecycle) Ready() {
	m.mu.Lock()
	m.ready = true
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, fn := range pending {
		fn()
	}
}

// ManualIdle is an IdleScheduler driven explicitly from tests.
//
// Fire runs the callbacks of all outstanding (non-canceled) requests.
// ForceFire runs a specific callback even after cancellation, for
// asserting that consumers guard against stale idle slots.
type ManualIdle struct {
	mu       sync.Mutex
	next     IdleHandle
	fns      map[IdleHandle]func()
	canceled map[IdleHandle]bool
}

func (m *ManualIdle) RequestIdle(fn func()) IdleHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fns == nil {
		m.fns = make(map[IdleHandle]func())
		m.canceled = make(map[IdleHandle]bool)
	}
	m.next++
	m.fns[m.next] = fn
	return m.next
}

func (m *ManualIdle) CancelIdle(h IdleHandle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.fns[h]; ok {
		m.canceled[h] = true
	}
}

// Fire runs all outstanding non-canceled callbacks.
func (m *ManualIdle) Fire() {
	m.mu.Lock()
	var fns []func()
	for h, fn := range m.fns {
		if !m.canceled[h] {
			fns = append(fns, fn)
		}
		delete(m.fns, h)
	}
	m.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// ForceFire runs the callback for h regardless of cancellation.
func (m *ManualIdle) ForceFire(h IdleHandle) {
	m.mu.Lock()
	fn := m.fns[h]
	delete(m.fns, h)
	m.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Pending reports the number of outstanding non-canceled requests.
func (m *ManualIdle) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for h := range m.fns {
		if !m.canceled[h] {
			n++
		}
	}
	return n
}

// Canceled reports whether h was canceled.
func (m *ManualIdle) Canceled(h IdleHandle) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.canceled[h]
}

// LastHandle returns the most recently issued handle.
func (m *ManualIdle) LastHandle() IdleHandle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.next
}

// StaticNetwork is a fixed NetworkInformer.
type StaticNetwork struct {
	Info NetworkInfo
}

func (n *StaticNetwork) NetworkInfo() NetworkInfo {
	return n.Info
}

// RecordingNavigator records Navigate calls.
type RecordingNavigator struct {
	mu       sync.Mutex
	Err      error
	pushed   []string
	replaced []string
}

func (n *RecordingNavigator) Navigate(ctx context.Context, href string, replace bool) error {
	n.mu.Lock()
	if replace {
		n.replaced = append(n.replaced, href)
	} else {
		n.pushed = append(n.pushed, href)
	}
	n.mu.Unlock()
	return n.Err
}

// Pushed returns hrefs navigated with push semantics.
func (n *RecordingNavigator) Pushed() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.pushed))
	copy(out, n.pushed)
	return out
}

// Replaced returns hrefs navigated with replace semantics.
func (n *RecordingNavigator) Replaced() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.replaced))
	copy(out, n.replaced)
	return out
}
