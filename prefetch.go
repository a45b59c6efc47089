package navlink

import (
	"context"
	"strings"
	"sync"
)

// HookLinkPrefetch is broadcast on the hook bus with the resolved path
// just before a link's route components are preloaded.
const HookLinkPrefetch = "link:prefetch"

// prefetchState tracks a link instance through its one-time prefetch.
type prefetchState int

const (
	stateIdle prefetchState = iota
	stateWaitReady
	stateWaitIdle
	stateWaitVisible
	statePrefetching
	stateDone
	stateAborted
)

// Prefetcher drives one mounted link's opportunistic prefetch:
// application-ready, then an idle slot, then visibility, then at-most-once
// prefetch work.
//
// Obtain a Prefetcher from Link.Mount and call Cancel on unmount. Cancel
// is synchronous: once it returns, no prefetch work will start under any
// interleaving. A link whose arming conditions do not hold (prefetch
// disabled, new browsing context, slow network, missing collaborators)
// stays permanently inert.
type Prefetcher[E comparable] struct {
	link  *Link[E]
	props LinkProps

	mu          sync.Mutex
	state       prefetchState
	idleHandle  IdleHandle
	idlePending bool
	unobserve   func()
}

// Prefetched reports whether the one-time prefetch has completed. Used by
// rendering to apply the prefetched indicator class.
func (p *Prefetcher[E]) Prefetched() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state == stateDone
}

// Cancel aborts the prefetch from any non-terminal state, releasing an
// outstanding idle-slot request and viewport observation. Safe to call
// more than once.
func (p *Prefetcher[E]) Cancel() {
	p.mu.Lock()
	if p.state == stateDone || p.state == stateAborted {
		p.mu.Unlock()
		return
	}
	p.state = stateAborted
	h, pending := p.idleHandle, p.idlePending
	p.idleHandle, p.idlePending = 0, false
	un := p.unobserve
	p.unobserve = nil
	p.mu.Unlock()

	if pending && h != 0 {
		p.link.deps.Idle.CancelIdle(h)
	}
	if un != nil {
		un()
	}
}

// arm checks the arming conditions and, when they hold, starts waiting
// for the application-ready signal.
func (p *Prefetcher[E]) arm(el E) {
	l := p.link
	pc := l.cfg.mergePrefetch(p.props)
	if !pc.enabled {
		return
	}
	// Links opening a new browsing context never prefetch.
	if t := p.props.Target; t != "" && t != "_self" {
		return
	}
	if pc.respectSlow && slowNetwork(l.deps.Network) {
		return
	}
	if l.deps.Lifecycle == nil || l.deps.Idle == nil || l.deps.Viewport == nil {
		return
	}

	p.mu.Lock()
	p.state = stateWaitReady
	p.mu.Unlock()
	l.deps.Lifecycle.OnReady(func() { p.onReady(el) })
}

func (p *Prefetcher[E]) onReady(el E) {
	p.mu.Lock()
	if p.state != stateWaitReady {
		p.mu.Unlock()
		return
	}
	p.state = stateWaitIdle
	p.idlePending = true
	p.mu.Unlock()

	h := p.link.deps.Idle.RequestIdle(func() { p.onIdle(el) })

	p.mu.Lock()
	switch p.state {
	case stateWaitIdle:
		p.idleHandle = h
		p.mu.Unlock()
	case stateAborted:
		// Canceled while the request was in flight.
		p.mu.Unlock()
		p.link.deps.Idle.CancelIdle(h)
	default:
		p.mu.Unlock()
	}
}

func (p *Prefetcher[E]) onIdle(el E) {
	p.mu.Lock()
	if p.state != stateWaitIdle {
		p.mu.Unlock()
		return
	}
	p.idleHandle = 0
	p.idlePending = false
	p.state = stateWaitVisible
	p.mu.Unlock()

	un := p.link.deps.Viewport.Observe(el, func(visible bool) {
		if visible {
			p.onVisible()
		}
	})

	p.mu.Lock()
	if p.state == stateWaitVisible {
		p.unobserve = un
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	// Canceled (or fired without a stored handle) in the meantime;
	// release the observation ourselves.
	un()
}

// onVisible performs the one-time prefetch. The observation is released
// eagerly, before any asynchronous work, so a re-entrant watcher firing
// cannot trigger the prefetch twice.
func (p *Prefetcher[E]) onVisible() {
	p.mu.Lock()
	if p.state != stateWaitVisible {
		p.mu.Unlock()
		return
	}
	un := p.unobserve
	p.unobserve = nil
	p.state = statePrefetching
	p.mu.Unlock()

	if un != nil {
		un()
	}

	l := p.link
	rt := resolveTarget(l.deps.Router, l.cfg, p.props)

	// Internal targets notify with the resolved route path, not the
	// href, which may carry a base prefix.
	path := rt.Href
	if rt.Route != nil {
		path = rt.Route.FullPath
		if path == "" {
			path = rt.Route.Path
		}
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	if l.deps.Hooks != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.deps.Hooks.CallHook(ctx, HookLinkPrefetch, path); err != nil {
				l.cfg.debugf("prefetch hook failed: %v", err)
			}
		}()
	}
	if !rt.External && l.deps.Router != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := l.deps.Router.PreloadRouteComponents(ctx, p.props.To); err != nil {
				l.cfg.debugf("route preload failed: %v", err)
			}
		}()
	}
	wg.Wait()

	p.mu.Lock()
	if p.state == statePrefetching {
		p.state = stateDone
	}
	p.mu.Unlock()
}

// slowNetwork classifies the current connection. Missing capability is
// treated as "not slow".
func slowNetwork(informer NetworkInformer) bool {
	if informer == nil {
		return false
	}
	info := informer.NetworkInfo()
	return info.SaveData || strings.Contains(info.EffectiveType, "2g")
}
