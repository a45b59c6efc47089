// Package navlink provides a smart hyperlink component for server-rendered
// Go web applications: it classifies navigation targets as internal
// (client-side routed) or external (full page load), resolves the final
// href (base path, trailing-slash policy, rel attribute), and
// opportunistically prefetches an internal route's code and data when the
// link scrolls into view.
//
// # Core Concepts
//
// A Link is constructed once with its collaborators and renders per call
// from LinkProps. Targets are either plain strings or structured
// RouteLocation descriptors:
//
//	link.Render(navlink.LinkProps{To: navlink.PathTarget("/docs")}, nil)
//	link.Render(navlink.LinkProps{To: navlink.RouteTarget(navlink.RouteLocation{Name: "docs"})}, nil)
//
// Classification, href derivation, and rel resolution are pure functions
// re-run on every render; nothing is cached between calls.
//
// # Prefetch Coordination
//
// Mounting a link arms a per-instance prefetch state machine:
//
//	Idle -> WaitingForAppReady -> WaitingForIdleSlot -> WaitingForVisibility -> Prefetching -> Done
//
// The machine waits for the application-ready signal, then for an idle
// slot, then registers with a shared viewport.Registry that multiplexes
// every pending link over one native intersection watcher. On visibility
// the registration is released before any asynchronous work starts, so
// the prefetch fires at most once per link. Unmounting cancels every
// outstanding handle:
//
//	pf := link.Mount(props, element)
//	defer pf.Cancel()
//
// Prefetch is always best-effort. Failures from the extensibility hook or
// the router preload are swallowed independently; the worst outcome of
// any failure path is a link that does not prefetch.
//
// # Collaborators
//
// The host supplies narrow contracts: Router resolves targets and
// preloads route components, Lifecycle defers work past hydration, Hooks
// broadcasts the prefetch event, IdleScheduler and the viewport watcher
// wrap the host's scheduling primitives, and NetworkInformer gates
// prefetch on connection quality. Absent collaborators degrade to inert
// behavior, never to errors.
//
// # Prefetch Endpoint
//
// The Registry serves a signed prefetch endpoint so browser-driven
// prefetch requests cannot be forged into arbitrary preloads. Route
// descriptors are msgpack-packed and HMAC-signed (or AES-GCM encrypted)
// into the URL:
//
//	reg := navlink.NewRegistry(cfg, router, secretKey)
//	http.Handle("/_nav/", reg.Handler())
//
// # Design Rationale
//
// The system favors explicitness over magic:
//   - Explicit collaborators (no globals; the viewport registry is an
//     injected service with create-on-first-use, dispose-on-empty lifecycle)
//   - Explicit cancellation (Cancel is synchronous and complete)
//   - Explicit rendering (anchor output, or a caller-supplied render
//     strategy receiving the full LinkState)
package navlink
