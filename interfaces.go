package navlink

import "context"

// ResolvedRoute is the router's view of a resolved target.
type ResolvedRoute struct {
	Name     string
	Path     string
	FullPath string // Path plus query and hash
	Href     string
}

// Router is the routing collaborator. navlink does not implement path
// matching; it consumes the host router through this narrow contract.
//
// Resolve maps a target to a concrete route. Implementations should
// resolve structured targets by Name with priority over Path, matching
// typical client-side routers. A nil route or an error degrades the link
// to a nil href; it is never surfaced to the rendering layer.
//
// PreloadRouteComponents fetches the target route's code and data ahead
// of navigation. It is always called best-effort: errors are swallowed
// by the caller.
type Router interface {
	Resolve(target LinkTarget) (*ResolvedRoute, error)
	PreloadRouteComponents(ctx context.Context, target LinkTarget) error

	// Current returns the active route for IsActive/IsExactActive
	// computation, or nil when unknown.
	Current() *ResolvedRoute
}

// Navigator performs programmatic navigation for LinkState.Navigate.
// replace selects history-replace over history-push semantics.
type Navigator interface {
	Navigate(ctx context.Context, href string, replace bool) error
}

// Lifecycle is the application lifecycle collaborator.
//
// OnReady invokes fn exactly once, deferred past initial hydration and
// mount. If the application is already ready, fn may run synchronously.
type Lifecycle interface {
	OnReady(fn func())
}

// Hooks is the extensibility hook bus. CallHook dispatches name with
// payload to any registered listeners and reports their failure as an
// error; it must not panic. Callers in this package always swallow the
// returned error.
type Hooks interface {
	CallHook(ctx context.Context, name string, payload any) error
}

// IdleHandle identifies an outstanding idle-slot request. Schedulers
// must return non-zero handles; zero is reserved for "no request".
type IdleHandle uint64

// IdleScheduler requests best-effort idle time slots from the host.
//
// RequestIdle must invoke fn asynchronously (never from inside the
// RequestIdle call itself). CancelIdle is a no-op for handles that have
// already fired or been canceled; idle requests are not time-bounded.
type IdleScheduler interface {
	RequestIdle(fn func()) IdleHandle
	CancelIdle(h IdleHandle)
}

// NetworkInfo mirrors the host's network-information capability.
type NetworkInfo struct {
	SaveData      bool
	EffectiveType string
}

// NetworkInformer exposes read-only network quality. The collaborator is
// optional: a nil NetworkInformer is treated as "not slow".
type NetworkInformer interface {
	NetworkInfo() NetworkInfo
}
