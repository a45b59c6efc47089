package navlink

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/navlink-go/navlink/lib/viewport"
)

// LinkProps configure a single rendered link. Tri-state *bool fields fall
// through to the component-wide defaults when nil; explicit false is
// respected.
type LinkProps struct {
	// To is the navigation target: a raw string or a structured route.
	To LinkTarget

	// External forces a full-page navigation regardless of target shape.
	External bool

	// Target is the anchor target attribute. Any non-self value makes
	// the link external and suppresses prefetch.
	Target string

	// Rel overrides the rel attribute for external links. NoRel
	// suppresses rel entirely; when both are set NoRel wins.
	Rel   string
	NoRel bool

	// Prefetch overrides the component-wide prefetch default.
	// NoPrefetch is an explicit opt-out and holds even when Prefetch is
	// also set.
	Prefetch   *bool
	NoPrefetch bool

	// RespectSlowConnection overrides the slow-connection gate.
	RespectSlowConnection *bool

	// Replace selects history-replace over history-push for Navigate.
	Replace bool

	// Class and the state classes are merged onto internal anchors.
	Class            string
	ActiveClass      string
	ExactActiveClass string
	PrefetchedClass  string

	// Body is rendered inside the anchor. Optional.
	Body templ.Component

	// Custom, when set, takes over rendering entirely: it receives the
	// resolved LinkState and produces the markup itself.
	Custom RenderFunc
}

// RenderFunc is a caller-supplied rendering strategy for custom mode.
type RenderFunc func(state LinkState) templ.Component

// LinkState is the fully-resolved view of one link, handed to custom
// render strategies and usable from templ templates via AnchorAttrs.
type LinkState struct {
	Href          string
	Route         *ResolvedRoute
	Rel           string
	Target        string
	External      bool
	IsActive      bool
	IsExactActive bool
	Prefetched    bool

	// Navigate triggers programmatic navigation to Href, honoring the
	// Replace prop. Returns ErrNoNavigator without a Navigator and
	// ErrNoRoute when the link resolved to no href.
	Navigate func(ctx context.Context) error
}

// Deps are the host collaborators for a Link. Any of them may be nil;
// missing collaborators degrade the affected behavior (no prefetch, no
// active state, no navigation) without errors.
type Deps[E comparable] struct {
	Router    Router
	Navigator Navigator
	Lifecycle Lifecycle
	Hooks     Hooks
	Idle      IdleScheduler
	Viewport  *viewport.Registry[E]
	Network   NetworkInformer
}

// Link is the smart hyperlink component. Construct once per application
// with NewLink; every method is safe for concurrent use.
type Link[E comparable] struct {
	cfg  *Config
	reg  *Registry
	deps Deps[E]
}

// NewLink creates a link component bound to reg's configuration and the
// given collaborators. Panics if reg is nil, matching registry misuse
// handling elsewhere in the package.
func NewLink[E comparable](reg *Registry, deps Deps[E]) *Link[E] {
	if reg == nil {
		panic("navlink: registry is required")
	}
	return &Link[E]{cfg: reg.Config(), reg: reg, deps: deps}
}

// ResolveTarget classifies props.To and derives the final href. Pure with
// respect to link state; re-invoke on prop change.
func (l *Link[E]) ResolveTarget(props LinkProps) ResolvedTarget {
	l.warnConflicts(props)
	return resolveTarget(l.deps.Router, l.cfg, props)
}

// State resolves the complete LinkState for props. pf may be nil when the
// link is not mounted (or prefetch never armed).
func (l *Link[E]) State(props LinkProps, pf *Prefetcher[E]) LinkState {
	rt := l.ResolveTarget(props)
	st := LinkState{
		Href:     rt.Href,
		Route:    rt.Route,
		Target:   props.Target,
		External: rt.External,
	}
	if rt.External {
		st.Rel = ResolveRel(props.NoRel, props.Rel, l.cfg.ExternalRel, rt.HasHref())
	}
	if rt.Route != nil && l.deps.Router != nil {
		if cur := l.deps.Router.Current(); cur != nil {
			st.IsExactActive = cur.Path == rt.Route.Path
			st.IsActive = st.IsExactActive || isPathAncestor(rt.Route.Path, cur.Path)
		}
	}
	if pf != nil {
		st.Prefetched = pf.Prefetched()
	}

	href, replace, nav := rt.Href, props.Replace, l.deps.Navigator
	st.Navigate = func(ctx context.Context) error {
		if nav == nil {
			return ErrNoNavigator
		}
		if href == "" {
			return ErrNoRoute
		}
		return nav.Navigate(ctx, href, replace)
	}
	return st
}

// Mount arms the prefetch scheduler for a rendered link rooted at el and
// returns its Prefetcher. Call Cancel on the result when the link
// unmounts. The returned Prefetcher is inert when arming conditions do
// not hold.
func (l *Link[E]) Mount(props LinkProps, el E) *Prefetcher[E] {
	p := &Prefetcher[E]{link: l, props: props}
	p.arm(el)
	return p
}

// Render produces the link's markup: the custom strategy when set, a
// plain anchor for external targets, or a router-aware anchor for
// internal ones. pf may be nil.
func (l *Link[E]) Render(props LinkProps, pf *Prefetcher[E]) templ.Component {
	st := l.State(props, pf)
	if props.Custom != nil {
		return props.Custom(st)
	}
	if st.External {
		return anchor(st, props, "", "")
	}
	return anchor(st, props, l.classes(st, props), l.prefetchURL(st))
}

// classes merges the static class with active and prefetched indicators.
func (l *Link[E]) classes(st LinkState, props LinkProps) string {
	parts := make([]string, 0, 4)
	if props.Class != "" {
		parts = append(parts, props.Class)
	}
	if st.IsActive && props.ActiveClass != "" {
		parts = append(parts, props.ActiveClass)
	}
	if st.IsExactActive && props.ExactActiveClass != "" {
		parts = append(parts, props.ExactActiveClass)
	}
	if st.Prefetched && props.PrefetchedClass != "" {
		parts = append(parts, props.PrefetchedClass)
	}
	return strings.Join(parts, " ")
}

// prefetchURL returns the signed prefetch-endpoint URL for an internal
// link, emitted as a data attribute for the front-end driver.
func (l *Link[E]) prefetchURL(st LinkState) string {
	if st.Route == nil {
		return ""
	}
	return l.reg.PrefetchURL(RouteLocation{Name: st.Route.Name, Path: st.Route.Path})
}

// warnConflicts logs dev-build warnings for mutually exclusive props.
// Conflicts are resolved by precedence, never thrown.
func (l *Link[E]) warnConflicts(props LinkProps) {
	if props.NoRel && props.Rel != "" {
		l.cfg.warnf("rel and noRel are mutually exclusive; noRel wins")
	}
	if props.NoPrefetch && props.Prefetch != nil && *props.Prefetch {
		l.cfg.warnf("prefetch and noPrefetch are mutually exclusive; noPrefetch wins")
	}
}
