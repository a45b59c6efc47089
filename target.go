package navlink

import "net/url"

// TrailingSlashPolicy controls how resolved paths are normalized.
//
// The policy is fixed at application configuration time and applied
// uniformly to string-shaped targets and to the Path field of structured
// targets. Named-route targets are never rewritten, since a name already
// fully determines the path.
type TrailingSlashPolicy string

const (
	// TrailingSlashNone leaves paths untouched. This is the default.
	TrailingSlashNone TrailingSlashPolicy = ""

	// TrailingSlashAppend ensures paths end in exactly one slash.
	TrailingSlashAppend TrailingSlashPolicy = "append"

	// TrailingSlashRemove strips trailing slashes (the root path stays "/").
	TrailingSlashRemove TrailingSlashPolicy = "remove"
)

// RouteLocation is a structured route descriptor.
//
// Either Name or Path identifies the route. When both are set, the
// router resolves by Name with priority over Path.
type RouteLocation struct {
	Name  string     `msgpack:"n,omitempty" json:"name,omitempty"`
	Path  string     `msgpack:"p,omitempty" json:"path,omitempty"`
	Query url.Values `msgpack:"q,omitempty" json:"query,omitempty"`
	Hash  string     `msgpack:"h,omitempty" json:"hash,omitempty"`
}

// IsZero returns true if the location identifies no route.
func (l RouteLocation) IsZero() bool {
	return l.Name == "" && l.Path == "" && len(l.Query) == 0 && l.Hash == ""
}

// LinkTarget is a navigation target: either a raw string path/URL or a
// structured RouteLocation.
//
// Construct with PathTarget or RouteTarget. The zero value behaves like
// an empty string target (renders no href).
type LinkTarget struct {
	raw   string
	route *RouteLocation
}

// PathTarget creates a target from a raw string path or URL.
func PathTarget(raw string) LinkTarget {
	return LinkTarget{raw: raw}
}

// RouteTarget creates a target from a structured route descriptor.
func RouteTarget(route RouteLocation) LinkTarget {
	return LinkTarget{route: &route}
}

// IsRoute returns true if the target is a structured route descriptor.
func (t LinkTarget) IsRoute() bool {
	return t.route != nil
}

// Route returns the structured descriptor, or the zero RouteLocation for
// string targets.
func (t LinkTarget) Route() RouteLocation {
	if t.route == nil {
		return RouteLocation{}
	}
	return *t.route
}

// String returns the raw string form, or "" for structured targets.
func (t LinkTarget) String() string {
	return t.raw
}

// ResolvedTarget is the outcome of classifying and resolving a LinkTarget.
//
// External implies Href is a plain string (possibly empty, meaning the
// link renders no href attribute). Internal targets derive Href through
// the router; Route is set when resolution succeeded.
type ResolvedTarget struct {
	External bool
	Href     string
	Route    *ResolvedRoute
}

// HasHref returns true if the target resolved to a navigable href.
func (rt ResolvedTarget) HasHref() bool {
	return rt.Href != ""
}
