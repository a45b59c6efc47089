package navlink

import (
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// hasScheme reports whether s carries a URI scheme, including the
// protocol-relative "//" form.
func hasScheme(s string) bool {
	return strings.HasPrefix(s, "//") || schemeRe.MatchString(s)
}

// ApplyTrailingSlash normalizes the path portion of s per policy.
//
// Strings carrying a scheme (mailto:, tel:, https:, protocol-relative
// "//") pass through unchanged. Query and fragment are preserved
// verbatim; only the portion before "?" and "#" is rewritten. The
// operation is idempotent: applying a policy twice yields the same
// result.
func ApplyTrailingSlash(s string, policy TrailingSlashPolicy) string {
	if policy == TrailingSlashNone || s == "" || hasScheme(s) {
		return s
	}

	path, suffix := s, ""
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path, suffix = path[:i], path[i:]
	}

	switch policy {
	case TrailingSlashAppend:
		if path != "" {
			path = strings.TrimRight(path, "/") + "/"
		}
	case TrailingSlashRemove:
		path = strings.TrimRight(path, "/")
		if path == "" && strings.HasPrefix(s, "/") {
			path = "/"
		}
	}
	return path + suffix
}

// ResolveRel picks the rel attribute for an external link.
//
// If noRel is set the result is empty (no rel attribute). Otherwise the
// first non-empty value among the explicit rel prop, the configured
// default, and the hardcoded "noopener noreferrer" (only when the link
// has an href) wins. Empty string inputs mean "use next fallback", never
// "emit empty rel".
func ResolveRel(noRel bool, rel, defaultRel string, hasHref bool) string {
	if noRel {
		return ""
	}
	if rel != "" {
		return rel
	}
	if defaultRel != "" {
		return defaultRel
	}
	if hasHref {
		return "noopener noreferrer"
	}
	return ""
}

// resolveTarget classifies a navigation target and derives its final href.
//
// Classification is checked in order, first match wins:
//
//	(a) explicit External prop          -> external
//	(b) non-self target attribute       -> external
//	(c) structured route descriptor     -> internal
//	(d) empty string                    -> external, no href
//	(e) string carrying a URI scheme    -> external
//	(f) otherwise                       -> internal
//
// Internal hrefs always come from the router; resolution failure degrades
// to no href rather than an error.
func resolveTarget(router Router, cfg *Config, props LinkProps) ResolvedTarget {
	target := normalizeTarget(props.To, cfg.TrailingSlash)

	externalByAttr := props.Target != "" && props.Target != "_self"

	var external bool
	switch {
	case props.External:
		external = true
	case externalByAttr:
		external = true
	case target.IsRoute():
		external = false
	case target.String() == "":
		external = true // renders no href attribute
	case hasScheme(target.String()):
		external = true
	default:
		external = false
	}

	if external {
		return ResolvedTarget{External: true, Href: externalHref(router, cfg, props, target, externalByAttr)}
	}

	if router == nil {
		return ResolvedTarget{}
	}
	route, err := router.Resolve(target)
	if err != nil || route == nil {
		return ResolvedTarget{}
	}
	return ResolvedTarget{Href: route.Href, Route: route}
}

// normalizeTarget applies the trailing-slash policy to a string target or
// to the Path of a structured target. Rewriting a structured target's
// path clears its Name: the router resolves by name with priority over
// path and would otherwise silently discard the rewrite.
func normalizeTarget(target LinkTarget, policy TrailingSlashPolicy) LinkTarget {
	if policy == TrailingSlashNone {
		return target
	}
	if target.IsRoute() {
		loc := target.Route()
		if loc.Path == "" {
			return target
		}
		loc.Path = ApplyTrailingSlash(loc.Path, policy)
		loc.Name = ""
		return RouteTarget(loc)
	}
	return PathTarget(ApplyTrailingSlash(target.String(), policy))
}

// externalHref derives the href for an externally-classified target.
func externalHref(router Router, cfg *Config, props LinkProps, target LinkTarget, externalByAttr bool) string {
	if target.IsRoute() {
		if router == nil {
			return ""
		}
		route, err := router.Resolve(target)
		if err != nil || route == nil {
			return ""
		}
		return route.Href
	}

	s := target.String()
	if s == "" {
		return ""
	}
	// Scheme-less strings forced external only by a non-self target
	// attribute stay on this origin: prefix the base path and re-run
	// trailing-slash normalization.
	if !hasScheme(s) && externalByAttr && !props.External {
		return ApplyTrailingSlash(joinBase(cfg.BaseURL, s), cfg.TrailingSlash)
	}
	return s
}

// joinBase prefixes path with the application base path.
func joinBase(base, path string) string {
	if base == "" || base == "/" {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

// isPathAncestor reports whether link is a path-segment prefix of
// current, for IsActive computation. The root path matches only itself.
func isPathAncestor(link, current string) bool {
	link = strings.TrimRight(link, "/")
	if link == "" {
		return strings.TrimRight(current, "/") == ""
	}
	if !strings.HasPrefix(current, link) {
		return false
	}
	rest := current[len(link):]
	return rest == "" || rest[0] == '/'
}
