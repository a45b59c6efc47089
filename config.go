package navlink

import "github.com/sirupsen/logrus"

// Config holds application-wide link behavior, fixed at configuration time.
type Config struct {
	// BaseURL is the application base path prefixed onto scheme-less
	// strings that are external only by target attribute.
	BaseURL string

	// TrailingSlash is applied to string targets and to the Path field
	// of structured targets. See TrailingSlashPolicy.
	TrailingSlash TrailingSlashPolicy

	// ExternalRel is the default rel for external links. Empty falls
	// through to the hardcoded "noopener noreferrer" default.
	ExternalRel string

	// Prefetch holds component-wide prefetch defaults, overridable per
	// link instance via LinkProps.
	Prefetch PrefetchDefaults

	// Dev enables configuration-conflict warnings. Conflicts are never
	// fatal; they are resolved by documented precedence rules.
	Dev bool

	// Logger receives dev warnings and best-effort prefetch failure
	// logs. Nil disables logging entirely.
	Logger *logrus.Logger
}

// PrefetchDefaults are the component-wide prefetch settings.
type PrefetchDefaults struct {
	// Enabled turns viewport-driven prefetch on for all links.
	Enabled bool

	// RespectSlowConnection disables prefetch when the network reports
	// saveData or a cellular-generation effective type such as "2g".
	RespectSlowConnection bool
}

// DefaultConfig returns the default configuration: no base URL, no
// trailing-slash rewriting, prefetch enabled with slow-connection respect.
func DefaultConfig() Config {
	return Config{
		Prefetch: PrefetchDefaults{
			Enabled:               true,
			RespectSlowConnection: true,
		},
	}
}

// prefetchConfig is the per-instance merge of props over defaults.
type prefetchConfig struct {
	enabled     bool
	respectSlow bool
}

// mergePrefetch merges per-instance props over the component-wide
// defaults. Nil prop values fall through to defaults; explicit false is
// respected. NoPrefetch is an opt-out and holds even when an explicit
// Prefetch prop is also set.
func (c *Config) mergePrefetch(props LinkProps) prefetchConfig {
	pc := prefetchConfig{
		enabled:     c.Prefetch.Enabled,
		respectSlow: c.Prefetch.RespectSlowConnection,
	}
	if props.Prefetch != nil {
		pc.enabled = *props.Prefetch
	}
	if props.NoPrefetch {
		pc.enabled = false
	}
	if props.RespectSlowConnection != nil {
		pc.respectSlow = *props.RespectSlowConnection
	}
	return pc
}

// warnf logs a dev-build configuration warning. No-op outside dev mode
// or without a logger.
func (c *Config) warnf(format string, args ...any) {
	if !c.Dev || c.Logger == nil {
		return
	}
	c.Logger.Warnf("navlink: "+format, args...)
}

// debugf logs a swallowed best-effort failure. No-op without a logger.
func (c *Config) debugf(format string, args ...any) {
	if c.Logger == nil {
		return
	}
	c.Logger.Debugf("navlink: "+format, args...)
}
