package navlink

import "testing"

func TestMergePrefetch(t *testing.T) {
	enabled := true
	disabled := false

	tests := []struct {
		name        string
		defaults    PrefetchDefaults
		props       LinkProps
		enabled     bool
		respectSlow bool
	}{
		{
			name:        "props fall through to defaults",
			defaults:    PrefetchDefaults{Enabled: true, RespectSlowConnection: true},
			props:       LinkProps{},
			enabled:     true,
			respectSlow: true,
		},
		{
			name:        "nil prop is not explicit false",
			defaults:    PrefetchDefaults{Enabled: true, RespectSlowConnection: false},
			props:       LinkProps{Prefetch: nil, RespectSlowConnection: nil},
			enabled:     true,
			respectSlow: false,
		},
		{
			name:     "explicit false respected",
			defaults: PrefetchDefaults{Enabled: true},
			props:    LinkProps{Prefetch: &disabled},
			enabled:  false,
		},
		{
			name:     "explicit true over disabled default",
			defaults: PrefetchDefaults{Enabled: false},
			props:    LinkProps{Prefetch: &enabled},
			enabled:  true,
		},
		{
			name:     "noPrefetch opts out",
			defaults: PrefetchDefaults{Enabled: true},
			props:    LinkProps{NoPrefetch: true},
			enabled:  false,
		},
		{
			name:     "noPrefetch wins over explicit prefetch",
			defaults: PrefetchDefaults{Enabled: true},
			props:    LinkProps{NoPrefetch: true, Prefetch: &enabled},
			enabled:  false,
		},
		{
			name:        "respectSlow override",
			defaults:    PrefetchDefaults{Enabled: true, RespectSlowConnection: true},
			props:       LinkProps{RespectSlowConnection: &disabled},
			enabled:     true,
			respectSlow: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{Prefetch: tt.defaults}
			pc := cfg.mergePrefetch(tt.props)
			if pc.enabled != tt.enabled {
				t.Errorf("enabled = %v, want %v", pc.enabled, tt.enabled)
			}
			if pc.respectSlow != tt.respectSlow {
				t.Errorf("respectSlow = %v, want %v", pc.respectSlow, tt.respectSlow)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Prefetch.Enabled {
		t.Error("prefetch should be enabled by default")
	}
	if !cfg.Prefetch.RespectSlowConnection {
		t.Error("slow connections should be respected by default")
	}
	if cfg.Dev {
		t.Error("dev mode should be off by default")
	}
}

func TestWarnfRequiresDevAndLogger(t *testing.T) {
	// Must not panic with no logger in either mode.
	cfg := Config{Dev: true}
	cfg.warnf("conflict")
	cfg.debugf("failure")
}
