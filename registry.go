package navlink

import (
	"fmt"
	"net/http"
)

// defaultPrefix is where the prefetch endpoint is mounted.
const defaultPrefix = "/_nav"

// Registry owns the application-wide link configuration and serves the
// signed prefetch endpoint.
//
// Internal links carry a data-prefetch attribute pointing at
// {prefix}/prefetch with their route descriptor encoded in the URL; the
// handler verifies the payload and asks the router to preload the route's
// components. Preload itself is best-effort: its failure is logged and
// swallowed, never reported to the client.
type Registry struct {
	cfg    Config
	enc    *Encoder
	router Router
	prefix string
	mux    *http.ServeMux

	// OnError is called for requests with malformed or tampered
	// payloads. Customize to handle errors appropriately for your
	// application.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// NewRegistry creates a registry with the given signing key.
// Panics if the encoder cannot be constructed.
func NewRegistry(cfg Config, router Router, key []byte) *Registry {
	enc, err := NewEncoder(key)
	if err != nil {
		panic(fmt.Sprintf("navlink: failed to create encoder: %v", err))
	}

	reg := &Registry{
		cfg:    cfg,
		enc:    enc,
		router: router,
		prefix: defaultPrefix,
		mux:    http.NewServeMux(),
	}
	reg.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		if IsPayloadError(err) {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		if IsNoRoute(err) {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Internal error", http.StatusInternalServerError)
	}
	reg.mux.HandleFunc(reg.prefix+"/prefetch", reg.handlePrefetch)
	return reg
}

// Config returns the registry's configuration (shared with components).
func (reg *Registry) Config() *Config {
	return &reg.cfg
}

// Encoder returns the registry's payload encoder.
func (reg *Registry) Encoder() *Encoder {
	return reg.enc
}

// PrefetchURL returns the signed endpoint URL for preloading loc.
// Returns "" if the location cannot be encoded.
func (reg *Registry) PrefetchURL(loc RouteLocation) string {
	if loc.IsZero() {
		return ""
	}
	encoded, err := reg.enc.Encode(loc, false)
	if err != nil {
		return ""
	}
	return reg.prefix + "/prefetch?p=" + encoded
}

// Handler returns the HTTP handler for the prefetch endpoint. Mount it at
// the registry prefix:
//
//	http.Handle("/_nav/", reg.Handler())
func (reg *Registry) Handler() http.Handler {
	return reg.mux
}

func (reg *Registry) handlePrefetch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	encoded := r.URL.Query().Get("p")
	if encoded == "" {
		reg.OnError(w, r, ErrBadPayload)
		return
	}

	var loc RouteLocation
	if err := reg.enc.Decode(encoded, false, &loc); err != nil {
		reg.OnError(w, r, wrapEncodingError(err))
		return
	}
	if loc.IsZero() {
		reg.OnError(w, r, ErrBadPayload)
		return
	}

	if reg.router != nil {
		if err := reg.router.PreloadRouteComponents(r.Context(), RouteTarget(loc)); err != nil {
			// Best-effort: never surfaced to the client.
			reg.cfg.debugf("route preload failed: %v", err)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
