package navlink

import (
	"context"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response.
//
// Sets Content-Type to text/html and renders the component using the
// request's context:
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    navlink.Render(w, r, link.Render(props, nil))
//	}
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(r.Context(), w)
}

// AnchorAttrs returns the resolved anchor attributes for use directly in
// templ templates:
//
//	<a { navlink.AnchorAttrs(state)... }>Docs</a>
//
// Links without an href render no href attribute.
func AnchorAttrs(st LinkState) templ.Attributes {
	attrs := templ.Attributes{}
	if st.Href != "" {
		attrs["href"] = st.Href
	}
	if st.Rel != "" {
		attrs["rel"] = st.Rel
	}
	if st.Target != "" {
		attrs["target"] = st.Target
	}
	return attrs
}

// anchor renders an <a> element for the resolved state. class and
// prefetchURL are only set for internal links.
func anchor(st LinkState, props LinkProps, class, prefetchURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<a")
		if st.Href != "" {
			writeAttr(&sb, "href", st.Href)
		}
		if st.Rel != "" {
			writeAttr(&sb, "rel", st.Rel)
		}
		if st.Target != "" {
			writeAttr(&sb, "target", st.Target)
		}
		if class != "" {
			writeAttr(&sb, "class", class)
		}
		if prefetchURL != "" {
			writeAttr(&sb, "data-prefetch", prefetchURL)
		}
		sb.WriteString(">")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		if props.Body != nil {
			if err := props.Body.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</a>")
		return err
	})
}

// writeAttr appends an escaped attribute to the builder.
func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteString(" ")
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(html.EscapeString(value))
	sb.WriteString(`"`)
}
