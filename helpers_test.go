package navlink

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAnchorAttrs(t *testing.T) {
	tests := []struct {
		name   string
		state  LinkState
		expect map[string]any
	}{
		{
			name:   "full external state",
			state:  LinkState{Href: "https://example.com", Rel: "noopener noreferrer", Target: "_blank"},
			expect: map[string]any{"href": "https://example.com", "rel": "noopener noreferrer", "target": "_blank"},
		},
		{
			name:   "no href renders no attribute",
			state:  LinkState{},
			expect: map[string]any{},
		},
		{
			name:   "internal link",
			state:  LinkState{Href: "/docs"},
			expect: map[string]any{"href": "/docs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := AnchorAttrs(tt.state)
			if len(attrs) != len(tt.expect) {
				t.Fatalf("AnchorAttrs() = %v, want %v", attrs, tt.expect)
			}
			for k, v := range tt.expect {
				if attrs[k] != v {
					t.Errorf("attrs[%q] = %v, want %v", k, attrs[k], v)
				}
			}
		})
	}
}

func TestRenderHelper(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	if err := Render(rec, req, textBody("<span>ok</span>")); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", got)
	}
	if rec.Body.String() != "<span>ok</span>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestAnchorEscapesAttributes(t *testing.T) {
	link := newTestLink(DefaultConfig(), &StubRouter{}, nil)

	html := renderToString(t, link.Render(LinkProps{
		To:       PathTarget(`https://example.com/?q="><script>`),
		External: true,
	}, nil))

	if strings.Contains(html, `"><script>`) {
		t.Errorf("attribute value not escaped: %s", html)
	}
	if !strings.Contains(html, "&#34;&gt;&lt;script&gt;") {
		t.Errorf("expected escaped attribute value: %s", html)
	}
}
