package bustache

import (
	"io"
	"strings"

	"github.com/RumbleDiscovery/bustache/internal/ast"
	"github.com/RumbleDiscovery/bustache/internal/render"
	"github.com/RumbleDiscovery/bustache/internal/value"
)

// Escaper lets a caller override how `{{escaped}}` variables are written;
// HTMLEscaper is the default.
type Escaper interface {
	Escape(w io.Writer, s string) error
}

// HTMLEscaper substitutes & < > " \ with their HTML entity equivalents.
type HTMLEscaper = render.HTMLEscaper

// NoEscape passes escaped-variable output through unchanged.
type NoEscape = render.NoEscape

// ContextLookup resolves a partial name to its compiled Format, used for
// both `{{>name}}` and `{{<name}}...{{/name}}` tags.
type ContextLookup interface {
	Lookup(name string) (*Format, bool)
}

// MapContext is a ContextLookup backed directly by a map of name to
// Format.
type MapContext map[string]*Format

func (m MapContext) Lookup(name string) (*Format, bool) {
	f, ok := m[name]
	return f, ok
}

// ChainContext tries each ContextLookup in order and returns the first
// hit, generalizing the teacher's FileProvider/StaticProvider pairing
// into an arbitrary chain.
type ChainContext []ContextLookup

func (c ChainContext) Lookup(name string) (*Format, bool) {
	for _, ctx := range c {
		if f, ok := ctx.Lookup(name); ok {
			return f, true
		}
	}
	return nil, false
}

type contextAdapter struct{ ctx ContextLookup }

func (a contextAdapter) Lookup(name string) (*ast.Document, bool) {
	f, ok := a.ctx.Lookup(name)
	if !ok || f == nil {
		return nil, false
	}
	return f.doc, true
}

// RenderOption configures Render/ToString.
type RenderOption func(*render.Options)

// WithContext supplies the partial resolver consulted for `{{>name}}` and
// `{{<parent}}` tags. Without one, every partial renders as empty.
func WithContext(ctx ContextLookup) RenderOption {
	return func(o *render.Options) {
		if ctx != nil {
			o.Context = contextAdapter{ctx: ctx}
		}
	}
}

// WithEscape overrides the escaped-variable sink.
func WithEscape(e Escaper) RenderOption {
	return func(o *render.Options) { o.Escape = e }
}

// WithUnresolved supplies a fallback consulted when an unqualified,
// single-segment key misses every scope frame. Its return value is
// classified the same way render data is.
func WithUnresolved(fn func(key string) (any, bool)) RenderOption {
	return func(o *render.Options) {
		o.Unresolved = func(key string) (value.Ptr, bool) {
			v, ok := fn(key)
			if !ok {
				return nil, false
			}
			return value.Of(v), true
		}
	}
}

// WithMaxDepth overrides the default recursion guard (render.DefaultMaxDepth)
// on partial/lazy-format expansion and inheritance-chain depth.
func WithMaxDepth(n int) RenderOption {
	return func(o *render.Options) { o.MaxDepth = n }
}

// Render walks f against data, writing to w.
func Render(w io.Writer, f *Format, data any, opts ...RenderOption) error {
	var o render.Options
	for _, opt := range opts {
		opt(&o)
	}
	return render.Render(w, f.doc, data, o)
}

// ToString renders f against data and returns the result as a string.
func ToString(f *Format, data any, opts ...RenderOption) (string, error) {
	var b strings.Builder
	if err := Render(&b, f, data, opts...); err != nil {
		return "", err
	}
	return b.String(), nil
}
