package bustache

import (
	"github.com/RumbleDiscovery/bustache/internal/ast"
	"github.com/RumbleDiscovery/bustache/internal/value"
)

// View exposes a section's body to a LazyValue or LazyFormat callable,
// without exposing the internal arena representation directly. A callable
// invoked as a bare variable receives a nil *View.
type View struct {
	arena   *ast.Arena
	content ast.List
}

func newView(v *ast.View) *View {
	if v == nil {
		return nil
	}
	return &View{arena: v.Arena, content: v.Content}
}

// Text reconstructs an approximation of the original template source for
// this view's content. Classic string-in/string-out Mustache lambdas use
// this to get their section's raw body text.
func (v *View) Text() string {
	if v == nil {
		return ""
	}
	return ast.Reconstruct(v.arena, v.content)
}

// LazyValue is a user callable invoked in place of a variable or section
// value. view is nil when invoked as a bare variable; its result is
// classified the same way any other Go value handed to Render is.
type LazyValue func(view *View) (any, error)

// BustacheValue implements value.Compatible.
func (f LazyValue) BustacheValue() value.Ptr {
	return lazyValueAdapter(f)
}

type lazyValueAdapter LazyValue

func (lazyValueAdapter) Kind() value.Kind { return value.KindLazyValue }

func (f lazyValueAdapter) Invoke(v *ast.View) (value.Ptr, error) {
	out, err := f(newView(v))
	if err != nil {
		return nil, err
	}
	return value.Of(out), nil
}

// LazyFormat is a user callable that produces a whole sub-template,
// compiled into a Format, to be rendered in place of a variable or
// section — the classic Mustache section-lambda shape, generalized to
// hand back an already-compiled Format instead of raw text.
type LazyFormat func(view *View) (*Format, error)

// BustacheValue implements value.Compatible.
func (f LazyFormat) BustacheValue() value.Ptr {
	return lazyFormatAdapter(f)
}

type lazyFormatAdapter LazyFormat

func (lazyFormatAdapter) Kind() value.Kind { return value.KindLazyFormat }

func (f lazyFormatAdapter) Invoke(v *ast.View) (*ast.Document, error) {
	format, err := f(newView(v))
	if err != nil {
		return nil, err
	}
	if format == nil {
		return &ast.Document{Arena: ast.NewArena()}, nil
	}
	return format.doc, nil
}
