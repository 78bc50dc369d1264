// Package render implements the tree-walking renderer: it walks a
// Document against a data value and an optional partial-resolving
// Context, emitting bytes to a writer.
package render

import (
	"errors"
	"io"
	"strings"

	"github.com/RumbleDiscovery/bustache/internal/ast"
	"github.com/RumbleDiscovery/bustache/internal/value"
)

// DefaultMaxDepth bounds partial/lazy-format recursion and
// inheritance-chain depth when Options.MaxDepth is left at zero.
const DefaultMaxDepth = 1000

// ErrMaxDepth is returned when nested partial or lazy-format expansion
// exceeds the render's MaxDepth.
var ErrMaxDepth = errors.New("bustache: max render depth exceeded")

// Context resolves a partial name to its compiled document. It is
// consulted for both `{{>name}}` and `{{<name}}...{{/name}}` tags.
type Context interface {
	Lookup(name string) (*ast.Document, bool)
}

// Unresolved is consulted when an unqualified, single-segment key misses
// every scope frame. A false return behaves as if the key resolved to
// null.
type Unresolved func(key string) (value.Ptr, bool)

// Options configures one render call.
type Options struct {
	Context    Context
	Escape     Escaper
	Unresolved Unresolved
	MaxDepth   int
}

// Render walks doc against data, writing to w.
func Render(w io.Writer, doc *ast.Document, data any, opts Options) error {
	r := &renderer{
		w:          w,
		escaper:    opts.Escape,
		context:    opts.Context,
		unresolved: opts.Unresolved,
		maxDepth:   opts.MaxDepth,
		ctx:        doc.Arena,
	}
	if r.escaper == nil {
		r.escaper = HTMLEscaper{}
	}
	if r.maxDepth <= 0 {
		r.maxDepth = DefaultMaxDepth
	}

	root := value.Of(data)
	r.cursor = root
	if obj, ok := root.(value.Object); ok {
		r.scope = []value.Object{obj}
	} else {
		r.scope = []value.Object{emptyObject{}}
	}

	return r.renderList(doc.Root)
}

// renderer carries the per-call transient state described by spec.md
// §4.2.1: the active arena, the scope stack, the implicit cursor, the
// inheritance override chain, and the pending-indent state.
type renderer struct {
	w          io.Writer
	escaper    Escaper
	context    Context
	unresolved Unresolved
	maxDepth   int
	depth      int

	ctx    *ast.Arena
	scope  []value.Object
	cursor value.Ptr
	chain  []chainEntry

	indent      string
	needsIndent bool
}

type chainEntry struct {
	Overriders map[string]ast.List
	Arena      *ast.Arena
}

// emptyObject is the scope frame used when the render's root data is not
// itself an object.
type emptyObject struct{}

func (emptyObject) Kind() value.Kind            { return value.KindObject }
func (emptyObject) Get(string) (value.Ptr, bool) { return nil, false }

func (r *renderer) renderList(list ast.List) error {
	for _, ref := range list {
		if err := r.renderOne(ref); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) renderOne(ref ast.Ref) error {
	switch ref.Kind {
	case ast.KindNull:
		return nil
	case ast.KindText:
		return r.writeString(r.ctx.Text(ref).Data, false)
	case ast.KindVarEscaped:
		return r.renderVariable(ref, true)
	case ast.KindVarRaw:
		return r.renderVariable(ref, false)
	case ast.KindPartial:
		return r.renderPartial(ref)
	case ast.KindInheritance:
		return r.renderInheritanceBlock(r.ctx.BlockAt(ref))
	default:
		blk := r.ctx.BlockAt(ref)
		val, _ := r.resolve(blk.LookupKey)
		return r.renderSectioned(ref.Kind, blk, val)
	}
}

func (r *renderer) renderVariable(ref ast.Ref, escape bool) error {
	v := r.ctx.Var(ref)
	val, _ := r.resolve(v.Name)
	return r.emitValue(val, v.Spec, escape, nil)
}

// emitValue implements spec.md §4.2.3's dispatch on a resolved value's
// kind: a lazy-value is invoked (recursively, for a lazy-value that itself
// produces another lazy value) until a non-lazy value is reached, which is
// then printed through the external formatter; a lazy-format's document
// is rendered in place.
func (r *renderer) emitValue(val value.Ptr, spec string, escape bool, body *ast.View) error {
	switch val.Kind() {
	case value.KindLazyValue:
		lv := val.(value.LazyValue)
		nv, err := lv.Invoke(body)
		if err != nil {
			return err
		}
		return r.emitValue(nv, spec, escape, body)
	case value.KindLazyFormat:
		lf := val.(value.LazyFormat)
		doc, err := lf.Invoke(body)
		if err != nil {
			return err
		}
		return r.renderSubDocument(doc)
	default:
		return r.printAtom(val, spec, escape)
	}
}

// printAtom prints val if it is an Atom; null and aggregate kinds
// (object/list reached where a plain print was expected) print nothing,
// since neither has a scalar representation to hand the formatter.
func (r *renderer) printAtom(val value.Ptr, spec string, escape bool) error {
	atom, ok := val.(value.Atom)
	if !ok {
		return nil
	}
	var buf strings.Builder
	if err := atom.Print(&buf, spec); err != nil {
		return err
	}
	return r.writeString(buf.String(), escape)
}

// renderSubDocument enters another document's arena (a partial or a
// lazy-format's result), guarding against unbounded recursion.
func (r *renderer) renderSubDocument(doc *ast.Document) error {
	if doc == nil || doc.Empty() {
		return nil
	}
	r.depth++
	if r.depth > r.maxDepth {
		r.depth--
		return ErrMaxDepth
	}
	prevCtx := r.ctx
	r.ctx = doc.Arena
	err := r.renderList(doc.Root)
	r.ctx = prevCtx
	r.depth--
	return err
}

// resolve implements spec.md §4.2.2's dotted-name key resolution.
func (r *renderer) resolve(key string) (value.Ptr, bool) {
	if key == "." {
		return r.cursor, true
	}
	parts := strings.Split(key, ".")

	v, ok := r.lookupScope(parts[0])
	if !ok {
		if r.unresolved != nil {
			v, ok = r.unresolved(parts[0])
		}
		if !ok {
			return value.Null, false
		}
	}

	for _, seg := range parts[1:] {
		obj, isObj := v.(value.Object)
		if !isObj {
			return value.Null, false
		}
		nv, nok := obj.Get(seg)
		if !nok {
			return value.Null, false
		}
		v = nv
	}
	return v, true
}

func (r *renderer) lookupScope(name string) (value.Ptr, bool) {
	for i := len(r.scope) - 1; i >= 0; i-- {
		if v, ok := r.scope[i].Get(name); ok {
			return v, true
		}
	}
	return value.Null, false
}

// stringify renders val's scalar representation for use as a dynamic
// partial name; non-atoms contribute an empty name.
func (r *renderer) stringify(val value.Ptr) string {
	atom, ok := val.(value.Atom)
	if !ok {
		return ""
	}
	var b strings.Builder
	_ = atom.Print(&b, "")
	return b.String()
}
