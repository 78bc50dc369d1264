package render

import (
	"github.com/RumbleDiscovery/bustache/internal/ast"
	"github.com/RumbleDiscovery/bustache/internal/value"
)

// renderSectioned implements spec.md §4.2.4: a block's effective
// semantics are directed by its tag kind (section, inversion, filter,
// loop) together with the resolved value's kind.
func (r *renderer) renderSectioned(kind ast.RefKind, blk ast.Block, val value.Ptr) error {
	switch kind {
	case ast.KindFilter:
		return r.runFilter(blk, val)
	case ast.KindLoop:
		return r.runLoop(blk, val)
	case ast.KindInversion:
		return r.runSectionOrInversion(blk, val, true)
	default:
		return r.runSectionOrInversion(blk, val, false)
	}
}

func (r *renderer) runSectionOrInversion(blk ast.Block, val value.Ptr, inverted bool) error {
	switch val.Kind() {
	case value.KindNull:
		if inverted {
			return r.renderList(blk.Contents)
		}
		return nil

	case value.KindAtom:
		truthy := val.(value.Atom).Test()
		if truthy != inverted {
			return r.renderList(blk.Contents)
		}
		return nil

	case value.KindObject:
		if inverted {
			return nil
		}
		return r.withObjectFrame(val.(value.Object), val, func() error {
			return r.renderList(blk.Contents)
		})

	case value.KindList:
		return r.runListSection(blk, val.(value.List), inverted)

	case value.KindLazyValue:
		if inverted {
			// A lazy value is never falsy without being invoked.
			return nil
		}
		view := &ast.View{Arena: r.ctx, Content: blk.Contents}
		nv, err := val.(value.LazyValue).Invoke(view)
		if err != nil {
			return err
		}
		return r.runSectionOrInversion(blk, nv, inverted)

	case value.KindLazyFormat:
		if inverted {
			// A lazy-format is never falsy.
			return nil
		}
		view := &ast.View{Arena: r.ctx, Content: blk.Contents}
		doc, err := val.(value.LazyFormat).Invoke(view)
		if err != nil {
			return err
		}
		return r.renderSubDocument(doc)

	default:
		return nil
	}
}

func (r *renderer) runListSection(blk ast.Block, list value.List, inverted bool) error {
	if list.Empty() {
		if inverted {
			return r.renderList(blk.Contents)
		}
		return nil
	}
	if inverted {
		return nil
	}
	return list.Iterate(func(elem value.Ptr) error {
		if obj, ok := elem.(value.Object); ok {
			return r.withObjectFrame(obj, elem, func() error {
				return r.renderList(blk.Contents)
			})
		}
		prevCursor := r.cursor
		r.cursor = elem
		err := r.renderList(blk.Contents)
		r.cursor = prevCursor
		return err
	})
}

// runFilter treats the resolved value as an atom: a filter section never
// pushes a scope frame, it only tests truthiness once.
func (r *renderer) runFilter(blk ast.Block, val value.Ptr) error {
	switch val.Kind() {
	case value.KindLazyValue:
		view := &ast.View{Arena: r.ctx, Content: blk.Contents}
		nv, err := val.(value.LazyValue).Invoke(view)
		if err != nil {
			return err
		}
		return r.runFilter(blk, nv)

	case value.KindLazyFormat:
		// Filtering a lazy-format runs the body once, unchanged: the
		// lazy is not invoked to produce a sub-template here.
		return r.renderList(blk.Contents)

	default:
		if testAsAtom(val) {
			return r.renderList(blk.Contents)
		}
		return nil
	}
}

// runLoop treats the resolved value as a list: null, atoms and objects
// are all coerced into a one-element list so the body still runs exactly
// once with that value as the element, per the loop extension.
func (r *renderer) runLoop(blk ast.Block, val value.Ptr) error {
	switch val.Kind() {
	case value.KindLazyValue:
		view := &ast.View{Arena: r.ctx, Content: blk.Contents}
		nv, err := val.(value.LazyValue).Invoke(view)
		if err != nil {
			return err
		}
		return r.runLoop(blk, nv)

	case value.KindLazyFormat:
		view := &ast.View{Arena: r.ctx, Content: blk.Contents}
		doc, err := val.(value.LazyFormat).Invoke(view)
		if err != nil {
			return err
		}
		return r.renderSubDocument(doc)

	case value.KindList:
		return r.runListSection(blk, val.(value.List), false)

	default:
		// Null, atoms and objects all lack iterate, so the body runs
		// exactly once with the cursor set to val, same as any other
		// non-list value.
		return r.runListSection(blk, value.Singleton(val), false)
	}
}

func testAsAtom(val value.Ptr) bool {
	if atom, ok := val.(value.Atom); ok {
		return atom.Test()
	}
	switch val.Kind() {
	case value.KindNull:
		return false
	case value.KindList:
		if l, ok := val.(value.List); ok {
			return !l.Empty()
		}
	}
	return true
}

func (r *renderer) withObjectFrame(obj value.Object, cursorVal value.Ptr, fn func() error) error {
	prevCursor := r.cursor
	r.cursor = cursorVal
	r.scope = append(r.scope, obj)
	err := fn()
	r.scope = r.scope[:len(r.scope)-1]
	r.cursor = prevCursor
	return err
}

// renderInheritanceBlock implements spec.md §4.2.6: wherever a `{{$name}}`
// ref is walked, the innermost active override chain entry naming it wins;
// absent an override, the block's own default contents render.
func (r *renderer) renderInheritanceBlock(blk ast.Block) error {
	for i := len(r.chain) - 1; i >= 0; i-- {
		entry := r.chain[i]
		body, ok := entry.Overriders[blk.Name]
		if !ok {
			continue
		}
		prevCtx := r.ctx
		r.ctx = entry.Arena
		err := r.renderList(body)
		r.ctx = prevCtx
		return err
	}
	return r.renderList(blk.Contents)
}
