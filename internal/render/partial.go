package render

import "github.com/RumbleDiscovery/bustache/internal/ast"

// renderPartial implements spec.md §4.2.5. It covers both `{{>name}}` and
// `{{<parent}}...{{/parent}}`, which the compiler unifies into one
// ast.Partial shape distinguished only by a (possibly empty) Overriders map.
func (r *renderer) renderPartial(ref ast.Ref) error {
	p := r.ctx.PartialAt(ref)

	name := p.Key
	if p.Dynamic {
		val, _ := r.resolve(p.Key)
		name = r.stringify(val)
	}

	if r.context == nil {
		return nil
	}
	doc, ok := r.context.Lookup(name)
	if !ok || doc == nil || doc.Empty() {
		return nil
	}

	prevIndent := r.indent
	r.indent += p.Indent
	if p.Indent != "" {
		r.needsIndent = true
	}

	chainLen := len(r.chain)
	if len(p.Overriders) > 0 {
		r.chain = append(r.chain, chainEntry{Overriders: p.Overriders, Arena: r.ctx})
	}

	err := r.renderSubDocument(doc)

	r.chain = r.chain[:chainLen]
	r.indent = prevIndent
	return err
}
