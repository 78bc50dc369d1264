package ast

import "strings"

// Reconstruct rebuilds an approximation of the original template source
// for a content list, re-emitting `{{...}}` tags for variables and blocks.
// It is used to hand a section's raw body text back to a classic
// string-in/string-out lambda, generalizing the teacher's
// getElementText/getSectionText helpers (mustache.go).
func Reconstruct(a *Arena, list List) string {
	var b strings.Builder
	reconstructList(&b, a, list)
	return b.String()
}

func reconstructList(b *strings.Builder, a *Arena, list List) {
	for _, ref := range list {
		reconstructOne(b, a, ref)
	}
}

func reconstructOne(b *strings.Builder, a *Arena, ref Ref) {
	switch ref.Kind {
	case KindNull:
		return
	case KindText:
		b.WriteString(a.Text(ref).Data)
	case KindVarEscaped:
		v := a.Var(ref)
		b.WriteString("{{")
		b.WriteString(keyWithSpec(v))
		b.WriteString("}}")
	case KindVarRaw:
		v := a.Var(ref)
		b.WriteString("{{&")
		b.WriteString(keyWithSpec(v))
		b.WriteString("}}")
	case KindPartial:
		p := a.PartialAt(ref)
		b.WriteString("{{>")
		if p.Dynamic {
			b.WriteByte('*')
		}
		b.WriteString(p.Key)
		b.WriteString("}}")
	default:
		blk := a.BlockAt(ref)
		sigil := blockSigil(ref.Kind)
		b.WriteString("{{")
		b.WriteByte(sigil)
		b.WriteString(blk.Name)
		if blk.LookupKey != blk.Name {
			b.WriteByte(':')
			b.WriteString(blk.LookupKey)
		}
		b.WriteString("}}")
		reconstructList(b, a, blk.Contents)
		b.WriteString("{{/")
		b.WriteString(blk.Name)
		b.WriteString("}}")
	}
}

func keyWithSpec(v Variable) string {
	if v.Spec == "" {
		return v.Name
	}
	return v.Name + ":" + v.Spec
}

func blockSigil(k RefKind) byte {
	switch k {
	case KindSection:
		return '#'
	case KindInversion:
		return '^'
	case KindFilter:
		return '?'
	case KindLoop:
		return '*'
	case KindInheritance:
		return '$'
	default:
		return '#'
	}
}
