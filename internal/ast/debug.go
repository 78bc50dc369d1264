package ast

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable tree of doc's content to w, one line per
// content ref, indenting nested block bodies. It is a debugging aid, not
// part of the render path — grounded in the original engine's debug dumper.
func Dump(w io.Writer, doc *Document) {
	dumpList(w, doc.Arena, doc.Root, 0)
}

func dumpList(w io.Writer, a *Arena, list List, depth int) {
	prefix := strings.Repeat("  ", depth)
	for _, ref := range list {
		switch ref.Kind {
		case KindNull:
			fmt.Fprintf(w, "%snull\n", prefix)
		case KindText:
			t := a.Text(ref)
			fmt.Fprintf(w, "%stext %q\n", prefix, t.Data)
		case KindVarEscaped, KindVarRaw:
			v := a.Var(ref)
			if v.Spec != "" {
				fmt.Fprintf(w, "%svar(%s) %s:%s\n", prefix, ref.Kind, v.Name, v.Spec)
			} else {
				fmt.Fprintf(w, "%svar(%s) %s\n", prefix, ref.Kind, v.Name)
			}
		case KindPartial:
			p := a.PartialAt(ref)
			if p.Dynamic {
				fmt.Fprintf(w, "%spartial *%s indent=%q overriders=%d\n", prefix, p.Key, p.Indent, len(p.Overriders))
			} else {
				fmt.Fprintf(w, "%spartial %s indent=%q overriders=%d\n", prefix, p.Key, p.Indent, len(p.Overriders))
			}
		default:
			b := a.BlockAt(ref)
			if b.LookupKey != b.Name {
				fmt.Fprintf(w, "%s%s %s:%s\n", prefix, ref.Kind, b.Name, b.LookupKey)
			} else {
				fmt.Fprintf(w, "%s%s %s\n", prefix, ref.Kind, b.Name)
			}
			dumpList(w, a, b.Contents, depth+1)
		}
	}
}
