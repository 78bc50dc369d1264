// Package ast defines the compact, arena-backed intermediate representation
// produced by the compiler and walked by the renderer.
//
// Rather than a pointer-linked tree, the AST is four parallel append-only
// tables (texts, variables, blocks, partials) addressed by small (kind,
// index) handles called content refs. This keeps each node small, avoids
// recursive deallocation, and lets a compiled Document be copied or shared
// cheaply.
package ast

// RefKind identifies which arena table a Ref points into.
type RefKind uint8

const (
	// KindNull is the empty/unset sentinel content ref.
	KindNull RefKind = iota
	KindText
	KindVarEscaped
	KindVarRaw
	KindSection
	KindInversion
	KindFilter
	KindLoop
	KindInheritance
	KindPartial
)

func (k RefKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindVarEscaped:
		return "var_escaped"
	case KindVarRaw:
		return "var_raw"
	case KindSection:
		return "section"
	case KindInversion:
		return "inversion"
	case KindFilter:
		return "filter"
	case KindLoop:
		return "loop"
	case KindInheritance:
		return "inheritance"
	case KindPartial:
		return "partial"
	default:
		return "invalid"
	}
}

// IsBlock reports whether k is one of the section-like block kinds that
// carry a body (section, inversion, filter, loop, inheritance).
func (k RefKind) IsBlock() bool {
	switch k {
	case KindSection, KindInversion, KindFilter, KindLoop, KindInheritance:
		return true
	default:
		return false
	}
}

// Ref is a compact (kind, index) handle identifying one AST node.
type Ref struct {
	Kind  RefKind
	Index int
}

// Null is the empty/unset content ref.
var Null = Ref{Kind: KindNull}

// IsNull reports whether r is the null sentinel.
func (r Ref) IsNull() bool { return r.Kind == KindNull }

// List is an ordered sequence of content refs, the building block of a
// Document's root content and of every block's body.
type List []Ref

// TextSpan is a view into the template's stable source buffer.
type TextSpan struct {
	Data string
}

// Variable is a `{{name}}` / `{{{name}}}` / `{{&name}}` tag, optionally
// carrying a format spec after a `:` separator (e.g. `{{n:.2f}}`).
type Variable struct {
	Name string
	Spec string // format spec suffix, empty if none was present
}

// Block is the payload shared by section, inversion, filter, loop and
// inheritance content refs.
//
// Name is the section name used to match the closing `/name` tag.
// LookupKey is the key actually resolved against the data model; it differs
// from Name only when the template uses a section alias
// (`{{#name:alias}}...{{/name}}`).
type Block struct {
	Name      string
	LookupKey string
	Contents  List
}

// Partial is a `{{>name}}` or `{{<name}}...{{/name}}` content ref.
//
// If Dynamic is true, Key is an expression to resolve against the data
// model at render time (the `*` dynamic-partial-name extension); otherwise
// Key is the literal partial name.
//
// Overriders holds the `{{$block}}...{{/block}}` entries collected from an
// inheritance-parent body (`{{<name}}...{{/name}}`), keyed by block name. It
// is nil for a plain `{{>name}}` partial.
type Partial struct {
	Key        string
	Dynamic    bool
	Indent     string
	Overriders map[string]List
}

// Arena is the immutable-after-compile set of four append-only tables that
// back every Document produced by the compiler.
type Arena struct {
	Texts     []TextSpan
	Variables []Variable
	Blocks    []Block
	Partials  []Partial
}

// NewArena returns an empty arena ready for the compiler to populate.
func NewArena() *Arena {
	return &Arena{}
}

// AddText appends a text span and returns its content ref.
func (a *Arena) AddText(data string) Ref {
	a.Texts = append(a.Texts, TextSpan{Data: data})
	return Ref{Kind: KindText, Index: len(a.Texts) - 1}
}

// AddVariable appends a variable and returns a content ref of the given kind
// (KindVarEscaped or KindVarRaw).
func (a *Arena) AddVariable(kind RefKind, v Variable) Ref {
	a.Variables = append(a.Variables, v)
	return Ref{Kind: kind, Index: len(a.Variables) - 1}
}

// AddBlock appends a block and returns a content ref of the given kind
// (KindSection, KindInversion, KindFilter, KindLoop or KindInheritance).
func (a *Arena) AddBlock(kind RefKind, b Block) Ref {
	a.Blocks = append(a.Blocks, b)
	return Ref{Kind: kind, Index: len(a.Blocks) - 1}
}

// AddPartial appends a partial and returns its content ref.
func (a *Arena) AddPartial(p Partial) Ref {
	a.Partials = append(a.Partials, p)
	return Ref{Kind: KindPartial, Index: len(a.Partials) - 1}
}

// Text returns the text span for ref. ref.Kind is not checked: ref.Index is
// used as an index into Texts, and it panics if the index is out of range.
func (a *Arena) Text(ref Ref) TextSpan {
	return a.Texts[ref.Index]
}

// Var returns the variable for ref. ref.Kind is not checked: ref.Index is
// used as an index into Variables, and it panics if the index is out of
// range.
func (a *Arena) Var(ref Ref) Variable {
	return a.Variables[ref.Index]
}

// BlockAt returns the block payload for ref (section/inversion/filter/
// loop/inheritance). ref.Kind is not checked: ref.Index is used as an
// index into Blocks, and it panics if the index is out of range.
func (a *Arena) BlockAt(ref Ref) Block {
	return a.Blocks[ref.Index]
}

// PartialAt returns the partial payload for ref. ref.Kind is not checked:
// ref.Index is used as an index into Partials, and it panics if the index
// is out of range.
func (a *Arena) PartialAt(ref Ref) Partial {
	return a.Partials[ref.Index]
}
