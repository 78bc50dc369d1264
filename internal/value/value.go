// Package value implements the polymorphic value model the renderer walks:
// a small, closed set of "kinds" (null, atom, object, list, lazy-value,
// lazy-format), each with the operations relevant to it (test-truthy,
// print, get-by-key, iterate, invoke-lazy). User data of any shape is
// classified into this model either by reflection (the default, Of) or by
// implementing one of the kind interfaces directly.
package value

import (
	"io"

	"github.com/RumbleDiscovery/bustache/internal/ast"
)

// Kind classifies a Ptr into one of the six value-model categories.
type Kind uint8

const (
	KindNull Kind = iota
	KindAtom
	KindObject
	KindList
	KindLazyValue
	KindLazyFormat
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindAtom:
		return "atom"
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindLazyValue:
		return "lazy-value"
	case KindLazyFormat:
		return "lazy-format"
	default:
		return "invalid"
	}
}

// Ptr is the polymorphic handle every resolved value is represented as. Its
// Kind determines which of the Atom/Object/List/LazyValue/LazyFormat
// interfaces it is safe to type-assert to.
type Ptr interface {
	Kind() Kind
}

// Atom is a scalar value (bool, number, string) that can be tested for
// truthiness and printed.
type Atom interface {
	Ptr
	Test() bool
	Print(w io.Writer, spec string) error
}

// Object resolves sub-keys by name.
type Object interface {
	Ptr
	Get(key string) (Ptr, bool)
}

// List iterates its elements in adapter-defined order.
type List interface {
	Ptr
	Empty() bool
	Iterate(fn func(Ptr) error) error
}

// LazyValue is a user callable that produces a value at render time,
// optionally inspecting the section body it was invoked from.
type LazyValue interface {
	Ptr
	// Invoke is called with the body's ast.View when the lazy value is
	// the target of a section, or nil when it is a bare variable.
	Invoke(view *ast.View) (Ptr, error)
}

// LazyFormat is a user callable that produces a whole sub-template to be
// rendered in place, optionally inspecting the section body it replaces.
type LazyFormat interface {
	Ptr
	Invoke(view *ast.View) (*ast.Document, error)
}

// Compatible lets an adapter type (e.g. a tagged-union / sum type) present
// itself as a Ptr without being classified by reflection.
type Compatible interface {
	BustacheValue() Ptr
}

// nullT is the singleton null value.
type nullT struct{}

func (nullT) Kind() Kind { return KindNull }

// Null is the empty/unset value.
var Null Ptr = nullT{}
