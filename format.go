// Package bustache is a compiler and renderer for an extended
// Mustache-family template language: standard Mustache sections,
// inversions, partials and comments, plus filter sections, loop
// sections, template inheritance, dynamic partial names, section
// aliases and per-variable format specs.
package bustache

import (
	"bytes"
	"io"

	"github.com/RumbleDiscovery/bustache/internal/ast"
	"github.com/RumbleDiscovery/bustache/internal/compiler"
	"github.com/RumbleDiscovery/bustache/internal/value"
)

func init() {
	// Wires the value package's lazy-format recompilation hook to the
	// real compiler, without internal/value importing internal/compiler
	// directly (which would cycle back through internal/render).
	value.Recompile = func(source string) (*ast.Document, error) {
		return compiler.Compile(source, compiler.Options{})
	}
}

// Format is an immutable compiled template. A *Format is safe for
// concurrent Render/ToString calls; each call has its own transient
// render state.
type Format struct {
	doc  *ast.Document
	text []byte
}

// Text returns the format's owned copy of its source text, or nil if it
// was compiled without WithCopyText.
func (f *Format) Text() []byte {
	return f.text
}

// Dump writes a debugging pretty-print of the format's compiled structure
// to w (content ref kinds, indices, and keys).
func (f *Format) Dump(w io.Writer) {
	ast.Dump(w, f.doc)
}

// Empty reports whether f's root content list is empty.
func (f *Format) Empty() bool {
	return f.doc.Empty()
}

// CompileOption configures Compile/CompileReader.
type CompileOption func(*compiler.Options)

// WithCopyText consolidates the compiled format's text spans into one
// freshly allocated string, instead of letting them alias the source
// string/bytes passed to Compile, and keeps an owned copy of the source
// as Format.Text.
func WithCopyText(copy bool) CompileOption {
	return func(o *compiler.Options) { o.CopyText = copy }
}

// Compile parses source into a Format.
func Compile(source string, opts ...CompileOption) (*Format, error) {
	var o compiler.Options
	for _, opt := range opts {
		opt(&o)
	}
	doc, err := compiler.Compile(source, o)
	if err != nil {
		return nil, err
	}
	f := &Format{doc: doc}
	if o.CopyText {
		f.text = []byte(source)
	}
	return f, nil
}

// CompileReader reads all of r and compiles it.
func CompileReader(r io.Reader, opts ...CompileOption) (*Format, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return Compile(buf.String(), opts...)
}
