package value

import (
	"io"
	"strconv"
)

// Bool is the built-in atom adapter for booleans.
type Bool bool

func (Bool) Kind() Kind { return KindAtom }
func (b Bool) Test() bool {
	return bool(b)
}
func (b Bool) Print(w io.Writer, _ string) error {
	_, err := io.WriteString(w, strconv.FormatBool(bool(b)))
	return err
}

// Str is the built-in atom adapter for strings. An empty string is falsy,
// per the Mustache spec's string-truthiness rule.
type Str string

func (Str) Kind() Kind { return KindAtom }
func (s Str) Test() bool {
	return len(s) > 0
}
func (s Str) Print(w io.Writer, spec string) error {
	if spec != "" {
		return DefaultPrinter.Print(w, string(s), spec)
	}
	_, err := io.WriteString(w, string(s))
	return err
}

// Number is the built-in atom adapter for arithmetic values. Printing is
// always delegated to a Printer (DefaultPrinter unless Printer is set),
// matching the spec's "external formatter" boundary.
type Number struct {
	V       any // int64, uint64 or float64
	Printer Printer
}

func (Number) Kind() Kind { return KindAtom }

func (n Number) Test() bool {
	switch v := n.V.(type) {
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	default:
		return false
	}
}

func (n Number) Print(w io.Writer, spec string) error {
	p := n.Printer
	if p == nil {
		p = DefaultPrinter
	}
	return p.Print(w, n.V, spec)
}
