package value

import (
	"fmt"
	"io"
	"strconv"
)

// Printer is the external formatting facility the core delegates numeric
// and user-type printing to. The renderer never formats a Number itself;
// it always goes through one of these, honoring the spec string (if any)
// taken from a variable's `{{key:spec}}` suffix.
type Printer interface {
	Print(w io.Writer, v any, spec string) error
}

// DefaultPrinter formats numbers with Go's fmt verb grammar when a spec is
// given (e.g. spec ".2f" formats as "%.2f"), and with a compact default
// representation otherwise.
var DefaultPrinter Printer = defaultPrinter{}

type defaultPrinter struct{}

func (defaultPrinter) Print(w io.Writer, v any, spec string) error {
	if spec != "" {
		_, err := fmt.Fprintf(w, "%"+spec, v)
		return err
	}
	switch n := v.(type) {
	case float32:
		_, err := io.WriteString(w, strconv.FormatFloat(float64(n), 'g', -1, 32))
		return err
	case float64:
		_, err := io.WriteString(w, strconv.FormatFloat(n, 'g', -1, 64))
		return err
	default:
		_, err := fmt.Fprint(w, v)
		return err
	}
}
