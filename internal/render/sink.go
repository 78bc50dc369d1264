package render

import (
	"io"
	"strings"
)

// writeString is the single path by which the renderer emits bytes. It
// applies the pending-indent mechanism of spec.md §4.2.5 uniformly to
// both raw and escaped output: indent is armed on every newline and
// flushed lazily before the next non-empty write, so a standalone
// partial never emits a blank indented line.
func (r *renderer) writeString(s string, escape bool) error {
	for s != "" {
		if r.needsIndent && r.indent != "" {
			if _, err := io.WriteString(r.w, r.indent); err != nil {
				return err
			}
		}
		r.needsIndent = false

		var chunk string
		if nl := strings.IndexByte(s, '\n'); nl < 0 {
			chunk, s = s, ""
		} else {
			chunk, s = s[:nl+1], s[nl+1:]
			r.needsIndent = true
		}

		if escape {
			if err := r.escaper.Escape(r.w, chunk); err != nil {
				return err
			}
		} else if _, err := io.WriteString(r.w, chunk); err != nil {
			return err
		}
	}
	return nil
}
