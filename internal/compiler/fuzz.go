// +build gofuzz

package compiler

// Fuzzing code for use with github.com/dvyukov/go-fuzz
//
// To use, in the main project directory do:
//
//   go get -u github.com/dvyukov/go-fuzz/go-fuzz github.com/dvyukov/go-fuzz/go-fuzz-build
//   go-fuzz-build ./internal/compiler
//   go-fuzz -bin=compiler-fuzz.zip

import (
	"io"

	"github.com/RumbleDiscovery/bustache/internal/render"
)

// Fuzz generalizes the teacher's parse-only fuzz target into a full
// compile-then-render round trip: a corpus entry is only "interesting"
// if it both compiles and renders cleanly against an empty data model.
func Fuzz(data []byte) int {
	doc, err := Compile(string(data), Options{})
	if err != nil {
		return 0
	}
	if err := render.Render(io.Discard, doc, map[string]any{}, render.Options{}); err != nil {
		return 0
	}
	return 1
}
