package bustache

import (
	"os"
	"path"
	"strings"
	"sync"
)

// FileContext is a ContextLookup that resolves a partial name to a file on
// disk, compiling (and caching) it on first use. When a partial named
// NAME is requested, FileContext searches each of Paths for a file named
// NAME followed by one of Extensions. The default Paths is the current
// working directory; the default Extensions tries, in order, no
// extension, then ".mustache", then ".stache". Unless Unsafe is set, a
// cleaned name beginning with "." is rejected, since it could otherwise
// escape every listed directory.
//
// Adapted from the teacher's FileProvider (partials.go), generalized from
// "provider of raw partial text" to "provider of compiled Formats" since
// the renderer here resolves partials to already-compiled documents.
type FileContext struct {
	Paths      []string
	Extensions []string
	Unsafe     bool

	mu    sync.Mutex
	cache map[string]*Format
}

func (fc *FileContext) Lookup(name string) (*Format, bool) {
	cleaned := name
	if !fc.Unsafe {
		cleaned = path.Clean(name)
		if strings.HasPrefix(cleaned, ".") {
			return nil, false
		}
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()
	if fc.cache == nil {
		fc.cache = map[string]*Format{}
	}
	if f, ok := fc.cache[cleaned]; ok {
		return f, true
	}

	data, ok := fc.read(cleaned)
	if !ok {
		return nil, false
	}
	format, err := Compile(data)
	if err != nil {
		return nil, false
	}
	fc.cache[cleaned] = format
	return format, true
}

func (fc *FileContext) read(name string) (string, bool) {
	paths := fc.Paths
	if paths == nil {
		paths = []string{""}
	}
	exts := fc.Extensions
	if exts == nil {
		exts = []string{"", ".mustache", ".stache"}
	}

	for _, p := range paths {
		for _, e := range exts {
			b, err := os.ReadFile(path.Join(p, name+e))
			if err == nil {
				return string(b), true
			}
		}
	}
	return "", false
}

var _ ContextLookup = (*FileContext)(nil)
