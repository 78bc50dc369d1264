package value

import "sort"

// Map is an Object backed directly by a map[string]Ptr, for callers that
// have already built up a value tree (as opposed to handing the core an
// arbitrary Go value for reflection via Of).
type Map map[string]Ptr

func (Map) Kind() Kind { return KindObject }
func (m Map) Get(key string) (Ptr, bool) {
	v, ok := m[key]
	return v, ok
}

// kvPair is the "object exposing key and value" adapter used when a map is
// iterated as a list of entries (see MapEntries).
type kvPair struct {
	key string
	val Ptr
}

func (kvPair) Kind() Kind { return KindObject }
func (p kvPair) Get(key string) (Ptr, bool) {
	switch key {
	case "key":
		return Str(p.key), true
	case "value":
		return p.val, true
	}
	return nil, false
}

// MapEntries exposes a map[string]Ptr as a List of key/value-pair Objects,
// each with "key" and "value" fields, sorted by key for determinism. With
// the result bound to `entries`, a template can do
// `{{#entries}}{{key}}={{value}}{{/entries}}` over a Go map.
func MapEntries(m map[string]Ptr) List {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make(sliceList, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, kvPair{key: k, val: m[k]})
	}
	return entries
}
