package ast

// CopyText consolidates every text span in the arena into one freshly
// allocated contiguous string and rewrites the spans to slice it,
// returning a byte buffer holding the same consolidated text. After this
// call no TextSpan aliases the original source bytes the arena was
// compiled from, so the caller may drop them.
//
// Arena.Texts is always in source order (the compiler appends spans as it
// encounters them), so a single left-to-right pass is sufficient.
func (a *Arena) CopyText() []byte {
	total := 0
	for _, t := range a.Texts {
		total += len(t.Data)
	}
	buf := make([]byte, 0, total)
	offsets := make([]int, len(a.Texts)+1)
	for i, t := range a.Texts {
		buf = append(buf, t.Data...)
		offsets[i+1] = len(buf)
	}
	// A single string conversion, then every span slices that one string —
	// string slicing shares the backing array, so all spans share it.
	full := string(buf)
	for i := range a.Texts {
		a.Texts[i].Data = full[offsets[i]:offsets[i+1]]
	}
	return buf
}
