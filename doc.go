package suffixtree

// LineSource is the seam an external shell satisfies to feed strings
// into a Tree one at a time, e.g. a bufio.Scanner reading a dataset
// file. The core never opens a file itself.
type LineSource interface {
	// Next returns the next line, or ok == false once exhausted.
	Next() (line string, ok bool, err error)
}

// ResultWriter is the seam an external shell satisfies to persist a
// query result (for debugging or plotting). Every value this package
// returns is a plain map, slice or exported-field struct, so it is
// trivially json.Marshal-able without the writer needing to know
// anything about Tree internals.
type ResultWriter interface {
	WriteResult(name string, v any) error
}

// AddStringsFrom drains src, appending every line to the tree via
// AddString, and returns the ids assigned in order. It stops at the
// first error from either src or AddString.
func (t *Tree) AddStringsFrom(src LineSource) ([]StringID, error) {
	var ids []StringID
	for {
		line, ok, err := src.Next()
		if err != nil {
			return ids, err
		}
		if !ok {
			return ids, nil
		}
		id, err := t.AddString(line)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}
}
