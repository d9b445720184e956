package suffixtree

import (
	"strings"

	"github.com/pkg/errors"
)

// Terminator is the reserved sentinel appended to every string added to a
// Tree. Callers must not include it in their own input.
const Terminator = '$'

// StringID identifies a string within a StringTable. Ids are assigned
// densely starting at 0, in insertion order.
type StringID int

// StringTable is an append-only, ordered sequence of terminator-suffixed
// strings. It never mutates or removes an entry once appended.
type StringTable struct {
	entries []string
}

// Append terminates s with Terminator and stores it, returning the id
// assigned to it. Insertion order is observable and assigned densely
// starting at 0.
func (t *StringTable) Append(s string) (StringID, error) {
	if strings.ContainsRune(s, Terminator) {
		return -1, errors.Wrapf(ErrInputContainsTerminator, "string %q", s)
	}
	id := StringID(len(t.entries))
	t.entries = append(t.entries, s+string(Terminator))
	return id, nil
}

// Get returns the terminated string stored under id.
func (t *StringTable) Get(id StringID) (string, error) {
	if id < 0 || int(id) >= len(t.entries) {
		return "", errors.Wrapf(ErrInvalidQueryArgument, "string id %d out of range", id)
	}
	return t.entries[id], nil
}

// Len returns the number of strings appended so far.
func (t *StringTable) Len() int {
	return len(t.entries)
}
