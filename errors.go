package suffixtree

import "github.com/pkg/errors"

// Error kinds returned by Tree and StringTable operations. Wrap sites add
// context via github.com/pkg/errors; callers compare with errors.Is.
var (
	// ErrInputContainsTerminator is returned by AddString/StringTable.Append
	// when the caller's string contains the reserved terminator byte.
	ErrInputContainsTerminator = errors.New("suffixtree: input contains reserved terminator")

	// ErrInvalidQueryArgument is returned when a string id is out of range
	// or a mismatch rate falls outside [0, 1].
	ErrInvalidQueryArgument = errors.New("suffixtree: invalid query argument")

	// ErrEmptyString is returned by AddString for a zero-length input.
	// The original spec documents empty-string insertion as undefined;
	// this implementation resolves the open question by rejecting it
	// outright rather than inserting a bare-terminator leaf.
	ErrEmptyString = errors.New("suffixtree: empty string")
)
