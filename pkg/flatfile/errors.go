package flatfile

import "errors"

var (
	// ErrPrecondition means the storage root is missing or unusable. It is
	// raised during startup and treated as fatal, never per request.
	ErrPrecondition = errors.New("storage precondition failed")

	// ErrCorruptData means a persisted row violates the schema, e.g. a
	// non-numeric id where allocation needs to compute a maximum.
	ErrCorruptData = errors.New("corrupt table data")

	// errLineBreak is returned by Encode for values that cannot be stored in
	// a line-oriented table.
	errLineBreak = errors.New("value contains a line break")
)
