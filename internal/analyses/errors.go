package analyses

import "errors"

var (
	// ErrNoJSONBlock means the model response contained no fenced code block.
	ErrNoJSONBlock = errors.New("no json block found in model response")
	// ErrMalformedResponse means the fenced block did not parse as the
	// expected structure. Wrapped errors carry the parser diagnostic.
	ErrMalformedResponse = errors.New("malformed model response")
	ErrNotFound          = errors.New("analysis not found")
)
