package pathways

import "errors"

// Domain errors for pathway record handling.
var (
	ErrEmptyInput    = errors.New("no pathway records provided")
	ErrMissingHeader = errors.New("input is missing the header row")
	ErrBadHeader     = errors.New("input header does not match the expected columns")
)
